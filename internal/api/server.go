package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hmizuno/taskdeck/internal/app"
	"github.com/hmizuno/taskdeck/internal/domain"
)

// Server holds the handler dependencies.
type Server struct {
	container *app.Container
	logger    *slog.Logger
	clock     domain.Clock
}

// NewServer creates a Server backed by the given container.
func NewServer(c *app.Container) *Server {
	return &Server{container: c, logger: c.Logger, clock: c.Clock}
}

// Register mounts all routes on the mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/ping", s.handlePing)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	// lists
	mux.HandleFunc("POST /api/lists", s.handleCreateList)
	mux.HandleFunc("GET /api/lists", s.handleListLists)
	mux.HandleFunc("GET /api/lists/{id}", s.handleGetList)
	mux.HandleFunc("PATCH /api/lists/{id}", s.handlePatchList)
	mux.HandleFunc("DELETE /api/lists/{id}", s.handleDeleteList)

	// tasks
	mux.HandleFunc("POST /api/lists/{listId}/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/lists/{listId}/tasks", s.handleListTasksInList)
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("GET /api/tasks/due-this-week", s.handleDueThisWeek)
	mux.HandleFunc("GET /api/tasks/overdue", s.handleOverdue)
	mux.HandleFunc("GET /api/tasks/range", s.handleTasksByRange)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", s.handlePatchTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/toggle", s.handleToggleTask)
	mux.HandleFunc("POST /api/tasks/{id}/complete", s.handleCompleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/incomplete", s.handleReopenTask)
}

// Handler returns the complete HTTP handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.StatsUseCase().Execute(r.Context())
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, out)
}
