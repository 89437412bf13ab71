package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hmizuno/taskdeck/internal/domain"
	"github.com/hmizuno/taskdeck/internal/usecase"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var in createTaskIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeInvalid(w, "invalid json body")
		return
	}

	out, err := s.container.CreateTaskUseCase().Execute(r.Context(), usecase.CreateTaskInput{
		ListID:      r.PathValue("listId"),
		Title:       in.Title,
		Description: in.Description,
		Deadline:    in.Deadline,
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, out.Task)
}

func (s *Server) handleListTasksInList(w http.ResponseWriter, r *http.Request) {
	in, err := parseTaskQuery(r.URL.Query())
	if err != nil {
		s.writeInvalid(w, err.Error())
		return
	}
	in.ListID = r.PathValue("listId")

	// The path parameter pins the list; a missing one is a 404, not an
	// empty listing.
	exists, err := s.container.Lists.Exists(in.ListID)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if !exists {
		s.writeNotFound(w, "list not found")
		return
	}

	s.respondTasks(r.Context(), w, in)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	in, err := parseTaskQuery(r.URL.Query())
	if err != nil {
		s.writeInvalid(w, err.Error())
		return
	}
	s.respondTasks(r.Context(), w, in)
}

func (s *Server) respondTasks(ctx context.Context, w http.ResponseWriter, in usecase.ListTasksInput) {
	out, err := s.container.ListTasksUseCase().Execute(ctx, in)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeCollection(w, out.Tasks, Meta{Total: len(out.Tasks), Limit: in.Limit, Offset: in.Offset})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.container.GetTaskUseCase().Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if task == nil {
		s.writeNotFound(w, "task not found")
		return
	}
	writeData(w, http.StatusOK, task)
}

func (s *Server) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	var in patchTaskIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeInvalid(w, "invalid json body")
		return
	}

	out, err := s.container.UpdateTaskUseCase().Execute(r.Context(), usecase.UpdateTaskInput{
		ID:            r.PathValue("id"),
		Title:         in.Title,
		Description:   in.Description,
		Deadline:      in.Deadline,
		ClearDeadline: in.ClearDeadline,
		Completed:     in.Completed,
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if out.Task == nil {
		s.writeNotFound(w, "task not found")
		return
	}
	writeData(w, http.StatusOK, out.Task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.container.DeleteTaskUseCase().Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if !deleted {
		s.writeNotFound(w, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeToggled(w http.ResponseWriter, task *domain.Task, err error) {
	if err != nil {
		s.writeErr(w, err)
		return
	}
	if task == nil {
		s.writeNotFound(w, "task not found")
		return
	}
	writeData(w, http.StatusOK, task)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.container.ToggleTaskUseCase().Execute(r.Context(), r.PathValue("id"))
	s.writeToggled(w, task, err)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.container.CompleteTaskUseCase().Execute(r.Context(), r.PathValue("id"))
	s.writeToggled(w, task, err)
}

func (s *Server) handleReopenTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.container.ReopenTaskUseCase().Execute(r.Context(), r.PathValue("id"))
	s.writeToggled(w, task, err)
}

func (s *Server) handleDueThisWeek(w http.ResponseWriter, r *http.Request) {
	in, err := parseDueQuery(r.URL.Query())
	if err != nil {
		s.writeInvalid(w, err.Error())
		return
	}
	out, err := s.container.DueThisWeekUseCase().Execute(r.Context(), in)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeCollection(w, out.Tasks, Meta{Total: len(out.Tasks), Limit: in.Limit, Offset: in.Offset})
}

func (s *Server) handleOverdue(w http.ResponseWriter, r *http.Request) {
	in, err := parseDueQuery(r.URL.Query())
	if err != nil {
		s.writeInvalid(w, err.Error())
		return
	}
	out, err := s.container.OverdueUseCase().Execute(r.Context(), in)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeCollection(w, out.Tasks, Meta{Total: len(out.Tasks), Limit: in.Limit, Offset: in.Offset})
}

func (s *Server) handleTasksByRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := parseDueQuery(q)
	if err != nil {
		s.writeInvalid(w, err.Error())
		return
	}

	rangeIn := usecase.TasksByRangeInput{DueTasksInput: in}
	if v, err := parseTimeParam(q, "start"); err != nil {
		s.writeInvalid(w, err.Error())
		return
	} else if v != nil {
		rangeIn.Start = *v
	}
	if v, err := parseTimeParam(q, "end"); err != nil {
		s.writeInvalid(w, err.Error())
		return
	} else if v != nil {
		rangeIn.End = *v
	}

	out, err := s.container.TasksByRangeUseCase().Execute(r.Context(), rangeIn)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeCollection(w, out.Tasks, Meta{Total: len(out.Tasks), Limit: in.Limit, Offset: in.Offset})
}
