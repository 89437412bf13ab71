// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/hmizuno/taskdeck/internal/domain"
	"github.com/hmizuno/taskdeck/internal/infra/config"
	"github.com/hmizuno/taskdeck/internal/infra/memstore"
	"github.com/hmizuno/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Tasks domain.TaskRepository
	Lists domain.ListRepository
	Clock domain.Clock

	Logger *slog.Logger

	Config config.Config
}

// New creates a new Container from the given configuration.
func New(cfg config.Config) *Container {
	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		locale = language.English
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	clock := domain.RealClock{}

	return &Container{
		Tasks:  memstore.NewTaskStore(clock, locale),
		Lists:  memstore.NewListStore(clock),
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg config.Config, tasks domain.TaskRepository, lists domain.ListRepository, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tasks:  tasks,
		Lists:  lists,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Lists, c.Clock)
}

// GetTaskUseCase returns a new GetTask use case.
func (c *Container) GetTaskUseCase() *usecase.GetTask {
	return usecase.NewGetTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Clock)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks)
}

// ReopenTaskUseCase returns a new ReopenTask use case.
func (c *Container) ReopenTaskUseCase() *usecase.ReopenTask {
	return usecase.NewReopenTask(c.Tasks)
}

// DueThisWeekUseCase returns a new DueThisWeek use case.
func (c *Container) DueThisWeekUseCase() *usecase.DueThisWeek {
	return usecase.NewDueThisWeek(c.Tasks)
}

// OverdueUseCase returns a new Overdue use case.
func (c *Container) OverdueUseCase() *usecase.Overdue {
	return usecase.NewOverdue(c.Tasks)
}

// TasksByRangeUseCase returns a new TasksByRange use case.
func (c *Container) TasksByRangeUseCase() *usecase.TasksByRange {
	return usecase.NewTasksByRange(c.Tasks)
}

// CreateListUseCase returns a new CreateList use case.
func (c *Container) CreateListUseCase() *usecase.CreateList {
	return usecase.NewCreateList(c.Lists)
}

// GetListUseCase returns a new GetList use case.
func (c *Container) GetListUseCase() *usecase.GetList {
	return usecase.NewGetList(c.Lists, c.Tasks)
}

// ListListsUseCase returns a new ListLists use case.
func (c *Container) ListListsUseCase() *usecase.ListLists {
	return usecase.NewListLists(c.Lists, c.Tasks)
}

// UpdateListUseCase returns a new UpdateList use case.
func (c *Container) UpdateListUseCase() *usecase.UpdateList {
	return usecase.NewUpdateList(c.Lists)
}

// DeleteListUseCase returns a new DeleteList use case.
func (c *Container) DeleteListUseCase() *usecase.DeleteList {
	return usecase.NewDeleteList(c.Lists, c.Tasks)
}

// StatsUseCase returns a new Stats use case.
func (c *Container) StatsUseCase() *usecase.Stats {
	return usecase.NewStats(c.Lists, c.Tasks)
}
