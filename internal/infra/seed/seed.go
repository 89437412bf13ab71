// Package seed loads list and task fixtures from a YAML file into the
// stores, typically at server startup for demos and local development.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// TaskFixture describes one task in a seed file.
type TaskFixture struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Deadline    *time.Time `yaml:"deadline"`
	Completed   bool       `yaml:"completed"`
}

// ListFixture describes one list plus its tasks.
type ListFixture struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Tasks       []TaskFixture `yaml:"tasks"`
}

// File is the top-level seed document.
type File struct {
	Lists []ListFixture `yaml:"lists"`
}

// Load parses the seed file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Apply writes the fixtures straight into the stores. Going below the
// use case layer is deliberate: fixtures may carry past deadlines and
// pre-completed tasks that input validation would reject.
func Apply(f *File, lists domain.ListRepository, tasks domain.TaskRepository, clock domain.Clock) (int, int, error) {
	var nLists, nTasks int
	for _, lf := range f.Lists {
		list, err := lists.Create(domain.ListDraft{Name: lf.Name, Description: lf.Description})
		if err != nil {
			return nLists, nTasks, fmt.Errorf("seed list %q: %w", lf.Name, err)
		}
		nLists++

		for _, tf := range lf.Tasks {
			draft := domain.TaskDraft{
				ListID:      list.ID,
				Title:       tf.Title,
				Description: tf.Description,
				Deadline:    tf.Deadline,
				Completed:   tf.Completed,
			}
			if tf.Completed {
				now := clock.Now()
				draft.CompletedAt = &now
			}
			if _, err := tasks.Create(draft); err != nil {
				return nLists, nTasks, fmt.Errorf("seed task %q: %w", tf.Title, err)
			}
			nTasks++
		}
	}
	return nLists, nTasks, nil
}
