// Package seed provides the collection every new dashboard session starts from.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/yukikurage/task-dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed tasks.yaml
var defaultData []byte

// Data is the parsed seed file.
type Data struct {
	Owners []string      `yaml:"owners"`
	Types  []string      `yaml:"types"`
	Tasks  []models.Task `yaml:"tasks"`
}

// Default parses the embedded seed collection.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes seed YAML and checks every task against the closed enums.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	seen := make(map[string]struct{}, len(data.Tasks))
	for i := range data.Tasks {
		task := &data.Tasks[i]
		if task.ID == "" {
			return nil, fmt.Errorf("seed task %d: id is required", i)
		}
		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("seed task %d: duplicate id %q", i, task.ID)
		}
		seen[task.ID] = struct{}{}
		if !task.Status.Valid() {
			return nil, fmt.Errorf("seed task %q: invalid status %q", task.ID, task.Status)
		}
		if !task.Priority.Valid() {
			return nil, fmt.Errorf("seed task %q: invalid priority %q", task.ID, task.Priority)
		}
		task.Normalize()
	}

	return &data, nil
}

// Clone returns fresh copies of the seed tasks.
func (d *Data) Clone() []models.Task {
	tasks := make([]models.Task, len(d.Tasks))
	for i, t := range d.Tasks {
		tasks[i] = t.Clone()
	}
	return tasks
}
