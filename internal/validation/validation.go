// Package validation registers the dashboard's enum and date tags with the
// validator behind gin's request binding.
package validation

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom tags on gin's default validator. It is safe
// to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"task_status": func(fl validator.FieldLevel) bool {
			return models.TaskStatus(fl.Field().String()).Valid()
		},
		"task_priority": func(fl validator.FieldLevel) bool {
			return models.TaskPriority(fl.Field().String()).Valid()
		},
		"note_type": func(fl validator.FieldLevel) bool {
			return models.NoteType(fl.Field().String()).Valid()
		},
		"sort_field": func(fl validator.FieldLevel) bool {
			return query.SortField(fl.Field().String()).Valid()
		},
		"sort_order": func(fl validator.FieldLevel) bool {
			return query.SortOrder(fl.Field().String()).Valid()
		},
		"status_category": func(fl validator.FieldLevel) bool {
			_, ok := query.ParseStatusCategory(fl.Field().String())
			return ok
		},
		"calendar_date": func(fl validator.FieldLevel) bool {
			_, ok := models.ParseCalendarDate(fl.Field().String())
			return ok
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s: %w", tag, err)
		}
	}
	return nil
}

// FieldErrors flattens validator errors into field -> rule pairs for API responses.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, e := range verrs {
		details[e.Field()] = e.Tag()
	}
	return details
}
