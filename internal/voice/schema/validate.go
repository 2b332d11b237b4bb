package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

var hhmmRe = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registering a static rule only fails on an empty tag
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateTask coerces unknown enum values to their defaults and checks the
// draft. A draft that still fails is replaced by the all-defaults record and
// the validation error is returned alongside it.
func ValidateTask(d voice.TaskDraft) (voice.TaskDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)

	d.Priority = model.Priority(strings.ToLower(strings.TrimSpace(string(d.Priority))))
	if !d.Priority.Valid() {
		d.Priority = model.PriorityMedium
	}
	d.Category = model.Category(strings.ToLower(strings.TrimSpace(string(d.Category))))
	if !d.Category.Valid() {
		d.Category = model.CategoryOther
	}

	if err := validate.Struct(d); err != nil {
		return voice.DefaultTaskDraft(), fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	return d, nil
}

// ValidateFilter clears unknown enum values and checks the criteria. Criteria
// that still fail are replaced by the empty record.
func ValidateFilter(f voice.FilterCriteria) (voice.FilterCriteria, error) {
	f.SearchText = strings.TrimSpace(f.SearchText)

	if f.Priority != "" && !f.Priority.Valid() {
		f.Priority = ""
	}
	if f.Category != "" && !f.Category.Valid() {
		f.Category = ""
	}

	if err := validate.Struct(f); err != nil {
		return voice.FilterCriteria{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return f, nil
}
