package service

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("age_range", oneOf(entity.AgeRanges))
		validate.RegisterValidation("focus_area", oneOf(entity.FocusAreas))
		validate.RegisterValidation("struggle", oneOf(entity.Struggles))
		validate.RegisterValidation("feedback_style", oneOf(entity.FeedbackStyles))
		validate.RegisterValidation("wasted_time", oneOf(entity.WastedTimes))
	})
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

func validateProfile(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(errorvalues.ErrInvalidProfile, fieldError(err))
	}
	return nil
}

// Wins or failures must be filled in before focus and wasted time are checked
func validateLogDraft(d *LogDraft) error {
	if d == nil || (strings.TrimSpace(d.Wins) == "" && strings.TrimSpace(d.Failures) == "") {
		return errorvalues.ErrEmptyLog
	}
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Focus":
			return errorvalues.ErrInvalidFocus
		case "WastedTime":
			return errorvalues.ErrInvalidWastedTime
		}
	}
	return errors.New("log validation error: " + err.Error())
}

func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New("field " + verrs[0].Field() + " failed on " + verrs[0].Tag())
	}
	return err
}
