package dto

import (
	"sync"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain tags to gin's validator engine.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterTagValidators(v)
	})
	return err
}

// RegisterTagValidators adds the enum tags (employment_status, display_status,
// attendance_status, shift_type) and tile_color to v.
func RegisterTagValidators(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"tile_color": domain.IsTileColor,
		"employment_status": func(s string) bool {
			return s == string(domain.EmploymentActive) || s == string(domain.EmploymentResigned)
		},
		"display_status": func(s string) bool {
			return s == string(domain.DisplayShown) || s == string(domain.DisplayHidden)
		},
		"attendance_status": func(s string) bool {
			return s == string(domain.AttendancePresent) || s == string(domain.AttendanceAbsent)
		},
		"shift_type": func(s string) bool {
			return s == string(domain.ShiftEarly) || s == string(domain.ShiftLate)
		},
	}
	for tag, valid := range tags {
		valid := valid
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}
