package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields under their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// HH:mm on a 24-hour clock
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 5 {
			return false
		}
		_, err := time.Parse("15:04", s)
		return err == nil
	})

	// YYYY-MM-DD calendar date
	validate.RegisterValidation("civildate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(domain.AnalysisRequest)
		checkDateRange(sl, req.From, req.To)
	}, domain.AnalysisRequest{})
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		filter := sl.Current().Interface().(domain.TimeSlotFilter)
		checkDateRange(sl, filter.From, filter.To)
	}, domain.TimeSlotFilter{})
}

// checkDateRange rejects ranges that end before they start. YYYY-MM-DD
// strings order chronologically.
func checkDateRange(sl validator.StructLevel, from, to string) {
	if from != "" && to != "" && to < from {
		sl.ReportError(to, "to", "To", "daterange", "from")
	}
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required for this view"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "clock":
		return "must be a time in HH:mm format"
	case "civildate":
		return "must be a date in YYYY-MM-DD format"
	case "daterange":
		return "must not be before " + err.Param()
	default:
		return "is invalid"
	}
}
