package utils

import (
	"fmt"
	"regexp"
	"strings"

	"cinema-manager/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	seatLabelPattern = regexp.MustCompile(`^\s*[A-Za-z][1-9][0-9]*\s*$`)
	clockPattern     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("seat_label", func(fl validator.FieldLevel) bool {
		return seatLabelPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ticket_status", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
		case "", "all", "active", "cancelled":
			return true
		}
		return false
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// ValidationError validates data and returns a classified error, or nil.
func ValidationError(op string, data interface{}) error {
	if errs := ValidateStruct(data); len(errs) > 0 {
		return apperror.Validation(op, errs)
	}
	return nil
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "e164", "numeric":
		return "Must be a phone number"
	case "seat_label":
		return "Must be a seat label like C3"
	case "hhmm":
		return "Must be a time in HH:MM format"
	case "ticket_status":
		return "Must be one of: all, active, cancelled"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
