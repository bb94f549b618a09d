package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationError shapes validator output into field violations so the
// taxonomy stays independent of the validation library on the wire.
func validationError(err error) *ValidationError {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return &ValidationError{Violations: []FieldViolation{{Field: "payload", Reason: "invalid payload"}}}
	}

	violations := make([]FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, FieldViolation{
			Field:  strings.ToLower(fe.Field()),
			Reason: violationReason(fe),
		})
	}
	return &ValidationError{Violations: violations}
}

func violationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}

// hasDottedDomain rejects addresses whose domain carries no dot, which
// the email tag alone tolerates (e.g. "user@localhost").
func hasDottedDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
