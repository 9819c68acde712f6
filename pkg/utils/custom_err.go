package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("no authenticated session")
	ErrUnauthorized    = errors.New("insufficient role")
	ErrAccountNotFound = errors.New("account not found")
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidPlan     = errors.New("unknown plan")
	ErrLastAdmin       = errors.New("cannot demote the last admin")
	ErrDatabaseError   = errors.New("database error")
)

// ValidationError names the first request field that failed validation so the
// caller knows what to correct.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}
