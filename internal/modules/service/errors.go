package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Service layer errors. Handlers translate these to transport responses:
// ErrNotFound covers both unresolvable ids and ids outside the caller's read
// scope, so record existence never leaks through a 403.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("operation not permitted")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoActiveToken      = errors.New("no active token")
)

// ValidationError carries field-level rule violations. A failed validation
// never reaches the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
