package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionMissing     = errors.New("session missing")
	ErrDuplicateKey       = errors.New("identity already exists")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNoneAvailable      = errors.New("no recipes available for this mood")
	ErrStorage            = errors.New("storage failure")
)

// ValidationError lists every problem found with an input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
