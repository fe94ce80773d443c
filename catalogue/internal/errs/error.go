package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDuplicateIsbn = errors.New("duplicate isbn")
	ErrValidation    = errors.New("invalid request")
)

type NotFoundError struct {
	BookID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book not found: id=%d", e.BookID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a lifecycle transition attempted from the wrong state.
type ConflictError struct {
	BookID int64
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: id=%d", e.Reason, e.BookID)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type DuplicateIsbnError struct {
	Isbn string
}

func (e *DuplicateIsbnError) Error() string {
	return fmt.Sprintf("isbn already registered: %s", e.Isbn)
}

func (e *DuplicateIsbnError) Is(target error) bool { return target == ErrDuplicateIsbn }

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
