package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPersistence       = errors.New("persistence failure")
)

// ValidationError reports rejected input. Line is the 1-based journal
// line index, or 0 when the error is not tied to a line.
type ValidationError struct {
	Line    int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewLineError(line int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing account, entry, transaction or report
type NotFoundError struct {
	Resource string
	ID       interface{}
	Line     int
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %v not found", e.Resource, e.ID)
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(resource string, id interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// StateError reports a rejected lifecycle transition
type StateError struct {
	Resource string
	ID       interface{}
	From     string
	To       string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %v cannot move from %s to %s", e.Resource, e.ID, e.From, e.To)
}

func (e *StateError) Is(target error) bool { return target == ErrInvalidTransition }

// PersistenceError wraps a failure of the underlying store
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
