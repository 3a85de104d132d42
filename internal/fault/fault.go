// Package fault defines the tagged error kinds shared by the coaching core.
// Every public entry point returns one of these kinds instead of an untyped
// error so callers can branch on what went wrong without string matching.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	// KindNotFound marks a missing skill, drill, plan, week, or goal.
	KindNotFound Kind = "not_found"

	// KindValidation marks a skill that fails the decomposer's contract.
	KindValidation Kind = "validation_error"

	// KindInvalidState marks an operation attempted against an entity in
	// the wrong lifecycle state (completing a non-active week, confirming
	// a milestone with unmet criteria, re-recording a drill outcome).
	KindInvalidState Kind = "invalid_state"

	// KindProcessing marks a decomposition that yielded zero usable skills.
	KindProcessing Kind = "processing_error"

	// KindCompleted marks a fixed-duration goal with no remaining skills.
	// It is success-shaped: terminal, but nothing went wrong.
	KindCompleted Kind = "completed"

	// KindStore wraps errors propagated unchanged from a store collaborator.
	KindStore Kind = "store_error"
)

// Error is a Kind-tagged error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a tagged error.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error. Returns nil if err is nil.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// NotFound is shorthand for New(KindNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// InvalidState is shorthand for New(KindInvalidState, ...).
func InvalidState(format string, args ...any) *Error {
	return New(KindInvalidState, format, args...)
}

// Completed is shorthand for New(KindCompleted, ...).
func Completed(format string, args ...any) *Error {
	return New(KindCompleted, format, args...)
}

// Store wraps a store collaborator error, preserving it for unwrapping.
func Store(err error, format string, args ...any) *Error {
	return Wrap(KindStore, err, format, args...)
}

// KindOf returns the Kind of err, or "" if err carries no Kind.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
