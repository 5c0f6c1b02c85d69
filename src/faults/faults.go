package faults

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status code and
// metrics can count failures per class.
type Kind string

const (
	// Validation means a required input field is missing.
	Validation Kind = "validation"
	// SchemaCoercion means an input field could not be coerced to the
	// type its schema partition requires.
	SchemaCoercion Kind = "schema_coercion"
	// Preprocessing means the transform rejected a structurally valid row.
	Preprocessing Kind = "preprocessing"
	// ModelLoad means a model artifact is missing or incompatible.
	// Startup-only and fatal.
	ModelLoad Kind = "model_load"
	// SchemaArtifact means the numeric/categorical partition could not be
	// derived from the preprocessor artifact. Startup-only and fatal.
	SchemaArtifact Kind = "schema_artifact"
	// Persistence means the prediction log write failed.
	Persistence Kind = "persistence"
)

// Error attaches a Kind and the failed operation to an underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and operation name.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf builds a fault from a format string.
func Newf(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind carried by err, or "" for untyped errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ClientCaused reports whether the fault was caused by bad caller input,
// as opposed to a server-side failure.
func ClientCaused(err error) bool {
	switch KindOf(err) {
	case Validation, SchemaCoercion:
		return true
	}
	return false
}
