package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyStore is returned by queries that need at least one valid record.
var ErrEmptyStore = errors.New("no valid student records")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, fe := range err.Fields {
		msgs = append(msgs, fe.Field+": "+fe.Error)
	}
	return strings.Join(msgs, "; ")
}

// HasField reports whether the error names the given field.
func (err ValidationError) HasField(field string) bool {
	for _, fe := range err.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NotFoundError is returned when a lookup by key finds nothing.
type NotFoundError struct {
	What string // eg. "student", "data file"
	ID   string
}

func NewNotFoundError(what, id string) error {
	return &NotFoundError{What: what, ID: id}
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", err.What, err.ID)
}

// IOError wraps a failure to read or write persistent storage.
type IOError struct {
	Op    string // "load" | "save"
	Path  string
	Cause error
}

func NewIOError(op, path string, cause error) error {
	return &IOError{Op: op, Path: path, Cause: cause}
}

func (err IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", err.Op, err.Path, err.Cause)
}

func (err IOError) Unwrap() error { return err.Cause }

// IsNotFound reports whether any error in err's chain is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether any error in err's chain is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsIO reports whether any error in err's chain is an *IOError.
func IsIO(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
