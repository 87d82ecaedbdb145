package wire

import (
	"errors"
	"fmt"
)

// DecodeError is implemented by every error a generated decoder returns
// for a malformed payload. Use errors.As to tell the concrete kinds apart.
type DecodeError interface {
	error
	Declaration() string
	FieldName() string
}

var (
	_ DecodeError = (*MissingFieldError)(nil)
	_ DecodeError = (*TypeMismatchError)(nil)
)

// ErrEmptyUnion is returned when an inline union with no alternative set
// is encoded.
var ErrEmptyUnion = errors.New("no union alternative is set")

// ErrMissingValue is returned when a required union field is encoded
// while nil.
var ErrMissingValue = errors.New("required value is not set")

type MissingFieldError struct {
	Decl  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(`%s: missing required field "%s"`, e.Decl, e.Field)
}

func (e *MissingFieldError) Declaration() string { return e.Decl }

func (e *MissingFieldError) FieldName() string { return e.Field }

// TypeMismatchError reports a value whose JSON shape does not match the
// declared type. Field is empty when the declaration itself mismatched,
// for example a union none of whose variants matched.
type TypeMismatchError struct {
	Decl  string
	Field string
	Err   error
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Decl, e.Err)
	}

	return fmt.Sprintf(`%s: field "%s": %v`, e.Decl, e.Field, e.Err)
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

func (e *TypeMismatchError) Declaration() string { return e.Decl }

func (e *TypeMismatchError) FieldName() string { return e.Field }

// EmptyUnion returns the error for encoding the inline union typ while
// none of its alternatives is set.
func EmptyUnion(typ string) error {
	return fmt.Errorf("%s: %w", typ, ErrEmptyUnion)
}

// MissingValue returns the error for encoding the required field of decl
// while it holds no value.
func MissingValue(decl string, field string) error {
	return fmt.Errorf(`%s: field "%s": %w`, decl, field, ErrMissingValue)
}

// passThrough reports whether err already describes a decode failure and
// should be returned as is.
func passThrough(err error) bool {
	var de DecodeError
	return errors.As(err, &de)
}
