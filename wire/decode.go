package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Object is a decoded JSON object whose members are still raw. Generated
// UnmarshalJSON methods read their fields from it; members without a
// declared field are ignored.
type Object struct {
	decl   string
	fields map[string]json.RawMessage
}

// ParseObject decodes data as a JSON object belonging to declaration decl.
func ParseObject(decl string, data []byte) (Object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Object{}, &TypeMismatchError{Decl: decl, Err: err}
	}

	if fields == nil {
		return Object{}, &TypeMismatchError{Decl: decl, Err: errors.New("expected an object, got null")}
	}

	return Object{decl: decl, fields: fields}, nil
}

// Has reports whether the member name is present and not null.
func (o Object) Has(name string) bool {
	_, ok := o.lookup(name)
	return ok
}

func (o Object) lookup(name string) (json.RawMessage, bool) {
	raw, ok := o.fields[name]
	if !ok || isNull(raw) {
		return nil, false
	}

	return raw, true
}

func (o Object) fieldError(name string, err error) error {
	if passThrough(err) {
		return err
	}

	return &TypeMismatchError{Decl: o.decl, Field: name, Err: err}
}

// Required decodes the member name into dst and fails with a
// MissingFieldError when it is absent.
func Required[T any](o Object, name string, decode func([]byte) (T, error), dst *T) error {
	raw, ok := o.lookup(name)
	if !ok {
		return &MissingFieldError{Decl: o.decl, Field: name}
	}

	v, err := decode(raw)
	if err != nil {
		return o.fieldError(name, err)
	}

	*dst = v
	return nil
}

// Optional decodes the member name into dst when it is present and leaves
// dst untouched otherwise. It suits slices and interfaces, whose zero
// value already means absent.
func Optional[T any](o Object, name string, decode func([]byte) (T, error), dst *T) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}

	v, err := decode(raw)
	if err != nil {
		return o.fieldError(name, err)
	}

	*dst = v
	return nil
}

// OptionalPtr is Optional for fields represented by a pointer.
func OptionalPtr[T any](o Object, name string, decode func([]byte) (T, error), dst **T) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}

	v, err := decode(raw)
	if err != nil {
		return o.fieldError(name, err)
	}

	*dst = &v
	return nil
}

// Decode is the decoder of scalars and generated types.
func Decode[T any](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// Slice returns a decoder of JSON arrays whose items are decoded by elem.
// A present empty array decodes to a non-nil empty slice.
func Slice[T any](elem func([]byte) (T, error)) func([]byte) ([]T, error) {
	return func(data []byte) ([]T, error) {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}

		out := make([]T, 0, len(raws))
		for i, raw := range raws {
			v, err := elem(raw)
			if err != nil {
				if passThrough(err) {
					return nil, err
				}

				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			out = append(out, v)
		}

		return out, nil
	}
}

// Literal returns a decoder that only accepts the JSON encoding of want.
func Literal[T comparable](want T) func([]byte) (T, error) {
	return func(data []byte) (T, error) {
		var got T
		if err := json.Unmarshal(data, &got); err != nil {
			return got, err
		}

		if got != want {
			return got, fmt.Errorf("expected %#v, got %#v", want, got)
		}

		return got, nil
	}
}

// PreSerialized wraps the decoder of a field whose value is sent as a
// JSON string holding the encoded value. A value that was embedded
// directly is accepted as well.
func PreSerialized[T any](decode func([]byte) (T, error)) func([]byte) (T, error) {
	return func(data []byte) (T, error) {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			if v, err := decode([]byte(s)); err == nil {
				return v, nil
			}
		}

		return decode(data)
	}
}

// Variant adapts the decoder of a union variant to the union type U.
func Variant[U, V any](decode func([]byte) (V, error)) func([]byte) (U, error) {
	return func(data []byte) (U, error) {
		var zero U

		v, err := decode(data)
		if err != nil {
			return zero, err
		}

		u, ok := any(v).(U)
		if !ok {
			return zero, fmt.Errorf("%T is not a variant of %T", v, zero)
		}

		return u, nil
	}
}

// FirstMatch decodes data as the first variant, in declaration order,
// whose decoder accepts it.
func FirstMatch[U any](decl string, data []byte, variants ...func([]byte) (U, error)) (U, error) {
	var zero U
	errs := make([]error, 0, len(variants))

	for _, decode := range variants {
		v, err := decode(data)
		if err == nil {
			return v, nil
		}

		errs = append(errs, err)
	}

	return zero, &TypeMismatchError{Decl: decl, Err: noMatch(errs)}
}

// Alternative binds the decoder of one inline union alternative to the
// struct field that holds it.
func Alternative[T any](decode func([]byte) (T, error), dst **T) func([]byte) error {
	return func(data []byte) error {
		v, err := decode(data)
		if err != nil {
			return err
		}

		*dst = &v
		return nil
	}
}

// FirstAlternative decodes data into the first alternative of the inline
// union typ that accepts it.
func FirstAlternative(typ string, data []byte, alternatives ...func([]byte) error) error {
	errs := make([]error, 0, len(alternatives))

	for _, decode := range alternatives {
		err := decode(data)
		if err == nil {
			return nil
		}

		errs = append(errs, err)
	}

	return &TypeMismatchError{Decl: typ, Err: noMatch(errs)}
}

func noMatch(errs []error) error {
	return fmt.Errorf("no variant matched: %w", errors.Join(errs...))
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
