// Package wire is the runtime of the bindings generated by botapigen.
//
// Generated MarshalJSON methods write their members through an
// ObjectWriter, in catalogue field order. Generated UnmarshalJSON methods
// parse the payload with ParseObject and read each field with Required,
// Optional or OptionalPtr, composing decoders from Decode, Slice,
// Literal, PreSerialized and the generated UnmarshalX functions of
// unions. Members the catalogue does not declare are ignored.
//
// Decoding failures are reported as a DecodeError: a MissingFieldError
// for an absent required field, a TypeMismatchError for a value of the
// wrong shape. Both name the declaration and field they belong to.
package wire
