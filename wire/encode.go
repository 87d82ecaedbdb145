package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectWriter builds a JSON object with members in the order they are
// written. The first error is kept and returned by Bytes; later writes
// are ignored.
type ObjectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

// Field writes v as the member name, embedding its encoding directly.
func (w *ObjectWriter) Field(name string, v any) {
	if w.err != nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf(`field "%s": %w`, name, err)
		return
	}

	w.write(name, data)
}

// PreSerialized writes v as the member name after encoding it to a JSON
// string, so the member holds a string rather than the nested value.
func (w *ObjectWriter) PreSerialized(name string, v any) {
	if w.err != nil {
		return
	}

	inner, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf(`field "%s": %w`, name, err)
		return
	}

	data, err := json.Marshal(string(inner))
	if err != nil {
		w.err = fmt.Errorf(`field "%s": %w`, name, err)
		return
	}

	w.write(name, data)
}

func (w *ObjectWriter) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	if w.n == 0 {
		return []byte("{}"), nil
	}

	out := make([]byte, 0, w.buf.Len()+1)
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}

func (w *ObjectWriter) write(name string, data []byte) {
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}

	key, _ := json.Marshal(name)
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.n += 1
}
