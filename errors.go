package multipartkit

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidBoundary indicates that the supplied boundary is empty or would
// occur inside the encoded output. Use [errors.Is] to check for it. No
// output is ever produced alongside this error; callers may regenerate a
// boundary (see [RandomBoundary]) and encode again.
var ErrInvalidBoundary = errors.New("multipart: invalid boundary")

// UnsupportedTypeError describes a value that can neither be converted to
// text nor recognised as a binary payload.
type UnsupportedTypeError struct {
	Type reflect.Type
	Path string // field path where the value was encountered, empty at the root
}

func (e *UnsupportedTypeError) Error() string {
	if e.Path == "" {
		return "multipart: unsupported type " + e.Type.String()
	}
	return fmt.Sprintf("multipart: unsupported type %s at %s", e.Type, e.Path)
}

// MarshalerError wraps an error returned by a [Marshaler] implementation,
// annotated with the field path where it occurred. The underlying error is
// available through [errors.Unwrap].
type MarshalerError struct {
	Path string
	Err  error
}

func (e *MarshalerError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("multipart: %v", e.Err)
	}
	return fmt.Sprintf("multipart: %s: %v", e.Path, e.Err)
}

func (e *MarshalerError) Unwrap() error {
	return e.Err
}
