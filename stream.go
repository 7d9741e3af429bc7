package multipartkit

import (
	"context"
	"io"
	"strings"
)

// Encoder writes multipart/form-data to an [io.Writer].
type Encoder struct {
	w        io.Writer
	boundary string
}

// NewEncoder creates a new [Encoder] that writes bodies framed with
// boundary to w.
func NewEncoder(w io.Writer, boundary string) *Encoder {
	return &Encoder{w: w, boundary: boundary}
}

// Boundary returns the encoder's boundary token.
func (e *Encoder) Boundary() string {
	return e.boundary
}

// FormDataContentType returns the value for an outgoing Content-Type
// header describing bodies produced by this encoder.
func (e *Encoder) FormDataContentType() string {
	b := e.boundary
	// Quote the boundary when it contains tspecials, per RFC 2045.
	if strings.ContainsAny(b, `()<>@,;:\"/[]?= `) {
		b = `"` + b + `"`
	}
	return "multipart/form-data; boundary=" + b
}

// Encode encodes v as multipart/form-data and writes it to the underlying
// [io.Writer]. Nothing is written if encoding fails.
func (e *Encoder) Encode(v interface{}) error {
	return e.EncodeContext(context.Background(), v)
}

// EncodeContext is [Encode] with a caller-supplied context, forwarded
// unchanged to [Marshaler] implementations.
func (e *Encoder) EncodeContext(ctx context.Context, v interface{}) error {
	data, err := MarshalContext(ctx, v, e.boundary)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	return err
}
