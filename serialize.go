package multipartkit

import (
	"bytes"
	"fmt"
	"strings"
)

const crlf = "\r\n"

// serialize frames the parts with boundary per RFC 2388. The boundary is
// validated against every part before any output is produced, so an
// invalid boundary never yields partial or ambiguous framing.
func serialize(parts []Part, boundary string) ([]byte, error) {
	if err := validateBoundary(parts, boundary); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString("--")
		buf.WriteString(boundary)
		buf.WriteString(crlf)

		buf.WriteString(`Content-Disposition: form-data; name="`)
		buf.WriteString(escapeQuotes(p.Name))
		buf.WriteString(`"`)
		if p.Filename != "" {
			buf.WriteString(`; filename="`)
			buf.WriteString(escapeQuotes(p.Filename))
			buf.WriteString(`"`)
		}
		buf.WriteString(crlf)

		if p.ContentType != "" {
			buf.WriteString("Content-Type: ")
			buf.WriteString(p.ContentType)
			buf.WriteString(crlf)
		}

		buf.WriteString(crlf)
		buf.Write(p.Body)
		buf.WriteString(crlf)
	}

	buf.WriteString("--")
	buf.WriteString(boundary)
	buf.WriteString("--")
	buf.WriteString(crlf)
	return buf.Bytes(), nil
}

func validateBoundary(parts []Part, boundary string) error {
	if boundary == "" {
		return fmt.Errorf("%w: boundary is empty", ErrInvalidBoundary)
	}
	needle := []byte(boundary)
	for _, p := range parts {
		if strings.Contains(p.Name, boundary) ||
			strings.Contains(p.Filename, boundary) ||
			strings.Contains(p.ContentType, boundary) ||
			bytes.Contains(p.Body, needle) {
			return fmt.Errorf("%w: boundary %q occurs in part %q", ErrInvalidBoundary, boundary, p.Name)
		}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
