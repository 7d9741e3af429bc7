package multipartkit_test

import (
	"context"
	"errors"
	"strings"
	"time"

	multipartkit "github.com/briannadoubt/multipart-kit"
)

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns"`
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
	State  string `form:"state"`
	Zip    string `form:"zip"`
}

type Upload struct {
	Title    string            `form:"title"`
	Document multipartkit.File `form:"document"`
	Raw      []byte            `form:"raw,omitempty"`
}

type IgnoredFieldsForm struct {
	Public  string `form:"public"`
	Private string `form:"-"`
	Ignored string `form:",ignore"`
	NoTag   string
	Omitted string `form:",omitempty"`
}

type OptionalFields struct {
	Before string  `form:"before"`
	Maybe  *string `form:"maybe"`
	After  string  `form:"after"`
}

type MyDate time.Time

func (d MyDate) MarshalMultipart(context.Context) (multipartkit.Node, error) {
	return multipartkit.NewLeaf(multipartkit.Text(time.Time(d).Format("2006.01.02"))), nil
}

var errBoom = errors.New("boom")

// Broken always fails to describe itself.
type Broken struct{}

func (Broken) MarshalMultipart(context.Context) (multipartkit.Node, error) {
	return nil, errBoom
}

type stampKey struct{}

// Stamp resolves its text from the encoding context.
type Stamp struct{}

func (Stamp) MarshalMultipart(ctx context.Context) (multipartkit.Node, error) {
	s, _ := ctx.Value(stampKey{}).(string)
	return multipartkit.NewLeaf(multipartkit.Text(s)), nil
}

// wirePart and wire build expected multipart bodies for comparison. Names
// and filenames are given pre-escaped.
type wirePart struct {
	name        string
	filename    string
	contentType string
	body        string
}

func wire(boundary string, parts ...wirePart) []byte {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString(`Content-Disposition: form-data; name="` + p.name + `"`)
		if p.filename != "" {
			b.WriteString(`; filename="` + p.filename + `"`)
		}
		b.WriteString("\r\n")
		if p.contentType != "" {
			b.WriteString("Content-Type: " + p.contentType + "\r\n")
		}
		b.WriteString("\r\n" + p.body + "\r\n")
	}
	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}

func stringPointer(s string) *string {
	return &s
}
