package multipartkit

import (
	"reflect"
	"strings"
	"sync"
)

// cache of struct tags keyed by [reflect.Type], so a struct type is only
// inspected once across encode calls. Safe for concurrent use.
var fieldTagCache sync.Map

type tag struct {
	Name   string
	Omit   bool
	Ignore bool
}

// fieldTags returns one tag per field of the struct value, in declaration
// order. Untagged exported fields use the field name; unexported fields are
// ignored.
func fieldTags(v reflect.Value) []*tag {
	tt := reflect.Indirect(v).Type()
	if tt.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := fieldTagCache.Load(tt); ok {
		return cached.([]*tag)
	}

	tags := make([]*tag, tt.NumField())
	for i := 0; i < tt.NumField(); i++ {
		f := tt.Field(i)
		if !f.IsExported() {
			tags[i] = &tag{Ignore: true}
			continue
		}
		t := parseTag(f.Tag.Get("form"))
		if !t.Ignore && t.Name == "" {
			t.Name = f.Name
		}
		tags[i] = t
	}

	fieldTagCache.Store(tt, tags)
	return tags
}

// parseTag parses a `form` struct tag. The first element is the field name,
// or "-" to drop the field; later elements are the flags "omitempty" and
// "ignore".
func parseTag(str string) *tag {
	name, rest, _ := strings.Cut(strings.TrimSpace(str), ",")

	t := &tag{Name: strings.TrimSpace(name)}
	if t.Name == "-" {
		return &tag{Ignore: true}
	}

	for rest != "" {
		var flag string
		flag, rest, _ = strings.Cut(rest, ",")
		switch strings.TrimSpace(flag) {
		case "omitempty":
			t.Omit = true
		case "ignore":
			t.Ignore = true
		}
	}
	return t
}
