package multipartkit

import (
	"strconv"
	"strings"
)

// Part is one named segment of a multipart body. Within one encoded body
// part names are unique, and parts appear in the order the corresponding
// fields were declared in the source value.
type Part struct {
	Name        string
	Filename    string
	ContentType string
	Body        []byte
}

// flatten walks the node tree depth-first in insertion order and emits one
// Part per leaf. Keyed and Unkeyed nodes contribute no part themselves, so
// an empty container yields nothing.
func flatten(root Node) []Part {
	var parts []Part
	appendParts(&parts, nil, root)
	return parts
}

func appendParts(out *[]Part, path []string, n Node) {
	switch n := n.(type) {
	case *Leaf:
		name := scalarRootName
		if len(path) > 0 {
			name = renderPath(path)
		}
		switch s := n.Scalar.(type) {
		case Text:
			*out = append(*out, Part{Name: name, Body: []byte(s)})
		case File:
			*out = append(*out, Part{
				Name:        name,
				Filename:    s.Filename,
				ContentType: s.ContentType,
				Body:        s.Data,
			})
		}
	case *Keyed:
		for _, f := range n.fields {
			appendParts(out, append(path, f.name), f.node)
		}
	case *Unkeyed:
		for i, c := range n.children {
			appendParts(out, append(path, strconv.Itoa(i)), c)
		}
	}
}

func renderPath(path []string) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(path[0])
	for _, p := range path[1:] {
		b.WriteString("[")
		b.WriteString(p)
		b.WriteString("]")
	}
	return b.String()
}
