package multipartkit

// Node is one point in the shape of a value being encoded: a terminal
// scalar, a collection of named children, or a collection of positional
// children. A Node is append-only while it is being built and must not be
// modified once handed to the encoder.
type Node interface {
	node() // marker method restricting implementations to this package
}

// Leaf is a terminal Node holding a single scalar.
type Leaf struct {
	Scalar Scalar
}

// NewLeaf returns a Leaf wrapping s.
func NewLeaf(s Scalar) *Leaf {
	return &Leaf{Scalar: s}
}

func (*Leaf) node() {}

// Keyed is a Node whose children are addressed by field name. Insertion
// order is preserved and determines the order of the encoded parts.
type Keyed struct {
	fields []keyedField
}

type keyedField struct {
	name string
	node Node
}

// NewKeyed returns an empty Keyed node.
func NewKeyed() *Keyed {
	return &Keyed{}
}

// Add appends a named child and returns the receiver for chaining. Children
// are never removed or renamed once added.
func (k *Keyed) Add(name string, n Node) *Keyed {
	k.fields = append(k.fields, keyedField{name: name, node: n})
	return k
}

// Len returns the number of children.
func (k *Keyed) Len() int {
	return len(k.fields)
}

func (*Keyed) node() {}

// Unkeyed is a Node whose children are addressed by position.
type Unkeyed struct {
	children []Node
}

// NewUnkeyed returns an empty Unkeyed node.
func NewUnkeyed() *Unkeyed {
	return &Unkeyed{}
}

// Append appends a positional child and returns the receiver for chaining.
func (u *Unkeyed) Append(n Node) *Unkeyed {
	u.children = append(u.children, n)
	return u
}

// Len returns the number of children.
func (u *Unkeyed) Len() int {
	return len(u.children)
}

func (*Unkeyed) node() {}

// Scalar is a terminal value: either UTF-8 text or a binary payload.
type Scalar interface {
	scalar()
}

// Text is a textual scalar. Numeric and boolean values are converted to
// their canonical textual representation before becoming Text.
type Text string

func (Text) scalar() {}

// File is a binary payload with an optional filename and content type. A
// File is an opaque terminal: it is never decomposed further, even when it
// appears nested inside keyed or unkeyed containers.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (File) scalar() {}
