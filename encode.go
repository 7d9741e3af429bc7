package multipartkit

import (
	"context"
	"reflect"
	"sort"
	"strconv"
)

// Marshaler is the interface implemented by types that can describe their
// own shape to the encoder. The returned [Node] is used in place of the
// reflection walk: a value reports itself as keyed, unkeyed or scalar by
// returning a [Keyed], [Unkeyed] or [Leaf] node. The context is the one
// supplied to [MarshalContext], forwarded unchanged.
type Marshaler interface {
	MarshalMultipart(ctx context.Context) (Node, error)
}

// scalarRootName is the part name used when the root value is itself a
// scalar, since no enclosing field key exists. Decoders of output produced
// by this package must agree on it.
const scalarRootName = "value"

// EncodeToString is a convenience function that returns the
// multipart/form-data encoding of v as a string.
func EncodeToString(v interface{}, boundary string) (string, error) {
	b, err := Marshal(v, boundary)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal returns the multipart/form-data encoding of v framed with
// boundary.
//
// Structs and string-keyed maps become keyed containers, slices and arrays
// become indexed containers, and everything else becomes a single part.
// Part names follow bracket nesting: a field at path a, b, c is named
// "a[b][c]", with decimal indices for slice elements. A root value that is
// itself a scalar produces exactly one part named "value". Nil pointers,
// nil interface values and fields tagged omitempty with zero values are
// omitted entirely; they never produce an empty part.
//
// []byte values and [File] values become binary parts. A File additionally
// carries its filename and content type into the part headers.
//
// Marshal returns [ErrInvalidBoundary] if boundary is empty or occurs
// anywhere in the output it would frame. Any error aborts the whole call;
// no partial output is returned.
func Marshal(v interface{}, boundary string) ([]byte, error) {
	return MarshalContext(context.Background(), v, boundary)
}

// MarshalContext is [Marshal] with a caller-supplied context. The encoder
// never inspects ctx; it is forwarded unchanged to every
// [Marshaler.MarshalMultipart] call made during the walk. Callers attach
// values with their own unexported key types in the usual way.
func MarshalContext(ctx context.Context, v interface{}, boundary string) ([]byte, error) {
	var parts []Part
	switch v := v.(type) {
	case nil:
		// No parts; the output is just the terminal boundary.
	case Node:
		// A hand-built tree is used as-is, skipping the reflection walk.
		parts = flatten(v)
	default:
		root, err := buildValue(ctx, nil, reflect.ValueOf(v))
		if err != nil {
			return nil, err
		}
		if root != nil {
			parts = flatten(root)
		}
	}
	return serialize(parts, boundary)
}

var fileType = reflect.TypeOf(File{})

// buildValue walks one value into its Node, threading the field path for
// error annotation. A nil Node with a nil error means the value is absent
// and contributes nothing to the output.
func buildValue(ctx context.Context, path []string, v reflect.Value) (Node, error) {
	// Absent optionals are omitted entirely; absence must not produce a
	// zero-length form field.
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil, nil
	}

	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	// Handle custom Marshaler first.
	if m, ok := asMarshaler(v); ok {
		n, err := m.MarshalMultipart(ctx)
		if err != nil {
			return nil, &MarshalerError{Path: renderPath(path), Err: err}
		}
		return n, nil
	}

	// A File is an opaque terminal wherever it appears.
	if v.Type() == fileType {
		return NewLeaf(v.Interface().(File)), nil
	}

	// Dispatch based on the kind of the value.
	switch v.Kind() {
	case reflect.Struct:
		return marshalStruct(ctx, path, v)
	case reflect.Map:
		return marshalMap(ctx, path, v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			// Raw bytes are one binary part, not one part per element.
			return NewLeaf(File{Data: append([]byte(nil), v.Bytes()...)}), nil
		}
		return marshalSequence(ctx, path, v)
	case reflect.Array:
		return marshalSequence(ctx, path, v)
	case reflect.Interface:
		return buildValue(ctx, path, v.Elem())
	default:
		return marshalScalar(path, v)
	}
}

func marshalStruct(ctx context.Context, path []string, v reflect.Value) (Node, error) {
	keyed := NewKeyed()
	tags := fieldTags(v)
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore || tag.Name == "" {
			continue
		}
		fv := v.Field(i)
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		child, err := buildValue(ctx, append(path, tag.Name), fv)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		keyed.Add(tag.Name, child)
	}
	return keyed, nil
}

func marshalMap(ctx context.Context, path []string, v reflect.Value) (Node, error) {
	keyType := v.Type().Key()
	if keyType.Kind() != reflect.String {
		return nil, &UnsupportedTypeError{Type: v.Type(), Path: renderPath(path)}
	}

	// Go randomises map iteration order; sorted keys keep repeated encode
	// calls byte-identical.
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	keyed := NewKeyed()
	for _, k := range keys {
		mv := v.MapIndex(reflect.ValueOf(k).Convert(keyType))
		if !mv.IsValid() || (mv.Kind() == reflect.Interface && mv.IsNil()) {
			continue
		}
		child, err := buildValue(ctx, append(path, k), mv)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		keyed.Add(k, child)
	}
	return keyed, nil
}

func marshalSequence(ctx context.Context, path []string, v reflect.Value) (Node, error) {
	unkeyed := NewUnkeyed()
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Interface && elem.IsNil() {
			continue
		}
		child, err := buildValue(ctx, append(path, strconv.Itoa(i)), elem)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		unkeyed.Append(child)
	}
	return unkeyed, nil
}

func marshalScalar(path []string, v reflect.Value) (Node, error) {
	switch v.Kind() {
	case reflect.String:
		return NewLeaf(Text(v.String())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewLeaf(Text(strconv.FormatInt(v.Int(), 10))), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewLeaf(Text(strconv.FormatUint(v.Uint(), 10))), nil
	case reflect.Float32, reflect.Float64:
		return NewLeaf(Text(strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()))), nil
	case reflect.Bool:
		return NewLeaf(Text(strconv.FormatBool(v.Bool()))), nil
	default:
		return nil, &UnsupportedTypeError{Type: v.Type(), Path: renderPath(path)}
	}
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if v.CanInterface() {
		if m, ok := v.Interface().(Marshaler); ok {
			return m, true
		}
	}
	return nil, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
