// Package multipartkit encodes structured Go values into multipart/form-data
// bodies as defined by RFC 2388.
//
// Arbitrary nested values (structs, maps, slices and scalars) are flattened
// into uniquely named parts using bracketed field names such as
// address[city] or items[0][name], then framed with a caller-supplied
// boundary. Binary payloads are carried as file parts with an optional
// filename and content type. Decoding multipart bodies back into Go values
// is not provided by this package.
package multipartkit
