package multipartkit

import "github.com/google/uuid"

// RandomBoundary returns a boundary token suitable for [Marshal]. Tokens
// are unique per call, so a caller that hits [ErrInvalidBoundary] because a
// part body happened to contain the boundary can generate a fresh token and
// encode again.
func RandomBoundary() string {
	return "multipartkit-" + uuid.NewString()
}
