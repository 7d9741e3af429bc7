package multipartkit_test

import (
	"strings"
	"testing"

	multipartkit "github.com/briannadoubt/multipart-kit"
)

func TestRandomBoundary(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := multipartkit.RandomBoundary()
		if !strings.HasPrefix(b, "multipartkit-") {
			t.Fatalf("unexpected boundary format: %q", b)
		}
		if seen[b] {
			t.Fatalf("boundary %q generated twice", b)
		}
		seen[b] = true
	}
}

func TestRandomBoundary_UsableWithMarshal(t *testing.T) {
	t.Parallel()

	boundary := multipartkit.RandomBoundary()
	encoded, err := multipartkit.Marshal(map[string]string{"key": "value"}, boundary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts, err := decodeParts(encoded, boundary)
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if len(parts) != 1 || parts[0].Name != "key" || parts[0].Body != "value" {
		t.Errorf("unexpected parts: %+v", parts)
	}
}
