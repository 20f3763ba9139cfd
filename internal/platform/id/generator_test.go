package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := NewPrefixedGenerator("job")

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
	if !strings.HasPrefix(first, "job_") {
		t.Fatalf("expected job_ prefix, got %q", first)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(first, "job_")); err != nil {
		t.Fatalf("expected uuid suffix: %v", err)
	}
}

func TestPrefixedGeneratorWithoutPrefix(t *testing.T) {
	value, err := NewPrefixedGenerator("").NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if _, err := uuid.Parse(value); err != nil {
		t.Fatalf("expected bare uuid, got %q", value)
	}
}
