package id

import (
	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// PrefixedGenerator issues random UUIDv4 identifiers behind a fixed prefix,
// e.g. "job_3f0c...". An empty prefix yields bare UUIDs.
type PrefixedGenerator struct {
	prefix string
}

func NewPrefixedGenerator(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

func (g *PrefixedGenerator) NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	if g == nil || g.prefix == "" {
		return u.String(), nil
	}
	return g.prefix + "_" + u.String(), nil
}
