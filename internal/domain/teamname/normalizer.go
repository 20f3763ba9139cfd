package teamname

import (
	"strings"
	"sync"
)

// Normalizer resolves free-text team names to canonical names through an
// exact, case-insensitive alias lookup. The index is immutable after construction.
type Normalizer struct {
	index map[string]string
}

func NewNormalizer(aliases []Alias) *Normalizer {
	index := make(map[string]string, len(aliases)*4)
	for _, alias := range aliases {
		canonical := strings.TrimSpace(alias.Canonical)
		if canonical == "" {
			continue
		}
		for _, name := range alias.Names {
			if key := fold(name); key != "" {
				index[key] = canonical
			}
		}
		index[fold(canonical)] = canonical
	}
	return &Normalizer{index: index}
}

var defaultNormalizer = sync.OnceValue(func() *Normalizer {
	return NewNormalizer(DefaultAliases)
})

// Default returns the normalizer over DefaultAliases.
func Default() *Normalizer {
	return defaultNormalizer()
}

// Normalize returns the canonical name for name, or false for unknown teams.
func (n *Normalizer) Normalize(name string) (string, bool) {
	key := fold(name)
	if n == nil || key == "" {
		return "", false
	}
	canonical, ok := n.index[key]
	return canonical, ok
}

// Len is the number of indexed spellings.
func (n *Normalizer) Len() int {
	if n == nil {
		return 0
	}
	return len(n.index)
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
