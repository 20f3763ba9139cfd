package teamname

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	DefaultSimilarityThreshold = 0.8
	DefaultMinContainmentLen   = 4
)

// Stage names the cascade step that produced a match.
type Stage string

const (
	StageNone       Stage = ""
	StageExact      Stage = "exact"
	StageCanonical  Stage = "canonical"
	StageSimilarity Stage = "similarity"
	StageContains   Stage = "contains"
)

// Matcher decides whether two team names from different sources denote the same team.
type Matcher struct {
	normalizer          *Normalizer
	similarityThreshold float64
	minContainmentLen   int
}

func NewMatcher(normalizer *Normalizer) *Matcher {
	if normalizer == nil {
		normalizer = Default()
	}
	return &Matcher{
		normalizer:          normalizer,
		similarityThreshold: DefaultSimilarityThreshold,
		minContainmentLen:   DefaultMinContainmentLen,
	}
}

// Match runs the cascade exact, canonical, edit-distance similarity, then
// containment, stopping at the first stage that succeeds.
func (m *Matcher) Match(a, b string) Stage {
	left, right := fold(a), fold(b)
	if left == "" || right == "" {
		return StageNone
	}

	if left == right {
		return StageExact
	}

	if ca, ok := m.normalizer.Normalize(left); ok {
		if cb, ok := m.normalizer.Normalize(right); ok && ca == cb {
			return StageCanonical
		}
	}

	if Similarity(left, right) >= m.similarityThreshold {
		return StageSimilarity
	}

	if utf8.RuneCountInString(left) >= m.minContainmentLen && utf8.RuneCountInString(right) >= m.minContainmentLen {
		if strings.Contains(left, right) || strings.Contains(right, left) {
			return StageContains
		}
	}

	return StageNone
}

func (m *Matcher) TeamsMatch(a, b string) bool {
	return m.Match(a, b) != StageNone
}

// FixtureMatches requires home to match home and away to match away.
// Swapped sides are never considered.
func (m *Matcher) FixtureMatches(fixtureHome, fixtureAway, quoteHome, quoteAway string) bool {
	return m.TeamsMatch(fixtureHome, quoteHome) && m.TeamsMatch(fixtureAway, quoteAway)
}

// Similarity is 1 - levenshtein(a, b) / max(len(a), len(b)), over runes and case-folded.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
