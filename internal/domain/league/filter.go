package league

import (
	"strings"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
)

// DefaultAllowed lists the retained competitions as lowercased
// "country: competition" labels.
var DefaultAllowed = []string{
	"england: premier league",
	"england: championship",
	"france: ligue 1",
	"italy: serie a",
	"germany: bundesliga",
	"spain: laliga",
	"belgium: jupiler pro league",
	"netherlands: eredivisie",
	"switzerland: super league",
	"liga prvaka",
	"champions league",
}

// DefaultContinental are allowed entries matched as substrings, since continental
// cups are listed under varying associations ("Europe: Champions League - League phase").
var DefaultContinental = []string{
	"liga prvaka",
	"champions league",
}

// DefaultBlocked catches reserve, youth, women's and lower-tier variants that a
// substring allow-match would otherwise let through.
var DefaultBlocked = []string{
	"primavera",
	"serie b",
	"serie d",
	"laliga2",
	"ligue 2",
	"2. bundesliga",
	"3. liga",
	"premier league cup",
	"premier league 2",
	"u18",
	"u19",
	"u21",
	"u23",
	"youth",
	"reserve",
	"reserves",
	"women",
	"women's super league",
	"super league 2",
	"amateur",
	"regional",
	"group a",
	"group b",
	"group c",
	"group 1",
	"group 2",
	"eerste divisie",
	"tweede divisie",
	"derde divisie",
	"keuken kampioen",
	"nifl",
	"first division",
	"second division",
	"third division",
	"tt premier league",
	"premier division",
}

// Filter is the two-stage competition filter: an allow stage, then a block
// stage applied only to labels the allow stage kept.
type Filter struct {
	allowed     []string
	continental map[string]struct{}
	blocked     []string
}

func NewFilter(allowed, continental, blocked []string) *Filter {
	f := &Filter{
		allowed:     lowerAll(allowed),
		continental: make(map[string]struct{}, len(continental)),
		blocked:     lowerAll(blocked),
	}
	for _, entry := range lowerAll(continental) {
		f.continental[entry] = struct{}{}
	}
	return f
}

func DefaultFilter() *Filter {
	return NewFilter(DefaultAllowed, DefaultContinental, DefaultBlocked)
}

// AllowedEntries returns the lowercased allow-list, as handed to the list scraper.
func (f *Filter) AllowedEntries() []string {
	return append([]string(nil), f.allowed...)
}

// Allowed is the strict allow stage: exact label equality, except continental
// entries which match as substrings.
func (f *Filter) Allowed(label string) bool {
	normalized := normalize(label)
	if normalized == "" {
		return false
	}
	for _, entry := range f.allowed {
		if _, ok := f.continental[entry]; ok {
			if strings.Contains(normalized, entry) {
				return true
			}
			continue
		}
		if normalized == entry {
			return true
		}
	}
	return false
}

// AllowedBySubstring is the loose allow stage used for bulk scraping: any label
// containing an allowed entry passes. Always follow it with Blocked.
func (f *Filter) AllowedBySubstring(label string) bool {
	normalized := normalize(label)
	if normalized == "" {
		return false
	}
	for _, entry := range f.allowed {
		if strings.Contains(normalized, entry) {
			return true
		}
	}
	return false
}

// Blocked reports whether label contains any blocked substring.
func (f *Filter) Blocked(label string) bool {
	normalized := normalize(label)
	for _, entry := range f.blocked {
		if strings.Contains(normalized, entry) {
			return true
		}
	}
	return false
}

// Retain is Allowed followed by the block stage.
func (f *Filter) Retain(label string) bool {
	return f.Allowed(label) && !f.Blocked(label)
}

// RetainLoose is AllowedBySubstring followed by the block stage.
func (f *Filter) RetainLoose(label string) bool {
	return f.AllowedBySubstring(label) && !f.Blocked(label)
}

// Apply keeps the fixtures whose competition passes Retain, in order.
func (f *Filter) Apply(fixtures []fixture.Fixture) []fixture.Fixture {
	return f.apply(fixtures, f.Retain)
}

// ApplyLoose keeps the fixtures whose competition passes RetainLoose, in order.
func (f *Filter) ApplyLoose(fixtures []fixture.Fixture) []fixture.Fixture {
	return f.apply(fixtures, f.RetainLoose)
}

func (f *Filter) apply(fixtures []fixture.Fixture, keep func(string) bool) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		if keep(item.League) {
			out = append(out, item)
		}
	}
	return out
}

func normalize(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if v := normalize(value); v != "" {
			out = append(out, v)
		}
	}
	return out
}
