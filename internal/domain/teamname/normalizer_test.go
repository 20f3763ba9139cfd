package teamname

import "testing"

func TestNormalizer_ResolvesAliasesCaseInsensitively(t *testing.T) {
	n := Default()

	tests := map[string]string{
		"Man Utd":             "Manchester Utd",
		"  manchester united": "Manchester Utd",
		"MANČESTER JUNAJTED":  "Manchester Utd",
		"Paris Saint-Germain": "PSG",
		"Пари Сен Жермен":     "PSG",
		"psg":                 "PSG",
		"Nott'm Forest":       "Nott'm Forest",
		"Bayern München":      "Bayern Munich",
	}
	for input, want := range tests {
		got, ok := n.Normalize(input)
		if !ok || got != want {
			t.Fatalf("Normalize(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}
}

func TestNormalizer_UnknownTeamsAreNotMatched(t *testing.T) {
	n := Default()
	for _, input := range []string{"Spartak Moskva", "", "   ", "Manchester"} {
		if got, ok := n.Normalize(input); ok {
			t.Fatalf("Normalize(%q) = %q, expected no match", input, got)
		}
	}
}

func TestNormalizer_CustomTable(t *testing.T) {
	n := NewNormalizer([]Alias{
		{Canonical: "Crvena Zvezda", Names: []string{"Red Star", "Црвена Звезда"}},
		{Canonical: " ", Names: []string{"ignored"}},
	})
	if got, ok := n.Normalize("red star"); !ok || got != "Crvena Zvezda" {
		t.Fatalf("unexpected %q %v", got, ok)
	}
	if _, ok := n.Normalize("ignored"); ok {
		t.Fatalf("blank canonical must be skipped")
	}
	if n.Len() != 3 {
		t.Fatalf("expected 3 indexed spellings, got %d", n.Len())
	}
}
