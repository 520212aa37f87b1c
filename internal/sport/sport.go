// Package sport models the favorite-sport category: a fixed catalog of known
// sports plus an open Other variant carrying arbitrary text.
package sport

import "strings"

// Kind identifies a known category. KindOther marks free text.
type Kind int

const (
	KindOther Kind = iota
	KindBaseball
	KindSoccer
	KindBasketball
	KindTennis
	KindGolf
	KindHockey
	KindCricket
	KindRugby
	KindHandball
	KindFootball
	KindVolleyball
	KindWaterPolo
	KindEquestrian
	KindSwimming
	KindRunning
	KindCycling
	KindSkating
	KindSkateboarding
	KindSurfing
	KindSkiing
	KindSnowboarding
	KindRowing
	KindWrestling
)

// info holds the fixed attributes of a known category.
type info struct {
	label string // Canonical English label, also the storage form.
	key   string // Stable identifier used to build translation keys.
	glyph string
}

// catalog is indexed by Kind. Index 0 (KindOther) is unused.
var catalog = [...]info{
	KindOther:         {},
	KindBaseball:      {"Baseball", "baseball", "⚾"},
	KindSoccer:        {"Soccer", "soccer", "⚽"},
	KindBasketball:    {"Basketball", "basketball", "🏀"},
	KindTennis:        {"Tennis", "tennis", "🎾"},
	KindGolf:          {"Golf", "golf", "⛳"},
	KindHockey:        {"Hockey", "hockey", "🏒"},
	KindCricket:       {"Cricket", "cricket", "🏏"},
	KindRugby:         {"Rugby", "rugby", "🏉"},
	KindHandball:      {"Handball", "handball", "🤾"},
	KindFootball:      {"Football", "football", "🏈"},
	KindVolleyball:    {"Volleyball", "volleyball", "🏐"},
	KindWaterPolo:     {"Water polo", "water_polo", "🤽"},
	KindEquestrian:    {"Equestrian", "equestrian", "🐎"},
	KindSwimming:      {"Swimming", "swimming", "🏊"},
	KindRunning:       {"Running", "running", "🏃"},
	KindCycling:       {"Cycling", "cycling", "🚴"},
	KindSkating:       {"Skating", "skating", "🛼"},
	KindSkateboarding: {"Skateboarding", "skateboarding", "🛹"},
	KindSurfing:       {"Surfing", "surfing", "🏄"},
	KindSkiing:        {"Skiing", "skiing", "🎿"},
	KindSnowboarding:  {"Snowboarding", "snowboarding", "🏂"},
	KindRowing:        {"Rowing", "rowing", "🚣"},
	KindWrestling:     {"Wrestling", "wrestling", "🤼"},
}

// lookup maps the lower-cased match key to its category.
var lookup = func() map[string]Kind {
	m := make(map[string]Kind, len(catalog)+1)
	for k := KindBaseball; k <= KindWrestling; k++ {
		m[strings.ToLower(catalog[k].label)] = k
	}
	m["water_polo"] = KindWaterPolo
	return m
}()

// Sport is a favorite-sport value. The zero value is Other with empty text.
type Sport struct {
	kind  Kind
	other string
}

// Known returns the category for k. Out-of-range kinds yield Other("").
func Known(k Kind) Sport {
	if k <= KindOther || k > KindWrestling {
		return Sport{}
	}
	return Sport{kind: k}
}

// Other returns the free-text variant holding text unchanged.
func Other(text string) Sport {
	return Sport{kind: KindOther, other: text}
}

// Parse never fails: input is trimmed and matched case-insensitively against
// the catalog. Unmatched input becomes Other with the trimmed text in its
// original casing.
func Parse(text string) Sport {
	trimmed := strings.TrimSpace(text)
	if k, ok := lookup[strings.ToLower(trimmed)]; ok {
		return Sport{kind: k}
	}
	return Other(trimmed)
}

// AllKnown returns the catalog in its fixed order.
func AllKnown() []Sport {
	all := make([]Sport, 0, KindWrestling)
	for k := KindBaseball; k <= KindWrestling; k++ {
		all = append(all, Sport{kind: k})
	}
	return all
}

// Kind reports the category, KindOther for free text.
func (s Sport) Kind() Kind { return s.kind }

// IsOther reports whether s carries free text.
func (s Sport) IsOther() bool { return s.kind == KindOther }

// Label is the canonical English label for known sports and the stored text
// for Other. It is the form written to storage.
func (s Sport) Label() string {
	if s.kind == KindOther {
		return s.other
	}
	return catalog[s.kind].label
}

// String implements fmt.Stringer.
func (s Sport) String() string { return s.Label() }

// Key is the stable identifier used for translation lookups. Empty for Other.
func (s Sport) Key() string {
	if s.kind == KindOther {
		return ""
	}
	return catalog[s.kind].key
}

// Glyph returns the decorative emoji of a known sport, empty for Other.
func (s Sport) Glyph() string {
	if s.kind == KindOther {
		return ""
	}
	return catalog[s.kind].glyph
}
