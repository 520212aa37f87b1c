package sport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-people/internal/sport"
)

// TestParse_KnownRoundTrip verifies that every canonical label parses back to its own category.
func TestParse_KnownRoundTrip(t *testing.T) {
	all := sport.AllKnown()
	require.Len(t, all, 23, "The reference catalog has 23 entries")

	for _, s := range all {
		t.Run(s.Label(), func(t *testing.T) {
			assert.Equal(t, s, sport.Parse(s.Label()))
			assert.False(t, sport.Parse(s.Label()).IsOther())
		})
	}
}

func TestParse_CaseAndWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  sport.Kind
	}{
		{"soccer", sport.KindSoccer},
		{"  SOCCER  ", sport.KindSoccer},
		{"Tennis\n", sport.KindTennis},
		{"water polo", sport.KindWaterPolo},
		{"water_polo", sport.KindWaterPolo},
		{"Water Polo", sport.KindWaterPolo},
		{"WATER_POLO", sport.KindWaterPolo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sport.Parse(tt.input).Kind())
		})
	}
}

// TestParse_Other checks the casing policy: Other keeps the trimmed text as typed.
func TestParse_Other(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Curling", "Curling"},
		{"  Ultimate Frisbee ", "Ultimate Frisbee"},
		{"water-polo", "water-polo"},
		{"", ""},
		{"Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := sport.Parse(tt.input)
			assert.True(t, s.IsOther())
			assert.Equal(t, sport.KindOther, s.Kind())
			assert.Equal(t, tt.want, s.Label())
			assert.Equal(t, tt.want, s.String())

			// Re-parsing the rendered text yields the same Other value.
			assert.Equal(t, s, sport.Parse(s.Label()))
		})
	}
}

func TestGlyph(t *testing.T) {
	for _, s := range sport.AllKnown() {
		assert.NotEmpty(t, s.Glyph(), "Known sport %s needs a glyph", s)
	}
	assert.Equal(t, "⚽", sport.Known(sport.KindSoccer).Glyph())
	assert.Empty(t, sport.Other("Curling").Glyph())
}

func TestAllKnown_Order(t *testing.T) {
	all := sport.AllKnown()
	assert.Equal(t, "Baseball", all[0].Label())
	assert.Equal(t, "Water polo", all[11].Label())
	assert.Equal(t, "Wrestling", all[len(all)-1].Label())

	// Callers get their own copy.
	all[0] = sport.Other("mutated")
	assert.Equal(t, "Baseball", sport.AllKnown()[0].Label())
}

func TestKnown_OutOfRange(t *testing.T) {
	assert.True(t, sport.Known(sport.KindOther).IsOther())
	assert.True(t, sport.Known(sport.Kind(99)).IsOther())
	assert.Equal(t, sport.KindGolf, sport.Known(sport.KindGolf).Kind())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "water_polo", sport.Known(sport.KindWaterPolo).Key())
	assert.Empty(t, sport.Other("Golfing").Key())
}
