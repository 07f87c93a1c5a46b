package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/core"
)

func sortFixture() []core.WineNote {
	mk := func(id, vintage, region string, rating int, style core.Style, created int64) core.WineNote {
		n := sampleNote(id, created)
		n.Vintage = vintage
		n.Region = region
		n.Rating = rating
		n.Style = style
		return n
	}
	return []core.WineNote{
		mk("a", "2015", "Bordeaux", 3, core.StyleRed, 300),
		mk("b", "2020", "Alsace", 5, core.StyleWhite, 100),
		mk("c", "N/V", "Champagne", 0, core.StyleSparkling, 500),
		mk("d", "2018", "Douro", 4, core.StyleFortified, 200),
		mk("e", "2015", "Alsace", 3, core.StyleRed, 400),
	}
}

func ids(notes []core.WineNote) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestSorted(t *testing.T) {
	tests := []struct {
		key  core.SortKey
		want []string
	}{
		{core.SortDateAdded, []string{"c", "e", "a", "d", "b"}},
		{core.SortVintage, []string{"c", "b", "d", "a", "e"}},
		{core.SortRegion, []string{"b", "e", "a", "c", "d"}},
		{core.SortRating, []string{"b", "d", "a", "e", "c"}},
		{core.SortStyle, []string{"d", "a", "e", "c", "b"}},
		{core.SortKey("bogus"), []string{"c", "e", "a", "d", "b"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			input := sortFixture()
			got := core.Sorted(input, tt.key)
			assert.Equal(t, tt.want, ids(got))

			// Idempotent.
			assert.Equal(t, ids(got), ids(core.Sorted(got, tt.key)))

			// Input untouched.
			assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(input))
		})
	}
}

func TestSorted_Empty(t *testing.T) {
	assert.Empty(t, core.Sorted(nil, core.SortRating))
}

func TestParseSortKey(t *testing.T) {
	k, err := core.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, core.SortDateAdded, k)

	for _, key := range core.SortKeys() {
		got, err := core.ParseSortKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}

	k, err = core.ParseSortKey(" Rating ")
	require.NoError(t, err)
	assert.Equal(t, core.SortRating, k)

	_, err = core.ParseSortKey("price")
	assert.ErrorIs(t, err, core.ErrInvalidSortKey)
}
