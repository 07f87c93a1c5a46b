package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/core"
)

func TestDraft_SetText(t *testing.T) {
	d := core.NewDraft(sampleNote("a", 1))
	assert.False(t, d.Dirty())

	fields := map[core.Field]string{
		core.FieldName:      "N",
		core.FieldWinery:    "W",
		core.FieldVarietal:  "V",
		core.FieldRegion:    "R",
		core.FieldVintage:   "1999",
		core.FieldUserNotes: "U",
	}
	for f, v := range fields {
		require.NoError(t, d.SetText(f, v))
	}
	n := d.Note()
	assert.Equal(t, "N", n.Name)
	assert.Equal(t, "W", n.Winery)
	assert.Equal(t, "V", n.Varietal)
	assert.Equal(t, "R", n.Region)
	assert.Equal(t, "1999", n.Vintage)
	assert.Equal(t, "U", n.UserNotes)
	assert.True(t, d.Dirty())

	assert.ErrorIs(t, d.SetText("tastingNotes", "x"), core.ErrUnknownField)
}

func TestDraft_Rating(t *testing.T) {
	d := core.NewDraft(sampleNote("a", 1))
	for _, r := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, d.SetRating(r))
		assert.Equal(t, r, d.Note().Rating)
	}
	assert.ErrorIs(t, d.SetRating(0), core.ErrOutOfRange)
	assert.ErrorIs(t, d.SetRating(6), core.ErrOutOfRange)
	assert.Equal(t, 5, d.Note().Rating)
}

func TestDraft_Style(t *testing.T) {
	d := core.NewDraft(sampleNote("a", 1))
	require.NoError(t, d.SetStyle(core.StyleRose))
	assert.Equal(t, core.StyleRose, d.Note().Style)
	assert.ErrorIs(t, d.SetStyle("Orange"), core.ErrInvalidStyle)
}

func TestDraft_Characteristics(t *testing.T) {
	d := core.NewDraft(sampleNote("a", 1)) // body 4, tannin 3, acidity 3, sweetness 1

	v, err := d.AdjustCharacteristic(core.AxisBody, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, v, "clamped at the top")

	v, err = d.AdjustCharacteristic(core.AxisSweetness, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "clamped at the bottom")

	require.NoError(t, d.SetCharacteristic(core.AxisTannin, 2))
	require.NoError(t, d.SetCharacteristic(core.AxisAcidity, 5))
	assert.ErrorIs(t, d.SetCharacteristic(core.AxisAcidity, 6), core.ErrOutOfRange)
	assert.ErrorIs(t, d.SetCharacteristic("fruit", 3), core.ErrUnknownField)
	_, err = d.AdjustCharacteristic("fruit", 1)
	assert.ErrorIs(t, err, core.ErrUnknownField)

	assert.Equal(t, core.Characteristics{Body: 5, Tannin: 2, Acidity: 5, Sweetness: 1}, d.Note().Characteristics)
}

func TestDraft_IsACopy(t *testing.T) {
	orig := sampleNote("a", 1)
	orig.SearchSources = []core.SearchSource{{Title: "x", URI: "https://x"}}
	d := core.NewDraft(orig)

	require.NoError(t, d.SetText(core.FieldName, "changed"))
	assert.Equal(t, "Wine a", orig.Name)

	snap := d.Note()
	snap.SearchSources[0].Title = "mutated"
	assert.Equal(t, "x", d.Note().SearchSources[0].Title)
	assert.Equal(t, "x", orig.SearchSources[0].Title)
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]core.Style{
		"red":        core.StyleRed,
		"WHITE":      core.StyleWhite,
		"rose":       core.StyleRose,
		"Rosé":       core.StyleRose,
		" sparkling": core.StyleSparkling,
		"Sweet":      core.StyleSweet,
		"fortified":  core.StyleFortified,
	} {
		got, err := core.ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := core.ParseStyle("orange")
	assert.ErrorIs(t, err, core.ErrInvalidStyle)
}
