package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/cellar/pkg/core"
)

func fixedBuilder(p core.Placeholders) core.NoteBuilder {
	b := core.NewNoteBuilder(p)
	b.Now = func() time.Time { return time.UnixMilli(1700000000123) }
	b.NewID = func() string { return "fixed-id" }
	return b
}

func TestNoteBuilder_AllDefaults(t *testing.T) {
	note := fixedBuilder(core.EnglishPlaceholders).Build(core.WineAnalysis{}, "", nil)

	assert.Equal(t, core.WineNote{
		ID:              "fixed-id",
		Name:            "Unknown Wine",
		Winery:          "Unknown Winery",
		Varietal:        "Unknown Varietal",
		Region:          "Unknown Region",
		Vintage:         "N/V",
		TastingNotes:    "No AI notes available",
		Rating:          core.DefaultRating,
		Style:           core.StyleRed,
		Characteristics: core.Characteristics{Body: 3, Tannin: 3, Acidity: 3, Sweetness: 1},
		CreatedAt:       1700000000123,
	}, note)
}

func TestNoteBuilder_MissingSubsets(t *testing.T) {
	full := core.WineAnalysis{
		Name:            "Tignanello",
		Winery:          "Antinori",
		Varietal:        "Sangiovese",
		Region:          "Tuscany",
		Vintage:         "2019",
		Summary:         "Cherry, leather.",
		Style:           "Red",
		Characteristics: &core.Characteristics{Body: 4, Tannin: 4, Acidity: 4, Sweetness: 1},
	}
	clearers := map[string]func(*core.WineAnalysis){
		"name":     func(a *core.WineAnalysis) { a.Name = "" },
		"winery":   func(a *core.WineAnalysis) { a.Winery = "" },
		"varietal": func(a *core.WineAnalysis) { a.Varietal = "" },
		"region":   func(a *core.WineAnalysis) { a.Region = " " },
		"vintage":  func(a *core.WineAnalysis) { a.Vintage = "" },
		"summary":  func(a *core.WineAnalysis) { a.Summary = "" },
		"style":    func(a *core.WineAnalysis) { a.Style = "" },
		"chars":    func(a *core.WineAnalysis) { a.Characteristics = nil },
	}

	// Every subset of missing fields.
	keys := make([]string, 0, len(clearers))
	for k := range clearers {
		keys = append(keys, k)
	}
	b := core.NewNoteBuilder(core.EnglishPlaceholders)
	for mask := 0; mask < 1<<len(keys); mask++ {
		a := full
		c := *full.Characteristics
		a.Characteristics = &c
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				clearers[k](&a)
			}
		}
		note := b.Build(a, "", nil)

		assert.NotEmpty(t, note.ID)
		assert.NotZero(t, note.CreatedAt)
		for _, v := range []string{note.Name, note.Winery, note.Varietal, note.Region, note.Vintage, note.TastingNotes, string(note.Style)} {
			assert.NotEmpty(t, v, "mask %b", mask)
		}
		assert.Equal(t, core.DefaultRating, note.Rating)
		if a.Characteristics == nil {
			assert.Equal(t, core.DefaultCharacteristics, note.Characteristics)
		} else {
			assert.Equal(t, *a.Characteristics, note.Characteristics)
		}
	}
}

func TestNoteBuilder_PassThrough(t *testing.T) {
	a := core.WineAnalysis{
		Style:           "Orange",
		Characteristics: &core.Characteristics{Body: 9, Tannin: 0, Acidity: -1, Sweetness: 7},
	}
	note := core.NewNoteBuilder(core.EnglishPlaceholders).Build(a, "data:image/jpeg;base64,AA==", nil)

	assert.Equal(t, core.Style("Orange"), note.Style)
	assert.Equal(t, core.Characteristics{Body: 9, Tannin: 0, Acidity: -1, Sweetness: 7}, note.Characteristics)
	assert.Equal(t, "data:image/jpeg;base64,AA==", note.ImageURL)
}

func TestNoteBuilder_Sources(t *testing.T) {
	b := core.NewNoteBuilder(core.EnglishPlaceholders)

	assert.Nil(t, b.Build(core.WineAnalysis{}, "", []core.SearchSource{}).SearchSources)

	src := []core.SearchSource{{Title: "a", URI: "https://a"}, {Title: "b", URI: "https://b"}}
	note := b.Build(core.WineAnalysis{}, "", src)
	assert.Equal(t, src, note.SearchSources)

	src[0].Title = "mutated"
	assert.Equal(t, "a", note.SearchSources[0].Title)
}

func TestNoteBuilder_UniqueIDs(t *testing.T) {
	b := core.NewNoteBuilder(core.EnglishPlaceholders)
	seen := make(map[string]bool)
	for range 100 {
		id := b.Build(core.WineAnalysis{}, "", nil).ID
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNoteBuilder_ZeroValue(t *testing.T) {
	var b core.NoteBuilder
	note := b.Build(core.WineAnalysis{}, "", nil)
	assert.Equal(t, "Unknown Wine", note.Name)
	assert.NotEmpty(t, note.ID)
}

func TestPlaceholdersFor(t *testing.T) {
	tests := []struct {
		locale string
		want   core.Placeholders
	}{
		{"", core.EnglishPlaceholders},
		{"en", core.EnglishPlaceholders},
		{"en-GB", core.EnglishPlaceholders},
		{"zh", core.ChinesePlaceholders},
		{"zh-CN", core.ChinesePlaceholders},
		{"not a locale!", core.EnglishPlaceholders},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, core.PlaceholdersFor(tt.locale))
		})
	}

	note := fixedBuilder(core.PlaceholdersFor("zh")).Build(core.WineAnalysis{}, "", nil)
	assert.Equal(t, "未知酒款", note.Name)
	assert.Equal(t, "暂无AI笔记", note.TastingNotes)
}
