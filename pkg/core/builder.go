package core

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRating is the rating every new note starts with.
// The AI never supplies ratings.
const DefaultRating = 5

// NoteBuilder normalizes gateway output into fully populated notes.
// It is the single place where defaulting policy lives.
type NoteBuilder struct {
	Placeholders Placeholders
	Now          func() time.Time
	NewID        func() string
}

// NewNoteBuilder returns a builder using the given placeholders, the wall clock
// and random UUIDs.
func NewNoteBuilder(p Placeholders) NoteBuilder {
	return NoteBuilder{
		Placeholders: p,
		Now:          time.Now,
		NewID:        uuid.NewString,
	}
}

// Build produces a new note from an analysis. imageURL and sources may be empty.
// Characteristic values and style strings are passed through unvalidated.
func (b NoteBuilder) Build(a WineAnalysis, imageURL string, sources []SearchSource) WineNote {
	p := b.Placeholders
	if p == (Placeholders{}) {
		p = EnglishPlaceholders
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	newID := uuid.NewString
	if b.NewID != nil {
		newID = b.NewID
	}

	style := Style(strings.TrimSpace(a.Style))
	if style == "" {
		style = StyleRed
	}

	chars := DefaultCharacteristics
	if a.Characteristics != nil {
		chars = *a.Characteristics
	}

	var src []SearchSource
	if len(sources) > 0 {
		src = slices.Clone(sources)
	}

	return WineNote{
		ID:              newID(),
		Name:            orDefault(a.Name, p.Name),
		Winery:          orDefault(a.Winery, p.Winery),
		Varietal:        orDefault(a.Varietal, p.Varietal),
		Region:          orDefault(a.Region, p.Region),
		Vintage:         orDefault(a.Vintage, p.Vintage),
		TastingNotes:    orDefault(a.Summary, p.TastingNotes),
		Rating:          DefaultRating,
		Style:           style,
		Characteristics: chars,
		ImageURL:        imageURL,
		CreatedAt:       now().UnixMilli(),
		SearchSources:   src,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
