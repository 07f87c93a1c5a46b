// Package core holds the wine journal domain: the note schema, the collection
// store, the sort projection and the ingestion/edit pipelines.
package core

import (
	"fmt"
	"strings"
	"time"
)

// Style is the broad category of a wine.
type Style string

const (
	StyleRed       Style = "Red"
	StyleWhite     Style = "White"
	StyleRose      Style = "Rosé"
	StyleSparkling Style = "Sparkling"
	StyleSweet     Style = "Sweet"
	StyleFortified Style = "Fortified"
)

// Styles returns every known style in display order.
func Styles() []Style {
	return []Style{StyleRed, StyleWhite, StyleRose, StyleSparkling, StyleSweet, StyleFortified}
}

// Valid reports whether s is one of the enumerated styles.
func (s Style) Valid() bool {
	for _, known := range Styles() {
		if s == known {
			return true
		}
	}
	return false
}

// Characteristics is the four-axis structural profile of a wine.
// Each axis is conventionally in the range 1..5.
type Characteristics struct {
	Body      int `json:"body" yaml:"body"`
	Tannin    int `json:"tannin" yaml:"tannin"`
	Acidity   int `json:"acidity" yaml:"acidity"`
	Sweetness int `json:"sweetness" yaml:"sweetness"`
}

// DefaultCharacteristics is used when an analysis carries no profile at all.
var DefaultCharacteristics = Characteristics{Body: 3, Tannin: 3, Acidity: 3, Sweetness: 1}

// SearchSource is a citation returned by research-mode ingestion.
type SearchSource struct {
	Title string `json:"title" yaml:"title"`
	URI   string `json:"uri" yaml:"uri"`
}

// WineNote is the persisted record for one tasted or identified wine.
type WineNote struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Winery          string          `json:"winery" yaml:"winery"`
	Varietal        string          `json:"varietal" yaml:"varietal"`
	Region          string          `json:"region" yaml:"region"`
	Vintage         string          `json:"vintage" yaml:"vintage"`
	TastingNotes    string          `json:"tastingNotes" yaml:"tastingNotes"`
	UserNotes       string          `json:"userNotes,omitempty" yaml:"userNotes,omitempty"`
	Rating          int             `json:"rating,omitempty" yaml:"rating,omitempty"`
	Style           Style           `json:"style,omitempty" yaml:"style,omitempty"`
	Characteristics Characteristics `json:"characteristics" yaml:"characteristics"`
	ImageURL        string          `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	CreatedAt       int64           `json:"createdAt" yaml:"createdAt"`
	SearchSources   []SearchSource  `json:"searchSources,omitempty" yaml:"searchSources,omitempty"`
}

// Created returns CreatedAt as a time.Time.
func (n WineNote) Created() time.Time {
	return time.UnixMilli(n.CreatedAt)
}

// WineAnalysis is the untrusted structured output of the AI gateway.
// Every field may be missing; Characteristics is nil when the profile is absent.
type WineAnalysis struct {
	Name            string           `json:"name"`
	Winery          string           `json:"winery"`
	Varietal        string           `json:"varietal"`
	Region          string           `json:"region"`
	Vintage         string           `json:"vintage"`
	Summary         string           `json:"summary"`
	Style           string           `json:"style,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
}

// EventType represents the type of change in the journal.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// ParseEventType accepts an event type name in any case.
func ParseEventType(s string) (EventType, error) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(s))); t {
	case EventCreate, EventModify, EventDelete:
		return t, nil
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Event represents a change in the journal or in a storage slot.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String makes Event usable as a lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
