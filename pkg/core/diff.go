package core

import (
	"slices"
	"time"
)

// Diff reports the changes that turn the before snapshot into after.
// Creates and modifications follow the order of after, deletions the order of before.
func Diff(before, after []WineNote) []Event {
	now := time.Now().Unix()
	prev := make(map[string]WineNote, len(before))
	for _, n := range before {
		prev[n.ID] = n
	}

	var events []Event
	seen := make(map[string]bool, len(after))
	for _, n := range after {
		seen[n.ID] = true
		old, ok := prev[n.ID]
		switch {
		case !ok:
			events = append(events, Event{Type: EventCreate, ID: n.ID, Timestamp: now})
		case !Equal(old, n):
			events = append(events, Event{Type: EventModify, ID: n.ID, Timestamp: now})
		}
	}
	for _, n := range before {
		if !seen[n.ID] {
			events = append(events, Event{Type: EventDelete, ID: n.ID, Timestamp: now})
		}
	}
	return events
}

// Equal reports whether two notes hold the same values.
// A nil and an empty SearchSources are treated alike.
func Equal(a, b WineNote) bool {
	if !slices.Equal(a.SearchSources, b.SearchSources) {
		return false
	}
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Winery == b.Winery &&
		a.Varietal == b.Varietal &&
		a.Region == b.Region &&
		a.Vintage == b.Vintage &&
		a.TastingNotes == b.TastingNotes &&
		a.UserNotes == b.UserNotes &&
		a.Rating == b.Rating &&
		a.Style == b.Style &&
		a.Characteristics == b.Characteristics &&
		a.ImageURL == b.ImageURL &&
		a.CreatedAt == b.CreatedAt
}
