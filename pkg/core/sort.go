package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the display ordering of the collection.
type SortKey string

const (
	SortDateAdded SortKey = "date_added"
	SortVintage   SortKey = "vintage"
	SortRegion    SortKey = "region"
	SortRating    SortKey = "rating"
	SortStyle     SortKey = "style"
)

// SortKeys returns the supported keys, default first.
func SortKeys() []SortKey {
	return []SortKey{SortDateAdded, SortVintage, SortRegion, SortStyle, SortRating}
}

// ParseSortKey validates user input. An empty string selects the default.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortDateAdded, nil
	}
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Sorted returns a new slice ordered by key. The input is not modified.
// Ties keep their input order; unknown keys fall back to date_added.
func Sorted(notes []WineNote, key SortKey) []WineNote {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b WineNote) int {
	switch key {
	case SortVintage:
		return func(a, b WineNote) int { return strings.Compare(b.Vintage, a.Vintage) }
	case SortRegion:
		return func(a, b WineNote) int { return strings.Compare(a.Region, b.Region) }
	case SortRating:
		// missing ratings are zero
		return func(a, b WineNote) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortStyle:
		return func(a, b WineNote) int { return strings.Compare(string(a.Style), string(b.Style)) }
	default:
		return func(a, b WineNote) int { return cmp.Compare(b.CreatedAt, a.CreatedAt) }
	}
}
