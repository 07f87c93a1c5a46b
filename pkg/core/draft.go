package core

import (
	"fmt"
	"slices"
	"strings"
)

// Bounds for ratings and characteristic axes on the edit path.
const (
	MinScore = 1
	MaxScore = 5
)

// Field names an editable free-text field of a note.
type Field string

const (
	FieldName      Field = "name"
	FieldWinery    Field = "winery"
	FieldVarietal  Field = "varietal"
	FieldRegion    Field = "region"
	FieldVintage   Field = "vintage"
	FieldUserNotes Field = "userNotes"
)

// Axis names one of the four characteristics.
type Axis string

const (
	AxisBody      Axis = "body"
	AxisTannin    Axis = "tannin"
	AxisAcidity   Axis = "acidity"
	AxisSweetness Axis = "sweetness"
)

// Axes returns the four characteristic axes.
func Axes() []Axis {
	return []Axis{AxisBody, AxisTannin, AxisAcidity, AxisSweetness}
}

// Draft is a working copy of a note. Edits never reach the store until the
// draft is committed through Service.Commit; dropping it discards them.
type Draft struct {
	note  WineNote
	dirty bool
}

// NewDraft starts a working copy of note.
func NewDraft(note WineNote) *Draft {
	note.SearchSources = slices.Clone(note.SearchSources)
	return &Draft{note: note}
}

// ID returns the id of the note being edited.
func (d *Draft) ID() string {
	return d.note.ID
}

// Note returns a snapshot of the working copy.
func (d *Draft) Note() WineNote {
	n := d.note
	n.SearchSources = slices.Clone(n.SearchSources)
	return n
}

// Dirty reports whether any setter changed the working copy.
func (d *Draft) Dirty() bool {
	return d.dirty
}

// SetText updates a free-text field.
func (d *Draft) SetText(field Field, value string) error {
	var target *string
	switch field {
	case FieldName:
		target = &d.note.Name
	case FieldWinery:
		target = &d.note.Winery
	case FieldVarietal:
		target = &d.note.Varietal
	case FieldRegion:
		target = &d.note.Region
	case FieldVintage:
		target = &d.note.Vintage
	case FieldUserNotes:
		target = &d.note.UserNotes
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if *target != value {
		*target = value
		d.dirty = true
	}
	return nil
}

// SetRating sets the rating to a value in 1..5.
func (d *Draft) SetRating(r int) error {
	if r < MinScore || r > MaxScore {
		return fmt.Errorf("%w: rating %d not in %d..%d", ErrOutOfRange, r, MinScore, MaxScore)
	}
	if d.note.Rating != r {
		d.note.Rating = r
		d.dirty = true
	}
	return nil
}

// SetStyle sets the style to one of the enumerated styles.
func (d *Draft) SetStyle(s Style) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
	if d.note.Style != s {
		d.note.Style = s
		d.dirty = true
	}
	return nil
}

// SetCharacteristic sets one axis to a value in 1..5.
func (d *Draft) SetCharacteristic(axis Axis, v int) error {
	p, err := d.axis(axis)
	if err != nil {
		return err
	}
	if v < MinScore || v > MaxScore {
		return fmt.Errorf("%w: %s %d not in %d..%d", ErrOutOfRange, axis, v, MinScore, MaxScore)
	}
	if *p != v {
		*p = v
		d.dirty = true
	}
	return nil
}

// AdjustCharacteristic moves one axis by delta, clamped to 1..5, and returns
// the resulting value.
func (d *Draft) AdjustCharacteristic(axis Axis, delta int) (int, error) {
	p, err := d.axis(axis)
	if err != nil {
		return 0, err
	}
	v := min(max(*p+delta, MinScore), MaxScore)
	if *p != v {
		*p = v
		d.dirty = true
	}
	return v, nil
}

func (d *Draft) axis(axis Axis) (*int, error) {
	switch axis {
	case AxisBody:
		return &d.note.Characteristics.Body, nil
	case AxisTannin:
		return &d.note.Characteristics.Tannin, nil
	case AxisAcidity:
		return &d.note.Characteristics.Acidity, nil
	case AxisSweetness:
		return &d.note.Characteristics.Sweetness, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, axis)
}

// ParseStyle matches user input against the enumerated styles, ignoring case.
// "rose" is accepted for Rosé.
func ParseStyle(s string) (Style, error) {
	in := strings.TrimSpace(s)
	if strings.EqualFold(in, "rose") {
		return StyleRose, nil
	}
	for _, st := range Styles() {
		if strings.EqualFold(in, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}
