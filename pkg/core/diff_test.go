package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/cellar/pkg/core"
)

func TestDiff(t *testing.T) {
	a, b, c := sampleNote("a", 1), sampleNote("b", 2), sampleNote("c", 3)
	bEdited := b
	bEdited.Rating = 5

	events := core.Diff([]core.WineNote{a, b}, []core.WineNote{c, bEdited})

	got := make([]string, len(events))
	for i, e := range events {
		got[i] = e.String()
		assert.NotZero(t, e.Timestamp)
	}
	assert.Equal(t, []string{"CREATE c", "MODIFY b", "DELETE a"}, got)
}

func TestDiff_NoChange(t *testing.T) {
	a := sampleNote("a", 1)
	withEmpty := a
	withEmpty.SearchSources = []core.SearchSource{}

	assert.Empty(t, core.Diff([]core.WineNote{a}, []core.WineNote{withEmpty}))
	assert.True(t, core.Equal(a, withEmpty))
}

func TestParseEventType(t *testing.T) {
	for in, want := range map[string]core.EventType{
		"create":   core.EventCreate,
		" Modify ": core.EventModify,
		"DELETE":   core.EventDelete,
	} {
		got, err := core.ParseEventType(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := core.ParseEventType("rename")
	assert.Error(t, err)
}
