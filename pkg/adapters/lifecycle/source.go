// Package lifecycle bridges journal events to github.com/aretw0/lifecycle.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/cellar/pkg/core"
)

type journalSource struct {
	events <-chan core.Event
	only   map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that re-emits journal events.
// With types given, only events of those types get through.
// core.Event satisfies lifecycle.Event through its String method.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var only map[core.EventType]bool
	if len(types) > 0 {
		only = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			only[t] = true
		}
	}
	return &journalSource{
		events: events,
		only:   only,
		out:    make(chan lifecycle.Event),
	}
}

func (s *journalSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes.
// The output channel is closed in both cases.
func (s *journalSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.only != nil && !s.only[e.Type] {
					continue
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
