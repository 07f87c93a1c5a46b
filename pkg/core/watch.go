package core

import (
	"context"
	"io"

	"github.com/aretw0/lifecycle"
)

// Gateway returns the AI gateway, or nil when none is configured.
func (s *Service) Gateway() Gateway {
	return s.gateway
}

// Watch follows the storage slot and reloads the collection whenever it is
// rewritten by another process. Each reload is reported as note-level
// events (CREATE, MODIFY, DELETE). The channel closes when ctx is done or
// the storage stops watching.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.Storage().(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	slotEvents, err := w.Watch(ctx, s.store.Key())
	if err != nil {
		return nil, err
	}

	out := make(chan Event)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for range slotEvents {
			events, err := s.store.Reload(ctx)
			if err != nil {
				return nil
			}
			if loadErr := s.store.LoadError(); loadErr != nil {
				s.logger.Warn("reload after external change failed", "error", loadErr)
			}
			for _, e := range events {
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
		return nil
	})
	return out, nil
}

// Close releases the storage when it holds resources (database handles).
func (s *Service) Close() error {
	if c, ok := s.store.Storage().(io.Closer); ok {
		return c.Close()
	}
	return nil
}
