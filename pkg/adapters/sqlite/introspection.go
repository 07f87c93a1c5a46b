package sqlite

import (
	"context"
	"time"

	"github.com/aretw0/introspection"
)

// StorageState exposes internal state for observability.
type StorageState struct {
	DSN       string     `json:"dsn"`
	ReadOnly  bool       `json:"read_only"`
	Writes    int        `json:"writes"`
	LastWrite *time.Time `json:"last_write,omitempty"`
	Slots     []string   `json:"slots,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Storage) State() any {
	slots, _ := s.Slots(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	return StorageState{
		DSN:       s.config.DSN,
		ReadOnly:  s.config.ReadOnly,
		Writes:    s.writes,
		LastWrite: s.lastWrite,
		Slots:     slots,
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "sqlite"
}

var _ introspection.Introspectable = (*Storage)(nil)
var _ introspection.Component = (*Storage)(nil)
