package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Busy        bool       `json:"busy"`
	Ingested    int        `json:"ingested"`
	Failed      int        `json:"failed"`
	LastFailure string     `json:"last_failure,omitempty"`
	GatewayType string     `json:"gateway_type"`
	Store       StoreState `json:"store"`
}

// StoreState exposes the collection store for observability.
type StoreState struct {
	Key         string `json:"key"`
	Notes       int    `json:"notes"`
	Saves       int    `json:"saves"`
	LastSave    int64  `json:"last_save,omitempty"`
	LoadError   string `json:"load_error,omitempty"`
	StorageType string `json:"storage_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gwType := "none"
	if s.gateway != nil {
		gwType = "gateway"
		if comp, ok := s.gateway.(introspection.Component); ok {
			gwType = comp.ComponentType()
		}
	}

	return ServiceState{
		Busy:        s.busy.Load(),
		Ingested:    s.ingested,
		Failed:      s.failed,
		LastFailure: s.lastFailed,
		GatewayType: gwType,
		Store:       s.store.State().(StoreState),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storageType := "storage"
	if comp, ok := s.storage.(introspection.Component); ok {
		storageType = comp.ComponentType()
	}

	st := StoreState{
		Key:         s.key,
		Notes:       len(s.notes),
		Saves:       s.saves,
		LastSave:    s.lastSave,
		StorageType: storageType,
	}
	if s.loadErr != nil {
		st.LoadError = s.loadErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
