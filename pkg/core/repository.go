package core

import "context"

// Storage defines the contract for the durable key/value medium that holds
// the serialized collection. Adhering to this interface keeps the core
// independent of the underlying mechanism (files, SQLite, ...).
type Storage interface {
	// Get returns the blob stored under key, or ErrNotFound when the slot is empty.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the blob stored under key.
	Put(ctx context.Context, key string, data []byte) error
}

// Initializer is implemented by storages that need setup (mkdir, schema migration).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by storages that can report external changes to a slot.
type Watchable interface {
	// Watch emits an EventModify whenever the slot identified by key changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

// Gateway is the AI service that identifies and summarizes wines.
type Gateway interface {
	// AnalyzeImage identifies the wine on a label photo.
	AnalyzeImage(ctx context.Context, img Image) (WineAnalysis, error)

	// Research looks a wine up from free text and returns the citations it used.
	Research(ctx context.Context, query string) (WineAnalysis, []SearchSource, error)
}

// Confirmer asks the user to approve an irreversible action on a note.
type Confirmer interface {
	Confirm(note WineNote) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(note WineNote) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(note WineNote) bool {
	return f(note)
}
