package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// DefaultKey is the storage slot holding the serialized collection.
// A schema change gets a new key; data under older keys is abandoned.
const DefaultKey = "sommelier_wines_v2"

// Store owns the authoritative ordered collection of notes and writes the
// whole collection through to Storage after every mutation.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	key     string
	logger  *slog.Logger

	notes    []WineNote
	loadErr  error
	saves    int
	lastSave int64
}

// NewStore creates an empty store bound to a storage slot.
// Call Load to restore a previously persisted collection.
func NewStore(storage Storage, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		storage: storage,
		key:     key,
		logger:  logger.With("component", "store"),
		notes:   []WineNote{},
	}
}

// Storage returns the storage port the store writes through.
func (s *Store) Storage() Storage {
	return s.storage
}

// Key returns the storage slot the store persists to.
func (s *Store) Key() string {
	return s.key
}

// Load restores the collection from storage. An empty slot yields an empty
// collection. An unreadable or corrupt slot is logged and also yields an
// empty collection; the failure is kept for State and not returned.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = []WineNote{}
	s.loadErr = nil

	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("no saved collection, starting empty", "key", s.key)
		return nil
	}
	if err != nil {
		s.recordLoadFailure(fmt.Errorf("%w: %w", ErrPersistenceRead, err))
		return nil
	}

	var notes []WineNote
	if err := json.Unmarshal(data, &notes); err != nil {
		s.recordLoadFailure(fmt.Errorf("%w: %w", ErrPersistenceRead, err))
		return nil
	}
	if notes != nil {
		s.notes = notes
	}

	s.logger.Debug("collection loaded", "key", s.key, "count", len(s.notes))
	return nil
}

func (s *Store) recordLoadFailure(err error) {
	s.loadErr = err
	s.logger.Warn("failed to load saved collection, starting empty", "key", s.key, "error", err)
}

// Reload re-reads the slot and reports how the collection changed.
// It is used when another process rewrote the slot.
func (s *Store) Reload(ctx context.Context) ([]Event, error) {
	before := s.List()
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return Diff(before, s.List()), nil
}

// LoadError returns the failure recovered by the last Load, if any.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Add prepends note to the collection and persists it.
func (s *Store) Add(ctx context.Context, note WineNote) error {
	if note.ID == "" {
		return errors.New("note has no ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(note.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, note.ID)
	}

	next := make([]WineNote, 0, len(s.notes)+1)
	next = append(next, note)
	next = append(next, s.notes...)
	return s.commit(ctx, next)
}

// Update replaces the note matching id, keeping its position, and persists.
// An unknown id leaves the collection unchanged; it is still persisted.
func (s *Store) Update(ctx context.Context, id string, note WineNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = id
	next := slices.Clone(s.notes)
	if i := s.indexOf(id); i >= 0 {
		next[i] = note
	} else {
		s.logger.Debug("update of unknown note ignored", "id", id)
	}
	return s.commit(ctx, next)
}

// Remove drops the note matching id and persists.
// An unknown id leaves the collection unchanged; it is still persisted.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.notes), func(n WineNote) bool {
		return n.ID == id
	})
	return s.commit(ctx, next)
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (WineNote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], true
	}
	return WineNote{}, false
}

// List returns a copy of the collection in raw (most recent first) order.
func (s *Store) List() []WineNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n WineNote) bool { return n.ID == id })
}

// commit persists next and swaps it in only when the write succeeded.
func (s *Store) commit(ctx context.Context, next []WineNote) error {
	if next == nil {
		next = []WineNote{}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}
	if err := s.storage.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist collection: %w", err)
	}

	s.notes = next
	s.saves++
	s.lastSave = time.Now().Unix()
	s.logger.Debug("collection saved", "key", s.key, "count", len(next), "bytes", len(data))
	return nil
}
