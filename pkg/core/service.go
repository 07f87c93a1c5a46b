package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Service handles the journal workflows: ingestion through the AI gateway,
// draft editing and confirmed deletion.
type Service struct {
	store   *Store
	gateway Gateway
	builder NoteBuilder
	logger  *slog.Logger

	busy atomic.Bool

	mu         sync.RWMutex
	ingested   int
	failed     int
	lastFailed string
}

// NewService creates a Service over a loaded store. gateway may be nil, in
// which case AI ingestion reports ErrConfiguration.
func NewService(store *Store, gateway Gateway, builder NoteBuilder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:   store,
		gateway: gateway,
		builder: builder,
		logger:  logger.With("component", "service"),
	}
}

// Store exposes the underlying collection store.
func (s *Service) Store() *Store {
	return s.store
}

// Busy reports whether an ingestion is in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// IngestImage identifies the wine on a label photo and adds it to the journal.
// The encoded image is kept on the note as its ImageURL.
func (s *Service) IngestImage(ctx context.Context, img Image) (WineNote, error) {
	if len(img.Data) == 0 {
		return WineNote{}, errors.New("image is empty")
	}
	return s.ingest(ctx, "image", func(gw Gateway) (WineNote, error) {
		analysis, err := gw.AnalyzeImage(ctx, img)
		if err != nil {
			return WineNote{}, err
		}
		return s.builder.Build(analysis, img.DataURI(), nil), nil
	})
}

// IngestQuery researches a wine from free text and adds it to the journal
// together with the citations the gateway returned.
func (s *Service) IngestQuery(ctx context.Context, query string) (WineNote, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return WineNote{}, ErrEmptyQuery
	}
	return s.ingest(ctx, "query", func(gw Gateway) (WineNote, error) {
		analysis, sources, err := gw.Research(ctx, query)
		if err != nil {
			return WineNote{}, err
		}
		return s.builder.Build(analysis, "", sources), nil
	})
}

// ingest runs one gateway-backed ingestion. Only one may be in flight; the
// busy flag is released on every path.
func (s *Service) ingest(ctx context.Context, mode string, analyze func(Gateway) (WineNote, error)) (WineNote, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return WineNote{}, ErrBusy
	}
	defer s.busy.Store(false)

	if s.gateway == nil {
		s.recordFailure(ErrConfiguration)
		return WineNote{}, ErrConfiguration
	}

	s.logger.Debug("ingestion started", "mode", mode)
	note, err := analyze(s.gateway)
	if err != nil {
		s.recordFailure(err)
		s.logger.Error("ingestion failed", "mode", mode, "error", err)
		return WineNote{}, fmt.Errorf("%s ingestion: %w", mode, err)
	}

	if err := s.store.Add(ctx, note); err != nil {
		s.recordFailure(err)
		return WineNote{}, err
	}

	s.mu.Lock()
	s.ingested++
	s.mu.Unlock()
	s.logger.Info("wine added", "mode", mode, "id", note.ID, "name", note.Name)
	return note, nil
}

func (s *Service) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
	s.lastFailed = err.Error()
}

// AddBlank adds a manually entered note with every field defaulted.
func (s *Service) AddBlank(ctx context.Context) (WineNote, error) {
	note := s.builder.Build(WineAnalysis{}, "", nil)
	if err := s.store.Add(ctx, note); err != nil {
		return WineNote{}, err
	}
	s.logger.Info("blank wine added", "id", note.ID)
	return note, nil
}

// Get retrieves a note by id.
func (s *Service) Get(id string) (WineNote, error) {
	if id == "" {
		return WineNote{}, errors.New("note ID cannot be empty")
	}
	n, ok := s.store.Get(id)
	if !ok {
		return WineNote{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return n, nil
}

// List returns the collection ordered by key.
func (s *Service) List(key SortKey) []WineNote {
	return Sorted(s.store.List(), key)
}

// Edit opens a working copy of the note with the given id.
func (s *Service) Edit(id string) (*Draft, error) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return NewDraft(n), nil
}

// Commit replaces the stored note with the draft's working copy.
func (s *Service) Commit(ctx context.Context, d *Draft) error {
	if d == nil {
		return errors.New("draft is nil")
	}
	if err := s.store.Update(ctx, d.ID(), d.Note()); err != nil {
		return err
	}
	s.logger.Info("wine updated", "id", d.ID())
	return nil
}

// Delete removes a note after confirm approves it. A declined confirmation
// returns false and leaves the journal untouched. There is no undo.
func (s *Service) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	n, ok := s.store.Get(id)
	if !ok {
		// Same outcome as removing an unknown id: nothing to confirm.
		return false, s.store.Remove(ctx, id)
	}
	if confirm == nil || !confirm.Confirm(n) {
		s.logger.Debug("delete declined", "id", id)
		return false, nil
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("wine deleted", "id", id)
	return true, nil
}
