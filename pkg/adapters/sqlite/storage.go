// Package sqlite stores journal slots as rows of a SQLite database through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aretw0/cellar/pkg/core"
)

// DefaultFile is the database file name used inside a journal directory.
const DefaultFile = "cellar.db"

// Slot is one serialized collection.
type Slot struct {
	Key       string `gorm:"column:slot_key;primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// Config holds the configuration for the SQLite storage.
type Config struct {
	DSN      string // file path or ":memory:"
	ReadOnly bool
	Logger   *slog.Logger
}

// Storage implements core.Storage on a single "slots" table.
type Storage struct {
	db     *gorm.DB
	config Config
	logger *slog.Logger

	mu        sync.Mutex
	writes    int
	lastWrite *time.Time
}

// Open connects to the database. Call Initialize to create the schema.
func Open(cfg Config) (*Storage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sqlite: empty DSN")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", cfg.DSN, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to get underlying DB: %w", err)
	}
	// One connection: SQLite has a single writer and ":memory:" is per-connection.
	sqlDB.SetMaxOpenConns(1)

	return &Storage{
		db:     db,
		config: cfg,
		logger: logger.With("adapter", "sqlite"),
	}, nil
}

// Initialize migrates the slots table.
func (s *Storage) Initialize(ctx context.Context) error {
	if s.config.ReadOnly {
		if !s.db.WithContext(ctx).Migrator().HasTable(&Slot{}) {
			return fmt.Errorf("sqlite: slots table missing in read-only database %s", s.config.DSN)
		}
		return nil
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&Slot{}); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// Get returns the stored blob, or core.ErrNotFound.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var slot Slot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("slot %s: %w", key, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: read slot %s: %w", key, err)
	}
	return slot.Value, nil
}

// Put inserts or replaces the blob stored under key.
func (s *Storage) Put(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if key == "" {
		return fmt.Errorf("sqlite: empty slot key")
	}

	now := time.Now()
	slot := &Slot{Key: key, Value: data, UpdatedAt: now}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(slot).Error
	if err != nil {
		return fmt.Errorf("sqlite: write slot %s: %w", key, err)
	}
	s.logger.Debug("slot written", "key", key, "bytes", len(data))

	s.mu.Lock()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()
	return nil
}

// Slots lists the stored keys.
func (s *Storage) Slots(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.WithContext(ctx).Model(&Slot{}).Order("slot_key").Pluck("slot_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("sqlite: list slots: %w", err)
	}
	return keys, nil
}

// Close releases the database connection.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var (
	_ core.Storage     = (*Storage)(nil)
	_ core.Initializer = (*Storage)(nil)
)
