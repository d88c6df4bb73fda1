// Package storage owns the ledger's embedded SQLite database.
//
// A Store is constructed cheaply and opens its database lazily: the first
// operation (or an explicit Open) creates the file, applies the schema and
// caches the handle. Concurrent first callers share one initialization.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

type openFunc func(ctx context.Context, path string) (*sql.DB, error)

type Store struct {
	path   string
	logger *slog.Logger
	open   openFunc

	mu     sync.RWMutex
	db     *sql.DB
	closed bool

	init singleflight.Group
}

type Option func(*Store)

// WithLogger sets the logger used for lifecycle and write events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an unopened store backed by the SQLite file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: slog.Default(),
		open:   openSQLite,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Open initializes the store if needed and returns the shared handle.
// It fails with ErrStoreUnavailable; a failed attempt is not cached.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	if db, err := s.current(); db != nil || err != nil {
		return db, err
	}

	v, err, _ := s.init.Do("open", func() (any, error) {
		if db, err := s.current(); db != nil || err != nil {
			return db, err
		}

		// The first caller's cancellation must not fail everyone waiting on it.
		db, err := s.open(context.WithoutCancel(ctx), s.path)
		if err != nil {
			s.logger.ErrorContext(ctx, "Ledger store initialization failed", "path", s.path, "error", err)
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			db.Close()
			return nil, errClosed
		}
		s.db = db

		s.logger.InfoContext(ctx, "Ledger store initialized", "path", s.path)
		return db, nil
	})
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return v.(*sql.DB), nil
}

func (s *Store) current() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, errClosed
	}
	return s.db, nil
}

// Ping opens the store if necessary and checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return ioFailure("ping", err)
	}
	return nil
}

// Close releases the database. Further operations fail with ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" || path == ":memory:" {
		return nil, fmt.Errorf("database path %q must name a file", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := dataSourceName(path)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection: every statement serializes on it.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := RunMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func dataSourceName(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
