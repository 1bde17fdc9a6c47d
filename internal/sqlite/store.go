package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ganot/soporte-mcp/internal/repository"
)

// Store locates the ticket database on disk. It holds no open handle:
// every operation acquires a fresh read-only connection and releases it
// before returning, so concurrent callers never share mutable state.
type Store struct {
	path string
}

// NewStore creates a store for the database at path. The file is not
// touched until an operation runs; it must already exist by then (the seed
// command creates it).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// withConn opens a read-only handle, runs fn, and closes the handle on
// every exit path. A missing store file fails with ErrStoreNotFound before
// anything is opened.
func (s *Store) withConn(ctx context.Context, fn func(db *sql.DB) error) error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s: run the seed command first", repository.ErrStoreNotFound, s.path)
		}
		return fmt.Errorf("stat %s: %w: %w", s.path, repository.ErrStoreFailure, err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", s.path))
	if err != nil {
		return fmt.Errorf("open %s: %w: %w", s.path, repository.ErrStoreFailure, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w: %w", s.path, repository.ErrStoreFailure, err)
	}

	return fn(db)
}
