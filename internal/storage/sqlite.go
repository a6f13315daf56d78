package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is the SQLite-backed persisted store for transactions and
// categories. All mutations are serialized through a single write lock;
// every committed mutation fans a fresh snapshot out to live watchers.
type Store struct {
	db       *sql.DB
	watchers *watchHub
	dbPath   string
	writeMu  sync.Mutex
}

// NewStore creates a new SQLite store instance.
func NewStore(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:       db,
		dbPath:   dbPath,
		watchers: newWatchHub(),
	}, nil
}

// Close closes the database connection and detaches all watchers.
func (s *Store) Close() error {
	s.watchers.closeAll()
	return s.db.Close()
}
