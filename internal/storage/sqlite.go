package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on top of a SQLite key-value table.
//
// If the database cannot be opened, the store is disabled and subsequent
// operations become no-ops (graceful degradation): Set and Remove succeed
// silently and Get reports ErrNotFound, so the engine behaves as if no usage
// history exists.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewSQLiteStore creates a SQLite store at dbPath. Call Init before use.
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{dbPath: dbPath, enabled: true}
}

// NewDefaultSQLiteStore creates a SQLite store at ~/.strive-nav/usage.db.
func NewDefaultSQLiteStore() *SQLiteStore {
	dir, err := DefaultDir()
	if err != nil {
		log.Printf("Warning: failed to resolve storage directory: %v", err)
		return &SQLiteStore{enabled: false}
	}
	return NewSQLiteStore(filepath.Join(dir, "usage.db"))
}

// Init opens the database and runs migrations.
//
// If initialization fails, the store is disabled and the error is returned
// once; later operations degrade silently.
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SQLiteStore) Get(key string) (string, error) {
	if !s.enabled || s.db == nil {
		return "", ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	row := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query key %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		log.Printf("Warning: failed to store key %s: %v", key, err)
	}
	return nil
}

// Remove deletes the value under key.
func (s *SQLiteStore) Remove(key string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		log.Printf("Warning: failed to remove key %s: %v", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}
