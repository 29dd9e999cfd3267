/*
Package storage implements the persistent key-value store backing usage data.

The ranking engine persists its usage snapshot through the Store interface,
a minimal string key-value contract. Three backends are provided: an
in-memory map (tests, ephemeral sessions), a JSON file per key under
~/.strive-nav, and a SQLite database via modernc.org/sqlite (a pure Go,
CGo-free implementation) with graceful degradation if the database is
unavailable.
*/
package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Store defines the key-value contract used to persist usage snapshots.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the value under key. Removing a missing key is not an error.
	Remove(key string) error
}

// DefaultDir returns the directory used by the file and SQLite backends,
// ~/.strive-nav.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".strive-nav"), nil
}
