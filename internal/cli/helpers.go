/*
Package cli implements the strive-nav commands.

Each command lives in its own file with a New*Cmd constructor. The run
functions take explicit paths and writers so tests can drive them against
temp directories.
*/
package cli

import (
	"log"
	"path/filepath"

	"github.com/TSKVenkat/strive-nav/internal/config"
	"github.com/TSKVenkat/strive-nav/internal/ranking"
	"github.com/TSKVenkat/strive-nav/internal/storage"
)

// openEngine loads the configuration and builds a ranking engine over the
// configured storage backend. Empty configPath and dataDir select the
// defaults (~/.strive-nav.json and ~/.strive-nav). The returned cleanup
// function releases the storage backend.
func openEngine(configPath, dataDir string) (*ranking.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	store, cleanup := buildStore(cfg.Settings.Backend, dataDir)

	eng, err := ranking.New(cfg.RankingItems(), cfg.RankingConfig(), store)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	return eng, cfg, cleanup, nil
}

// loadConfig reads the config from configPath, or the default path when
// empty.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	return config.LoadFrom(configPath)
}

// buildStore constructs the configured storage backend. Failures degrade to
// an in-memory store so commands keep working without persistence.
func buildStore(backend, dataDir string) (storage.Store, func()) {
	switch backend {
	case config.BackendSQLite:
		var store *storage.SQLiteStore
		if dataDir == "" {
			store = storage.NewDefaultSQLiteStore()
		} else {
			store = storage.NewSQLiteStore(filepath.Join(dataDir, "usage.db"))
		}
		if err := store.Init(); err != nil {
			log.Printf("Warning: falling back to in-memory usage store: %v", err)
			return storage.NewMemoryStore(), func() {}
		}
		return store, func() { store.Close() }

	default:
		if dataDir == "" {
			store, err := storage.NewDefaultFileStore()
			if err != nil {
				log.Printf("Warning: falling back to in-memory usage store: %v", err)
				return storage.NewMemoryStore(), func() {}
			}
			return store, func() {}
		}
		return storage.NewFileStore(dataDir), func() {}
	}
}
