package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
)

// Save writes config with validation, backup, and an atomic write.
func Save(cfg *Config, path string) error {
	if err := checkWritePermission(path); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Fix the catalog or settings and try again",
		}
	}

	// Backup the existing config before replacing it.
	if err := backupConfig(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create backup: %v\n", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomicWrite(path, data)
}

// SaveDefault writes config to the default path.
func SaveDefault(cfg *Config) error {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	return Save(cfg, path)
}

func backupConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // first run, nothing to back up
		}
		return err
	}

	return os.WriteFile(path+".bak", data, 0644)
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.tmp.%d", filepath.Base(path), rand.Int()))

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config: %w", err)
	}

	return nil
}

// checkWritePermission verifies the target file (or its directory, when the
// file does not exist yet) is writable.
func checkWritePermission(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			dir := filepath.Dir(path)
			if dirInfo, dirErr := os.Stat(dir); dirErr == nil && dirInfo.Mode().Perm()&0200 == 0 {
				return &PermissionError{
					Path: dir,
					Op:   "write",
					Fix:  getWritePermissionFix(dir),
				}
			}
			return nil
		}
		return fmt.Errorf("failed to access config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		if os.IsPermission(err) {
			return &PermissionError{
				Path:    path,
				Op:      "write",
				Fix:     getWritePermissionFix(path),
				Details: getPermissionDetails(path),
			}
		}
		return fmt.Errorf("failed to open config for writing: %w", err)
	}
	f.Close()

	return nil
}

// getWritePermissionFix returns a platform-specific fix command.
func getWritePermissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default:
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}
