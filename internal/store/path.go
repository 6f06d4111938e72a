// Package store provides filesystem location helpers for the people store.
package store

import (
	"os"
	"path/filepath"
)

// DefaultDataRoot returns the root directory for roster data.
// Defaults to ~/.roster, falls back to ./.roster if home dir unavailable.
func DefaultDataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		// Fallback to current working directory
		cwd, _ := os.Getwd()
		return filepath.Join(cwd, ".roster")
	}
	return filepath.Join(home, ".roster")
}

// DefaultDBPath returns the full path to the people database file.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataRoot(), "people.db")
}
