package vanisher

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Open creates a Store bound to a JSON file. A missing file is not an
// error: the store starts empty and the path is kept for Save. A file
// that exists but does not parse returns *ParseError — the caller
// named the file explicitly, so silence would hide real breakage.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(opts...)
	s.path = path

	m, err := readTree(path)
	if err != nil {
		return nil, err
	}
	if m != nil {
		s.data = m
	}
	return s, nil
}

// Save persists the store to its backing file as indented JSON.
// Returns ErrNoPath for a store built without a file.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.SaveTo(s.path)
}

// SaveTo persists the store to path as indented JSON. The write is
// atomic: data goes to a temp file in the target directory, then a
// rename replaces the destination, so a crash never leaves a
// half-written config behind.
func (s *Store) SaveTo(path string) error {
	data, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("vanisher: marshal store: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("vanisher: create config dir: %w", err)
		}
	}

	tempPath, err := tempFileName(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("vanisher: write config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("vanisher: replace config file: %w", err)
	}

	return nil
}

// Reload discards in-memory state and re-reads the backing file,
// with the same missing-file and parse semantics as Open.
func (s *Store) Reload() error {
	if s.path == "" {
		return ErrNoPath
	}
	m, err := readTree(s.path)
	if err != nil {
		return err
	}
	if m == nil {
		m = make(map[string]any)
	}
	s.data = m
	return nil
}

// readTree reads and parses path as a JSON object. A missing file
// yields (nil, nil).
func readTree(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("vanisher: read config file %s: %w", path, err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// tempFileName builds a unique sibling of path so the final rename
// stays on one filesystem.
// Format: path + ".tmp." + randomHex
func tempFileName(path string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("vanisher: temp file name: %w", err)
	}
	return path + ".tmp." + hex.EncodeToString(randomBytes), nil
}
