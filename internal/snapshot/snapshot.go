// Package snapshot persists session state to a single human-readable file.
// Writes are atomic: the encoded state goes to a temp file in the same
// directory, is synced, and is renamed over the target.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// FileName is the fixed name of the state file inside the store directory.
const FileName = "state.ron"

// indent is the number of spaces per nesting level in written files.
const indent = 2

// Store reads and writes the state file in one directory.
type Store struct {
	path string
}

// NewStore returns a Store for FileName inside dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Path returns the full path of the state file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether something is present at the state file path.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read loads and decodes the state file. It returns ErrNoSnapshot when the
// file is absent, and errors wrapping ErrSnapshotRead or ErrSnapshotParse
// otherwise.
func (s *Store) Read() (*types.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.ErrNoSnapshot
		}
		return nil, fmt.Errorf("%w: %w", types.ErrSnapshotRead, err)
	}
	return Decode(data)
}

// Write encodes st and atomically replaces the state file.
func (s *Store) Write(st *types.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", types.ErrSnapshotWrite, err)
	}
	return nil
}

// writeAtomic writes data using the temp-file, fsync, rename pattern.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Encode renders st as indented YAML.
func Encode(st *types.State) ([]byte, error) {
	doc := st
	if st.Entries == nil {
		cp := *st
		cp.Entries = []types.Entry{}
		doc = &cp
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSnapshotEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSnapshotEncode, err)
	}
	return buf.Bytes(), nil
}
