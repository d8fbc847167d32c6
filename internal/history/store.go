package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported persistence backends.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Store persists a session's calculation log. Save replaces the whole
// persisted log; Append adds a single record without rewriting.
type Store interface {
	Load() ([]Entry, error)
	Append(e Entry) error
	Save(entries []Entry) error
	Clear() error
	Close() error
}

// Open returns the store for the configured backend. An empty backend
// selects the text store.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendText:
		return NewTextStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// TextStore persists the log as plain text, one record per line in
// the "<expression> = <result>" form.
type TextStore struct {
	path string
}

// NewTextStore creates a text store backed by the file at path. The
// file is created lazily on first write.
func NewTextStore(path string) *TextStore {
	return &TextStore{path: path}
}

// Load reads all records. A missing file is an empty history, not an
// error. Unparseable lines are silently dropped.
func (s *TextStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if entry, ok := ParseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Append writes a single record to the end of the file.
func (s *TextStore) Append(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(e.String() + "\n"); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return nil
}

// Save rewrites the file with the given entries.
func (s *TextStore) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Clear truncates the persisted log.
func (s *TextStore) Clear() error {
	return s.Save(nil)
}

// Close is a no-op for the text store.
func (s *TextStore) Close() error {
	return nil
}
