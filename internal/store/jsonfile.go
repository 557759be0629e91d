package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/triagelabs/healthbot/internal/domain"
)

// JSONFileStore keeps the whole history in a single pretty-printed JSON
// array on disk. Every mutation rewrites the file under a process-wide
// mutex; concurrent writers from other processes are last-writer-wins.
type JSONFileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*JSONFileStore)(nil)

// NewJSONFile creates a file-backed history store at path, creating the
// parent directory if needed. The file itself is created lazily on the
// first write.
func NewJSONFile(path string) (*JSONFileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	return &JSONFileStore{path: path}, nil
}

// Append reads the current history, adds entry, and writes the file
// back.
func (s *JSONFileStore) Append(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entries = append(entries, entry)
	return s.save(entries)
}

// List returns the stored history, oldest first.
func (s *JSONFileStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(), nil
}

// Clear truncates the history to an empty array.
func (s *JSONFileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save([]domain.Entry{})
}

// Ping verifies the history directory is reachable.
func (s *JSONFileStore) Ping(_ context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("stat history directory: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *JSONFileStore) Close() error { return nil }

// load reads the history file. Any failure, a missing file included,
// degrades to an empty history rather than an error so a damaged file
// never takes the service down.
func (s *JSONFileStore) load() []domain.Entry {
	entries := make([]domain.Entry, 0)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("history file unreadable, starting empty", "path", s.path, "error", err)
		}
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("history file corrupt, starting empty", "path", s.path, "error", err)
		return make([]domain.Entry, 0)
	}
	return entries
}

func (s *JSONFileStore) save(entries []domain.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
