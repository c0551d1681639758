package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pomo/internal/domain"
)

// sessionsDocument is the on-disk JSON shape. Unknown extra fields in the
// file are tolerated and dropped on the next rewrite.
type sessionsDocument struct {
	Sessions []domain.SessionRecord `json:"sessions"`
}

// JSONFileStore persists the log as a single JSON document at an explicit
// path injected at construction.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore creates a store writing to the given file path.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Load(ctx context.Context) (domain.SessionLog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.SessionLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sessions file %s: %w: %w", s.path, ErrIO, err)
	}

	var doc sessionsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding sessions file %s: %w: %w", s.path, ErrCorrupt, err)
	}
	return domain.SessionLog(doc.Sessions), nil
}

// Append loads the existing log, appends the record, and atomically
// rewrites the whole document via a temp file and rename, so a failed
// write never clobbers the previous state.
func (s *JSONFileStore) Append(ctx context.Context, rec domain.SessionRecord) error {
	log, err := s.Load(ctx)
	if err != nil {
		return err
	}

	doc := sessionsDocument{Sessions: append(log, rec)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating sessions directory %s: %w: %w", dir, ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, ".sessions-*.json")
	if err != nil {
		return fmt.Errorf("creating temp sessions file: %w: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing sessions file: %w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing sessions file: %w: %w", ErrIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing sessions file %s: %w: %w", s.path, ErrIO, err)
	}
	return nil
}
