// Package file persists characters as one JSON document per character in a
// save directory. This is the default backend.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/storage"
)

// Store reads and writes <character-id>.json files under dir. The file name
// is always the character's immutable ID; renaming a character never moves
// its file.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates the save directory if needed and returns a store over it.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file: NewStore: creating save dir %q: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// LoadAll reads every .json file in the save directory. Files that fail to
// parse are skipped and logged; one corrupt save never hides the rest.
func (s *Store) LoadAll(ctx context.Context) ([]*character.Character, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("file: LoadAll: reading save dir %q: %w", s.dir, err)
	}

	out := make([]*character.Character, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("unreadable save skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		var c character.Character
		if err := json.Unmarshal(data, &c); err != nil {
			s.log.Warn("unparseable save skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		if c.ID == "" {
			s.log.Warn("save without an id skipped", zap.String("path", path))
			continue
		}
		c.Normalize()
		out = append(out, &c)
	}
	return out, nil
}

// Save writes the record as indented JSON via a temp file plus rename, so a
// crash mid-write never leaves a truncated save behind.
func (s *Store) Save(_ context.Context, c *character.Character) error {
	if c.ID == "" {
		return errors.New("file: Save: character has no id")
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("file: Save: encoding %q: %w", c.ID, err)
	}

	final := s.path(c.ID)
	tmp, err := os.CreateTemp(s.dir, c.ID+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: Save: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("file: Save: writing %q: %w", c.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file: Save: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file: Save: replacing %q: %w", final, err)
	}
	return nil
}

// Delete removes the character's save file.
func (s *Store) Delete(_ context.Context, id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file: Delete: %q: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("file: Delete: %q: %w", id, err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
