package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestSaveAndLoadAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := character.New()
	c.Profile.Name = "Wren"
	require.NoError(t, s.Save(ctx, c))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	if len(loaded) != 1 {
		t.Fatalf("loaded %d characters, want 1", len(loaded))
	}
	if loaded[0].ID != c.ID || loaded[0].Profile.Name != "Wren" {
		t.Fatalf("loaded = %q/%q, want %q/Wren", loaded[0].ID, loaded[0].Profile.Name, c.ID)
	}
}

func TestSaveUsesIDAsFilename(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir, nil)
	require.NoError(t, err)

	c := character.New()
	c.Profile.Name = "Original Name"
	require.NoError(t, s.Save(ctx, c))

	// A rename must overwrite the same file, never create a second one.
	c.Profile.Name = "Renamed"
	require.NoError(t, s.Save(ctx, c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	if len(entries) != 1 {
		t.Fatalf("save dir holds %d files, want 1", len(entries))
	}
	if entries[0].Name() != c.ID+".json" {
		t.Fatalf("file name = %q, want %q", entries[0].Name(), c.ID+".json")
	}
}

func TestLoadAllSkipsUnparseable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir, nil)
	require.NoError(t, err)

	good := character.New()
	require.NoError(t, s.Save(ctx, good))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a save"), 0o644))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	if len(loaded) != 1 {
		t.Fatalf("loaded %d characters, want 1 (corrupt and non-json skipped)", len(loaded))
	}
}

func TestLoadAllNormalizesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir, nil)
	require.NoError(t, err)

	legacy := []byte(`{"id":"legacy-1","profile":{"name":"Old Save","level":3}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy-1.json"), legacy, 0o644))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	c := loaded[0]
	if c.Inventory == nil || c.SkillProficiencies == nil || c.Spells.Known == nil {
		t.Fatal("legacy record not normalized on load")
	}
	if len(c.Spells.Slots.Max) != character.SpellLevels {
		t.Fatalf("slot array length = %d, want %d", len(c.Spells.Slots.Max), character.SpellLevels)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := character.New()
	require.NoError(t, s.Save(ctx, c))
	require.NoError(t, s.Delete(ctx, c.ID))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	if len(loaded) != 0 {
		t.Fatalf("loaded %d characters after delete, want 0", len(loaded))
	}

	err = s.Delete(ctx, c.ID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete = %v, want storage.ErrNotFound", err)
	}
}

func TestStoreSatisfiesInterface(t *testing.T) {
	var _ storage.Store = newTestStore(t)
}
