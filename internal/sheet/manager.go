package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/storage"
)

// Manager owns the loaded roster of characters and checks sheets out of it.
// One character is edited at a time; the manager is not safe for concurrent
// use.
type Manager struct {
	store storage.Store
	reg   *catalog.Registry
	log   *zap.Logger

	chars map[string]*character.Character
}

// Summary is one roster row.
type Summary struct {
	ID           string
	Name         string
	Class        string
	Level        int
	LastModified int64
}

// NewManager creates a manager over the given store and catalog.
//
// Precondition: store and reg must not be nil.
func NewManager(store storage.Store, reg *catalog.Registry, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store: store,
		reg:   reg,
		log:   log,
		chars: make(map[string]*character.Character),
	}
}

// Init loads every persisted character into the roster. Records the backend
// skipped as unparseable are already gone from the result; everything loaded
// is normalized here.
func (m *Manager) Init(ctx context.Context) error {
	loaded, err := m.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("sheet: Manager.Init: %w", err)
	}
	for _, c := range loaded {
		c.Normalize()
		m.chars[c.ID] = c
	}
	m.log.Info("roster loaded", zap.Int("characters", len(m.chars)))
	return nil
}

// List returns roster summaries, most recently modified first.
func (m *Manager) List() []Summary {
	out := make([]Summary, 0, len(m.chars))
	for _, c := range m.chars {
		out = append(out, Summary{
			ID:           c.ID,
			Name:         c.Profile.Name,
			Class:        c.Profile.Class,
			Level:        c.Profile.Level,
			LastModified: c.LastModified,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastModified != out[j].LastModified {
			return out[i].LastModified > out[j].LastModified
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns the loaded character with the given ID, or nil.
func (m *Manager) Get(id string) *character.Character {
	return m.chars[id]
}

// Create adds a fresh default character to the roster and persists it.
func (m *Manager) Create(ctx context.Context) (*character.Character, error) {
	c := character.New()
	if err := m.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("sheet: Manager.Create: %w", err)
	}
	m.chars[c.ID] = c
	m.log.Info("character created", zap.String("id", c.ID))
	return c, nil
}

// Delete removes the character from the roster and its persisted record.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if _, ok := m.chars[id]; !ok {
		return fmt.Errorf("sheet: Manager.Delete: %q: %w", id, storage.ErrNotFound)
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("sheet: Manager.Delete: %w", err)
	}
	delete(m.chars, id)
	m.log.Info("character deleted", zap.String("id", id))
	return nil
}

// Open checks a sheet out for the character. Every mutation on the sheet
// writes through to the store; a failed write is logged and the in-memory
// record stays authoritative.
func (m *Manager) Open(id string) (*Sheet, error) {
	c, ok := m.chars[id]
	if !ok {
		return nil, fmt.Errorf("sheet: Manager.Open: %q: %w", id, storage.ErrNotFound)
	}
	persist := func(c *character.Character) {
		if err := m.store.Save(context.Background(), c); err != nil {
			m.log.Error("save failed, in-memory state kept",
				zap.String("id", c.ID), zap.Error(err))
		}
	}
	return NewSheet(c, m.reg, m.log, persist), nil
}

// Export serializes the character as indented JSON and suggests a filename
// built from its display name and class.
func (m *Manager) Export(id string) ([]byte, string, error) {
	c, ok := m.chars[id]
	if !ok {
		return nil, "", fmt.Errorf("sheet: Manager.Export: %q: %w", id, storage.ErrNotFound)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("sheet: Manager.Export: %w", err)
	}
	return data, exportFilename(c), nil
}

// Import parses an exported record, assigns a fresh identity so the import
// can never clobber an existing character, normalizes it, and persists it.
func (m *Manager) Import(ctx context.Context, data []byte) (*character.Character, error) {
	var c character.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("sheet: Manager.Import: parsing record: %w", err)
	}
	c.ID = uuid.New().String()
	c.Normalize()
	c.Touch()
	if err := m.store.Save(ctx, &c); err != nil {
		return nil, fmt.Errorf("sheet: Manager.Import: %w", err)
	}
	m.chars[c.ID] = &c
	m.log.Info("character imported", zap.String("id", c.ID), zap.String("name", c.Profile.Name))
	return &c, nil
}

// exportFilename builds a filesystem-safe name like "mara_thornwood_rogue.json".
func exportFilename(c *character.Character) string {
	base := slugify(c.Profile.Name)
	if class := slugify(c.Profile.Class); class != "" {
		base = base + "_" + class
	}
	if base == "" || base == "_" {
		base = "character"
	}
	return base + ".json"
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
