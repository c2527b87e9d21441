// Package sheet is the mutation layer over a character record. A Sheet wraps
// one loaded character and exposes every edit the editor performs: inventory
// routing, equipment, currency, spells, vitals, and proficiencies. Mutations
// apply in memory immediately and then trigger a persistence write; the
// in-memory record is authoritative.
package sheet

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/game/item"
)

// ErrItemNotFound is returned when an instance ID is absent from inventory.
var ErrItemNotFound = errors.New("sheet: item not found in inventory")

// ErrCycle is returned when a re-parent would make an item contain itself.
var ErrCycle = errors.New("sheet: move would create a container cycle")

// ErrNotContainer is returned when a parent target cannot hold items.
var ErrNotContainer = errors.New("sheet: target item is not a container")

// Sheet is the active character being edited. It is not safe for concurrent
// use; the editor drives exactly one sheet from a single goroutine.
type Sheet struct {
	char *character.Character
	reg  *catalog.Registry
	log  *zap.Logger

	// trash holds removed items for session-scoped undo. Never persisted.
	trash []*item.Item

	// persist is invoked after every mutation. The manager wires it to the
	// configured store; nil means in-memory only (tests, drafts).
	persist func(*character.Character)
}

// NewSheet wraps the character for editing.
//
// Precondition: c and reg must not be nil.
func NewSheet(c *character.Character, reg *catalog.Registry, log *zap.Logger, persist func(*character.Character)) *Sheet {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sheet{char: c, reg: reg, log: log, persist: persist}
}

// Character returns the underlying record.
func (s *Sheet) Character() *character.Character { return s.char }

// Registry returns the catalog the sheet resolves templates against.
func (s *Sheet) Registry() *catalog.Registry { return s.reg }

// save stamps the record and triggers the persistence write.
func (s *Sheet) save() {
	s.char.Touch()
	if s.persist != nil {
		s.persist(s.char)
	}
}
