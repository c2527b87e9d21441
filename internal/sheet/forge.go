package sheet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/charsheet/internal/game/item"
)

// ErrNoDraft is returned when a forge operation needs an open draft.
var ErrNoDraft = errors.New("sheet: forge has no open draft")

// Forge is a scratch session for authoring one item before it touches the
// inventory. The draft is owned by the forge; nothing reaches the character
// record until Commit. This replaces the editor's habit of mutating a shared
// half-built item in place.
type Forge struct {
	sheet *Sheet
	draft *item.Item

	// sourceID is set when the draft edits a copy of an existing instance;
	// Commit then replaces that instance instead of appending.
	sourceID string
}

// NewForge creates a forge bound to the sheet.
func NewForge(s *Sheet) *Forge {
	return &Forge{sheet: s}
}

// OpenTemplate starts a draft from a catalog template. Any previous draft is
// discarded.
func (f *Forge) OpenTemplate(templateID string) error {
	it, err := item.New(f.sheet.reg, templateID)
	if err != nil {
		return fmt.Errorf("sheet: Forge.OpenTemplate: %w", err)
	}
	f.draft = it
	f.sourceID = ""
	return nil
}

// OpenCopy starts a draft from an existing inventory instance. Commit will
// write the edits back over that instance.
func (f *Forge) OpenCopy(instanceID string) error {
	src := f.sheet.char.Item(instanceID)
	if src == nil {
		return fmt.Errorf("sheet: Forge.OpenCopy: %q: %w", instanceID, ErrItemNotFound)
	}
	f.draft = copyItem(src)
	f.sourceID = instanceID
	return nil
}

// Draft returns the item being edited, or nil when no draft is open. Callers
// edit the returned item directly; edits stay invisible until Commit.
func (f *Forge) Draft() *item.Item { return f.draft }

// Commit writes the draft into the inventory. A draft opened from an
// existing instance overwrites that instance; a template draft is appended
// as a new item with a fresh instance ID.
func (f *Forge) Commit() error {
	if f.draft == nil {
		return fmt.Errorf("sheet: Forge.Commit: %w", ErrNoDraft)
	}

	if f.sourceID != "" {
		target := f.sheet.char.Item(f.sourceID)
		if target == nil {
			return fmt.Errorf("sheet: Forge.Commit: %q: %w", f.sourceID, ErrItemNotFound)
		}
		keepParent := target.ParentID
		*target = *f.draft
		target.InstanceID = f.sourceID
		target.ParentID = keepParent
	} else {
		f.draft.InstanceID = uuid.New().String()
		f.sheet.char.Inventory = append(f.sheet.char.Inventory, f.draft)
	}

	f.draft = nil
	f.sourceID = ""
	f.sheet.save()
	return nil
}

// Discard drops the draft without touching the inventory.
func (f *Forge) Discard() {
	f.draft = nil
	f.sourceID = ""
}

// copyItem deep-copies an item so draft edits cannot leak into inventory.
func copyItem(src *item.Item) *item.Item {
	out := *src
	if d := src.Data.Weapon; d != nil {
		w := *d
		w.Properties = append([]string(nil), d.Properties...)
		out.Data.Weapon = &w
	}
	if d := src.Data.Armor; d != nil {
		a := *d
		out.Data.Armor = &a
	}
	if d := src.Data.Container; d != nil {
		c := *d
		out.Data.Container = &c
	}
	if d := src.Data.Consumable; d != nil {
		c := *d
		out.Data.Consumable = &c
	}
	if d := src.Data.Tool; d != nil {
		t := *d
		out.Data.Tool = &t
	}
	if src.Data.Unstructured != nil {
		m := make(map[string]any, len(src.Data.Unstructured))
		for k, v := range src.Data.Unstructured {
			m[k] = v
		}
		out.Data.Unstructured = m
	}
	return &out
}
