package sheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/item"
)

// ammoBundleQty is the shop bundle size for arrows and bolts.
const ammoBundleQty = 20

// quiverTemplateID is the container arrow and bolt bundles route into.
const quiverTemplateID = "quiver"

// stackable reports whether instances of the template merge into an existing
// stack instead of creating a new entry. The set is deliberately small:
// everything else stays a discrete instance because it can pick up
// per-instance state later.
func (s *Sheet) stackable(templateID string) bool {
	if templateID == "dart" {
		return true
	}
	c := s.reg.Consumable(templateID)
	return c != nil && c.Stackable
}

// AddItem routes a template into the inventory.
//
// Packs expand into a container plus contents. Arrow and bolt templates are
// added as bundles and steered into a quiver: the given parent when set,
// otherwise an existing quiver, otherwise a freshly created one. Stackable
// templates merge into an existing stack under the same parent. Everything
// else becomes a new independent instance.
//
// Postcondition: on success the record is persisted; on failure it is
// untouched.
func (s *Sheet) AddItem(templateID, parentID string) error {
	if s.reg.Pack(templateID) != nil {
		return s.expandPack(templateID, parentID)
	}

	if templateID == "arrows" || templateID == "bolts" {
		target := parentID
		if target == "" {
			target = s.findOrCreateQuiver()
		}
		if err := s.addOrMerge(templateID, ammoBundleQty, target); err != nil {
			return err
		}
		s.save()
		return nil
	}

	if err := s.addOrMerge(templateID, 1, parentID); err != nil {
		return err
	}
	s.save()
	return nil
}

// findOrCreateQuiver returns the instance ID of a quiver, instantiating one
// at inventory root if the character owns none.
func (s *Sheet) findOrCreateQuiver() string {
	for _, it := range s.char.Inventory {
		if it.TemplateID == quiverTemplateID {
			return it.InstanceID
		}
	}
	q, err := item.New(s.reg, quiverTemplateID)
	if err != nil {
		s.log.Warn("quiver template missing, ammo lands at root",
			zap.Error(err))
		return ""
	}
	s.char.Inventory = append(s.char.Inventory, q)
	return q.InstanceID
}

// addOrMerge adds quantity of the template under the parent, merging into an
// existing stack only for stackable templates.
func (s *Sheet) addOrMerge(templateID string, quantity int, parentID string) error {
	if s.stackable(templateID) {
		for _, it := range s.char.Inventory {
			if it.TemplateID == templateID && it.ParentID == parentID {
				it.Quantity += quantity
				return nil
			}
		}
	}

	it, err := item.New(s.reg, templateID)
	if err != nil {
		s.log.Warn("template lookup failed, nothing added",
			zap.String("templateId", templateID), zap.Error(err))
		return err
	}
	it.Quantity = quantity
	it.ParentID = parentID
	s.char.Inventory = append(s.char.Inventory, it)
	return nil
}

// expandPack instantiates a pack: its container first (parented to parentID),
// then every content entry inside the new container. A pack without a
// container drops its contents directly under parentID.
func (s *Sheet) expandPack(packID, parentID string) error {
	def := s.reg.Pack(packID)
	if def == nil {
		return fmt.Errorf("sheet: expandPack: pack %q: %w", packID, catalog.ErrNotFound)
	}

	target := parentID
	if def.ContainerID != "" {
		c, err := item.New(s.reg, def.ContainerID)
		if err != nil {
			return fmt.Errorf("sheet: expandPack: pack %q container: %w", packID, err)
		}
		c.ParentID = parentID
		s.char.Inventory = append(s.char.Inventory, c)
		target = c.InstanceID
	}

	for _, content := range def.Contents {
		if err := s.addOrMerge(content.TemplateID, content.Quantity, target); err != nil {
			return fmt.Errorf("sheet: expandPack: pack %q content %q: %w", packID, content.TemplateID, err)
		}
	}

	s.save()
	return nil
}

// RemoveItem deletes the item from inventory, moving it to the session trash.
// Children are reparented to the removed item's former parent so nothing is
// left pointing at a missing container, and the equipped set drops the ID.
func (s *Sheet) RemoveItem(instanceID string) error {
	removed := s.char.Item(instanceID)
	if removed == nil {
		return fmt.Errorf("sheet: RemoveItem: %q: %w", instanceID, ErrItemNotFound)
	}

	for _, it := range s.char.Inventory {
		if it.ParentID == instanceID {
			it.ParentID = removed.ParentID
		}
	}

	kept := s.char.Inventory[:0]
	for _, it := range s.char.Inventory {
		if it.InstanceID != instanceID {
			kept = append(kept, it)
		}
	}
	s.char.Inventory = kept

	equipped := s.char.EquippedIDs[:0]
	for _, id := range s.char.EquippedIDs {
		if id != instanceID {
			equipped = append(equipped, id)
		}
	}
	s.char.EquippedIDs = equipped

	s.trash = append(s.trash, removed)
	s.save()
	return nil
}

// Trash returns the removed-but-recoverable items. The trash lives only in
// memory and is never written to disk.
func (s *Sheet) Trash() []*item.Item { return s.trash }

// RestoreFromTrash moves a trashed item back into inventory at root.
func (s *Sheet) RestoreFromTrash(instanceID string) error {
	for i, it := range s.trash {
		if it.InstanceID == instanceID {
			s.trash = append(s.trash[:i], s.trash[i+1:]...)
			it.ParentID = ""
			s.char.Inventory = append(s.char.Inventory, it)
			s.save()
			return nil
		}
	}
	return fmt.Errorf("sheet: RestoreFromTrash: %q: %w", instanceID, ErrItemNotFound)
}

// EmptyTrash discards everything in the trash for good.
func (s *Sheet) EmptyTrash() { s.trash = nil }

// MoveItem re-parents the item and repositions it at index within the flat
// inventory list. An empty parentID moves it to root. Index is clamped; list
// order matters only for display grouping.
//
// Postcondition: the parent graph stays acyclic; a move that would parent an
// item inside itself fails with ErrCycle and changes nothing.
func (s *Sheet) MoveItem(instanceID, parentID string, index int) error {
	moved := s.char.Item(instanceID)
	if moved == nil {
		return fmt.Errorf("sheet: MoveItem: %q: %w", instanceID, ErrItemNotFound)
	}

	if parentID != "" {
		target := s.char.Item(parentID)
		if target == nil {
			return fmt.Errorf("sheet: MoveItem: parent %q: %w", parentID, ErrItemNotFound)
		}
		if !target.IsContainer() {
			return fmt.Errorf("sheet: MoveItem: parent %q: %w", parentID, ErrNotContainer)
		}
		// Walk the would-be ancestor chain looking for the moved item.
		for cursor := parentID; cursor != ""; {
			if cursor == instanceID {
				return fmt.Errorf("sheet: MoveItem: %q into %q: %w", instanceID, parentID, ErrCycle)
			}
			ancestor := s.char.Item(cursor)
			if ancestor == nil {
				break
			}
			cursor = ancestor.ParentID
		}
	}

	moved.ParentID = parentID

	// Reposition within the flat list.
	pos := -1
	for i, it := range s.char.Inventory {
		if it.InstanceID == instanceID {
			pos = i
			break
		}
	}
	if pos >= 0 {
		s.char.Inventory = append(s.char.Inventory[:pos], s.char.Inventory[pos+1:]...)
		if index < 0 {
			index = 0
		}
		if index > len(s.char.Inventory) {
			index = len(s.char.Inventory)
		}
		s.char.Inventory = append(s.char.Inventory[:index],
			append([]*item.Item{moved}, s.char.Inventory[index:]...)...)
	}

	s.save()
	return nil
}

// AdjustQuantity changes the item's stack size by delta, never below 1.
func (s *Sheet) AdjustQuantity(instanceID string, delta int) error {
	it := s.char.Item(instanceID)
	if it == nil {
		return fmt.Errorf("sheet: AdjustQuantity: %q: %w", instanceID, ErrItemNotFound)
	}
	it.Quantity += delta
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	s.save()
	return nil
}

// SetCharges sets a consumable's remaining charges, clamped to [0, max].
func (s *Sheet) SetCharges(instanceID string, charges int) error {
	it := s.char.Item(instanceID)
	if it == nil {
		return fmt.Errorf("sheet: SetCharges: %q: %w", instanceID, ErrItemNotFound)
	}
	c := it.Data.Consumable
	if c == nil {
		return fmt.Errorf("sheet: SetCharges: %q is not a consumable", instanceID)
	}
	if charges < 0 {
		charges = 0
	}
	if charges > c.MaxCharges {
		charges = c.MaxCharges
	}
	c.Charges = charges
	s.save()
	return nil
}

// ToggleEquipped adds or removes the instance from the equipped set.
//
// Precondition maintained: the equipped set only ever references instance IDs
// present in inventory.
func (s *Sheet) ToggleEquipped(instanceID string) error {
	if s.char.Item(instanceID) == nil {
		return fmt.Errorf("sheet: ToggleEquipped: %q: %w", instanceID, ErrItemNotFound)
	}
	for i, id := range s.char.EquippedIDs {
		if id == instanceID {
			s.char.EquippedIDs = append(s.char.EquippedIDs[:i], s.char.EquippedIDs[i+1:]...)
			s.save()
			return nil
		}
	}
	s.char.EquippedIDs = append(s.char.EquippedIDs, instanceID)
	s.save()
	return nil
}

// SetEquippedList replaces the equipped set wholesale, de-duplicating and
// dropping IDs that are not in inventory.
func (s *Sheet) SetEquippedList(ids []string) {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] || s.char.Item(id) == nil {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	s.char.EquippedIDs = out
	s.save()
}

// ToggleAttackHidden flips the hidden flag for a derived attack entry ID.
// Hidden entries are still computed; hiding is a display concern.
func (s *Sheet) ToggleAttackHidden(attackID string) {
	for i, id := range s.char.HiddenAttacks {
		if id == attackID {
			s.char.HiddenAttacks = append(s.char.HiddenAttacks[:i], s.char.HiddenAttacks[i+1:]...)
			s.save()
			return
		}
	}
	s.char.HiddenAttacks = append(s.char.HiddenAttacks, attackID)
	s.save()
}
