package sheet

import (
	"fmt"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// maxSlotCapacity caps the authored per-level slot maximum.
const maxSlotCapacity = 99

// LearnSpell adds the spell ID to the known list. Unknown catalog IDs are
// rejected; learning a spell twice is a no-op.
func (s *Sheet) LearnSpell(spellID string) error {
	if _, ok := s.reg.Spell(spellID); !ok {
		return fmt.Errorf("sheet: LearnSpell: spell %q: %w", spellID, catalog.ErrNotFound)
	}
	for _, id := range s.char.Spells.Known {
		if id == spellID {
			return nil
		}
	}
	s.char.Spells.Known = append(s.char.Spells.Known, spellID)
	s.save()
	return nil
}

// ForgetSpell removes the spell from both the known and prepared lists.
func (s *Sheet) ForgetSpell(spellID string) {
	s.char.Spells.Known = removeEntry(s.char.Spells.Known, spellID)
	s.char.Spells.Prepared = removeEntry(s.char.Spells.Prepared, spellID)
	s.save()
}

// TogglePrepared flips the prepared flag for a known spell.
func (s *Sheet) TogglePrepared(spellID string) {
	s.char.Spells.Prepared = toggleEntry(s.char.Spells.Prepared, spellID)
	s.save()
}

// SetSpellSlot sets the current slot count at the given level, clamped to
// [0, max at that level].
func (s *Sheet) SetSpellSlot(level, current int) {
	if level < 1 || level >= character.SpellLevels {
		return
	}
	max := s.char.Spells.Slots.Max[level]
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	s.char.Spells.Slots.Current[level] = current
	s.save()
}

// SetSpellSlotMax sets the slot capacity at the given level, clamped to
// [0, 99]; the current count is trimmed down to the new capacity.
func (s *Sheet) SetSpellSlotMax(level, max int) {
	if level < 1 || level >= character.SpellLevels {
		return
	}
	if max < 0 {
		max = 0
	}
	if max > maxSlotCapacity {
		max = maxSlotCapacity
	}
	s.char.Spells.Slots.Max[level] = max
	if s.char.Spells.Slots.Current[level] > max {
		s.char.Spells.Slots.Current[level] = max
	}
	s.save()
}

// RecoverAllSlots restores every spell level to full capacity, the long rest.
func (s *Sheet) RecoverAllSlots() {
	for level := 1; level < character.SpellLevels; level++ {
		s.char.Spells.Slots.Current[level] = s.char.Spells.Slots.Max[level]
	}
	if ps := s.char.Spells.PactSlots; ps != nil {
		ps.Current = ps.Max
	}
	s.save()
}

// SetSpellcastingAbility records which ability powers the character's
// spellcasting. DC and attack modifier stay authored values.
func (s *Sheet) SetSpellcastingAbility(key catalog.AbilityKey) {
	s.char.Spells.SpellcastingAbility = key
	s.save()
}

// SetSpellSaveDC overwrites the authored spell save DC.
func (s *Sheet) SetSpellSaveDC(dc int) {
	s.char.Spells.SpellSaveDC = dc
	s.save()
}

// SetSpellAttackMod overwrites the authored spell attack modifier.
func (s *Sheet) SetSpellAttackMod(mod int) {
	s.char.Spells.SpellAttackMod = mod
	s.save()
}

// SetPactSlots sets warlock pact magic state.
func (s *Sheet) SetPactSlots(level, current, max int) {
	if level < 1 {
		level = 1
	}
	if max < 0 {
		max = 0
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	s.char.Spells.PactSlots = &character.PactSlots{Level: level, Current: current, Max: max}
	s.save()
}
