package combat

import (
	"fmt"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// SpellGroup is one level band of a spell view. HasSlots is false for the
// cantrip group, which never consumes slots.
type SpellGroup struct {
	Level       int
	Label       string
	Spells      []*catalog.SpellDef
	HasSlots    bool
	SlotCurrent int
	SlotMax     int
}

// KnownSpells resolves the character's known spell IDs against the catalog,
// silently dropping IDs the catalog no longer carries.
func KnownSpells(reg *catalog.Registry, c *character.Character) []*catalog.SpellDef {
	out := make([]*catalog.SpellDef, 0, len(c.Spells.Known))
	for _, id := range c.Spells.Known {
		if s, ok := reg.Spell(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// BattleSpells returns the spells castable right now: every known cantrip
// plus known leveled spells that are prepared.
func BattleSpells(reg *catalog.Registry, c *character.Character) []*catalog.SpellDef {
	prepared := make(map[string]bool, len(c.Spells.Prepared))
	for _, id := range c.Spells.Prepared {
		prepared[id] = true
	}

	var out []*catalog.SpellDef
	for _, s := range KnownSpells(reg, c) {
		if s.IsCantrip() || prepared[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// SpellbookGroups groups every known spell by level for the spellbook view.
func SpellbookGroups(reg *catalog.Registry, c *character.Character) []SpellGroup {
	return groupByLevel(KnownSpells(reg, c), c)
}

// BattleGroups groups the castable spells by level for the combat view.
func BattleGroups(reg *catalog.Registry, c *character.Character) []SpellGroup {
	return groupByLevel(BattleSpells(reg, c), c)
}

// groupByLevel emits the cantrip group when any cantrips exist, and a group
// per spell level that has either spells or a slot maximum.
func groupByLevel(spells []*catalog.SpellDef, c *character.Character) []SpellGroup {
	byLevel := make(map[int][]*catalog.SpellDef)
	for _, s := range spells {
		byLevel[s.Level] = append(byLevel[s.Level], s)
	}

	var groups []SpellGroup
	if cantrips := byLevel[0]; len(cantrips) > 0 {
		groups = append(groups, SpellGroup{Level: 0, Label: "Cantrips", Spells: cantrips})
	}
	for lvl := 1; lvl < character.SpellLevels; lvl++ {
		levelSpells := byLevel[lvl]
		max := slotAt(c.Spells.Slots.Max, lvl)
		if len(levelSpells) == 0 && max == 0 {
			continue
		}
		groups = append(groups, SpellGroup{
			Level:       lvl,
			Label:       fmt.Sprintf("Level %d", lvl),
			Spells:      levelSpells,
			HasSlots:    true,
			SlotCurrent: slotAt(c.Spells.Slots.Current, lvl),
			SlotMax:     max,
		})
	}
	return groups
}

func slotAt(s []int, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
