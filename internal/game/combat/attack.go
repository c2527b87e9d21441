package combat

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// UnarmedAttackID identifies the synthetic unarmed strike entry.
const UnarmedAttackID = "unarmed"

// Attack is one derived row of the attack list. The ID is stable across
// recomputation: weapon entries derive it from the item instance ID plus a
// mode suffix, so hiding an entry survives edits elsewhere on the sheet.
type Attack struct {
	ID         string
	BaseID     string
	Name       string
	Hit        string
	Damage     string
	Range      string
	Properties []string
	Hidden     bool

	NeedsAmmo   bool
	AmmoType    catalog.AmmoType
	AmmoCount   int
	AmmoItemIDs []string
}

// Attacks derives the full attack list: a synthetic unarmed strike followed
// by every attack mode of every weapon in the inventory, equipped or not.
//
// Melee weapons emit a strength mode, a dexterity mode when finesse, a
// two-handed mode when versatile, thrown modes when thrown, and an off-hand
// mode unless two-handed. Ranged weapons emit a single dexterity mode and
// count matching ammunition across the whole inventory.
func Attacks(c *character.Character) []Attack {
	strMod := AbilityModifier(c.Stats.STR)
	dexMod := AbilityModifier(c.Stats.DEX)
	pb := ProficiencyBonus(c.Profile.Level)

	hidden := make(map[string]bool, len(c.HiddenAttacks))
	for _, id := range c.HiddenAttacks {
		hidden[id] = true
	}

	list := []Attack{{
		ID:     UnarmedAttackID,
		BaseID: UnarmedAttackID,
		Name:   "Unarmed Strike",
		Hit:    FormatModifier(strMod + pb),
		Damage: fmt.Sprintf("%d %s", 1+strMod, catalog.DamageTypes["bludgeoning"]),
		Range:  "5 ft",
		Hidden: hidden[UnarmedAttackID],
	}}

	for _, it := range c.Inventory {
		w := it.Data.Weapon
		if w == nil {
			continue
		}

		proficient := (w.Category.IsSimple() && contains(c.Proficiencies.Weapons, catalog.ProficiencySimpleWeapons)) ||
			(w.Category.IsMartial() && contains(c.Proficiencies.Weapons, catalog.ProficiencyMartialWeapons))

		needsAmmo := w.HasProperty(catalog.PropAmmunition)
		var ammoCount int
		var ammoIDs []string
		if needsAmmo && w.AmmoType != "" {
			for _, stack := range c.Inventory {
				cd := stack.Data.Consumable
				if cd == nil || cd.AmmoType != w.AmmoType {
					continue
				}
				ammoCount += stack.Quantity
				ammoIDs = append(ammoIDs, stack.InstanceID)
			}
		}

		weaponRange := w.Range
		if weaponRange == "" {
			weaponRange = "5 ft"
		}

		addEntry := func(suffix, label string, useDex bool, dice string, offhand bool) {
			mod := strMod
			if useDex {
				mod = dexMod
			}
			hit := mod
			if proficient {
				hit += pb
			}

			dmgMod := mod
			if offhand && dmgMod > 0 {
				dmgMod = 0
			}

			id := it.InstanceID + suffix
			list = append(list, Attack{
				ID:          id,
				BaseID:      it.InstanceID,
				Name:        it.Name + label,
				Hit:         FormatModifier(hit),
				Damage:      damageString(dice, dmgMod, w.DamageType),
				Range:       weaponRange,
				Properties:  w.Properties,
				Hidden:      hidden[id],
				NeedsAmmo:   needsAmmo,
				AmmoType:    w.AmmoType,
				AmmoCount:   ammoCount,
				AmmoItemIDs: ammoIDs,
			})
		}

		if it.IsRangedWeapon() {
			addEntry("_ranged", "", true, w.Damage, false)
			continue
		}

		finesse := w.HasProperty(catalog.PropFinesse)

		addEntry("_str", " (STR)", false, w.Damage, false)
		if finesse {
			addEntry("_dex", " (DEX)", true, w.Damage, false)
		}
		if w.HasProperty(catalog.PropVersatile) && w.VersatileDice != "" {
			addEntry("_2h", " (two-handed)", false, w.VersatileDice, false)
		}
		if w.HasProperty(catalog.PropThrown) {
			addEntry("_thrown_str", " (thrown/STR)", false, w.Damage, false)
			if finesse {
				addEntry("_thrown_dex", " (thrown/DEX)", true, w.Damage, false)
			}
		}
		if !w.HasProperty(catalog.PropTwoHanded) {
			useDex := finesse && dexMod > strMod
			addEntry("_off", " (off-hand)", useDex, w.Damage, true)
		}
	}

	return list
}

// VisibleAttacks filters out entries the user has hidden.
func VisibleAttacks(c *character.Character) []Attack {
	all := Attacks(c)
	out := make([]Attack, 0, len(all))
	for _, a := range all {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

func damageString(dice string, mod int, damageType string) string {
	parts := []string{dice}
	if mod > 0 {
		parts = append(parts, fmt.Sprintf("+%d", mod))
	} else if mod < 0 {
		parts = append(parts, fmt.Sprintf("%d", mod))
	}
	label, ok := catalog.DamageTypes[damageType]
	if !ok {
		label = damageType
	}
	if label != "" {
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
