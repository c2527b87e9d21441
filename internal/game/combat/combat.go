// Package combat derives battle-facing figures from a character record.
// Nothing here mutates the record; every value recomputes from authored
// state so the results can never go stale.
package combat

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// AbilityModifier converts a raw ability score to its modifier, rounding
// toward negative infinity.
func AbilityModifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// ProficiencyBonus returns the bonus for a character level.
//
// Precondition: level >= 1.
func ProficiencyBonus(level int) int {
	return (level+3)/4 + 1
}

// FormatModifier renders a modifier with an explicit sign.
func FormatModifier(v int) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// Initiative returns the initiative modifier.
func Initiative(c *character.Character) int {
	return AbilityModifier(c.Stats.DEX)
}

// ArmorClass computes the final armor class from equipped armor.
//
// Unarmored is 10 plus the dexterity modifier. Heavy armor pins AC to its
// base, medium adds dexterity capped at +2, light adds full dexterity. Only
// the first equipped body armor counts, and only the first equipped shield
// adds its bonus.
func ArmorClass(c *character.Character) int {
	dexMod := AbilityModifier(c.Stats.DEX)
	ac := 10 + dexMod

	var shieldBonus int
	var sawBody, sawShield bool
	for _, id := range c.EquippedIDs {
		it := c.Item(id)
		if it == nil || it.Data.Armor == nil {
			continue
		}
		a := it.Data.Armor
		if a.Bucket == catalog.Shield {
			if !sawShield {
				sawShield = true
				shieldBonus = a.AC
				if shieldBonus == 0 {
					shieldBonus = 2
				}
			}
			continue
		}
		if sawBody {
			continue
		}
		sawBody = true
		switch a.Bucket {
		case catalog.HeavyArmor:
			ac = a.AC
		case catalog.MediumArmor:
			ac = a.AC + minInt(dexMod, 2)
		default:
			ac = a.AC + dexMod
		}
	}

	return ac + shieldBonus
}

// WearingNonProficientArmor reports whether any equipped armor falls outside
// the character's armor proficiencies.
func WearingNonProficientArmor(c *character.Character) bool {
	for _, id := range c.EquippedIDs {
		it := c.Item(id)
		if it == nil || it.Data.Armor == nil {
			continue
		}
		key := catalog.ArmorProficiencyFor(it.Data.Armor.Bucket)
		if key == "" {
			continue
		}
		if !contains(c.Proficiencies.Armor, key) {
			return true
		}
	}
	return false
}

// SkillScore is one derived row of the skill list.
type SkillScore struct {
	Key        string
	Label      string
	Ability    catalog.AbilityKey
	Modifier   int
	Display    string
	Proficient bool
}

// Skills derives all eighteen skill modifiers in display order.
func Skills(c *character.Character) []SkillScore {
	pb := ProficiencyBonus(c.Profile.Level)
	out := make([]SkillScore, 0, len(catalog.Skills))
	for _, def := range catalog.Skills {
		mod := AbilityModifier(c.Stats.Get(def.Ability))
		proficient := c.SkillProficiencies[def.Key]
		if proficient {
			mod += pb
		}
		out = append(out, SkillScore{
			Key:        def.Key,
			Label:      def.Label,
			Ability:    def.Ability,
			Modifier:   mod,
			Display:    FormatModifier(mod),
			Proficient: proficient,
		})
	}
	return out
}

// PassivePerception returns 10 plus the perception skill modifier.
func PassivePerception(c *character.Character) int {
	for _, s := range Skills(c) {
		if s.Key == "perception" {
			return 10 + s.Modifier
		}
	}
	return 10
}

// SavingThrow is one derived saving throw row.
type SavingThrow struct {
	Ability    catalog.AbilityKey
	Modifier   int
	Display    string
	Proficient bool
}

// SavingThrows derives the six saving throw modifiers in conventional order.
func SavingThrows(c *character.Character) []SavingThrow {
	pb := ProficiencyBonus(c.Profile.Level)
	out := make([]SavingThrow, 0, 6)
	for _, k := range catalog.AbilityKeys() {
		mod := AbilityModifier(c.Stats.Get(k))
		proficient := c.SavingThrows[k]
		if proficient {
			mod += pb
		}
		out = append(out, SavingThrow{
			Ability:    k,
			Modifier:   mod,
			Display:    FormatModifier(mod),
			Proficient: proficient,
		})
	}
	return out
}

// SpellAbilityModifier returns the modifier of the configured spellcasting
// ability.
func SpellAbilityModifier(c *character.Character) int {
	return AbilityModifier(c.Stats.Get(c.Spells.SpellcastingAbility))
}

// SuggestedSpellSaveDC is 8 + proficiency bonus + spellcasting modifier. The
// authored value on the record wins for display; this is the rules-derived
// suggestion.
func SuggestedSpellSaveDC(c *character.Character) int {
	return 8 + ProficiencyBonus(c.Profile.Level) + SpellAbilityModifier(c)
}

// SuggestedSpellAttackMod is proficiency bonus + spellcasting modifier.
func SuggestedSpellAttackMod(c *character.Character) int {
	return ProficiencyBonus(c.Profile.Level) + SpellAbilityModifier(c)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
