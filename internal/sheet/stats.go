package sheet

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/currency"
)

// SetAbilityScore overwrites one raw ability score.
func (s *Sheet) SetAbilityScore(key catalog.AbilityKey, value int) {
	s.char.Stats.Set(key, value)
	s.save()
}

// ToggleSkillProficiency flips the proficiency flag for a skill key.
func (s *Sheet) ToggleSkillProficiency(skillKey string) {
	s.char.SkillProficiencies[skillKey] = !s.char.SkillProficiencies[skillKey]
	s.save()
}

// ToggleSavingThrow flips the proficiency flag for an ability's saving throw.
func (s *Sheet) ToggleSavingThrow(key catalog.AbilityKey) {
	s.char.SavingThrows[key] = !s.char.SavingThrows[key]
	s.save()
}

// ToggleArmorProficiency adds or removes an armor proficiency key
// (light/medium/heavy/shield).
func (s *Sheet) ToggleArmorProficiency(key string) {
	s.char.Proficiencies.Armor = toggleEntry(s.char.Proficiencies.Armor, key)
	s.save()
}

// ToggleWeaponProficiency adds or removes a weapon proficiency key
// (simple/martial).
func (s *Sheet) ToggleWeaponProficiency(key string) {
	s.char.Proficiencies.Weapons = toggleEntry(s.char.Proficiencies.Weapons, key)
	s.save()
}

// AddToolProficiency appends a free-text tool entry. Blank and duplicate
// entries are rejected silently.
func (s *Sheet) AddToolProficiency(name string) {
	s.char.Proficiencies.Tools = addEntry(s.char.Proficiencies.Tools, name)
	s.save()
}

// RemoveToolProficiency drops a tool entry if present.
func (s *Sheet) RemoveToolProficiency(name string) {
	s.char.Proficiencies.Tools = removeEntry(s.char.Proficiencies.Tools, name)
	s.save()
}

// AddLanguage appends a free-text language entry. Blank and duplicate entries
// are rejected silently.
func (s *Sheet) AddLanguage(name string) {
	s.char.Proficiencies.Languages = addEntry(s.char.Proficiencies.Languages, name)
	s.save()
}

// RemoveLanguage drops a language entry if present.
func (s *Sheet) RemoveLanguage(name string) {
	s.char.Proficiencies.Languages = removeEntry(s.char.Proficiencies.Languages, name)
	s.save()
}

// ApplyCurrencyDelta applies a signed coin amount to the wallet through the
// dual-pool rebalancer.
//
// Postcondition: on ErrInsufficientFunds the wallet is unchanged; no partial
// application ever happens.
func (s *Sheet) ApplyCurrencyDelta(unit currency.Unit, amount int) error {
	next, err := currency.ApplyDelta(s.char.Wallet, unit, amount)
	if err != nil {
		return fmt.Errorf("sheet: ApplyCurrencyDelta: %w", err)
	}
	s.char.Wallet = next
	s.save()
	return nil
}

func toggleEntry(list []string, key string) []string {
	for i, v := range list {
		if v == key {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, key)
}

func addEntry(list []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return list
	}
	for _, v := range list {
		if v == name {
			return list
		}
	}
	return append(list, name)
}

func removeEntry(list []string, name string) []string {
	for i, v := range list {
		if v == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
