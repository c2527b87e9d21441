package sheet

import (
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// ApplyDamage subtracts damage from temporary hit points first, then from
// current hit points, flooring current at 0.
func (s *Sheet) ApplyDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	c := &s.char.Combat
	if c.TempHP > 0 {
		absorbed := minInt(c.TempHP, amount)
		c.TempHP -= absorbed
		amount -= absorbed
	}
	c.HPCurrent -= amount
	if c.HPCurrent < 0 {
		c.HPCurrent = 0
	}
	s.save()
}

// ApplyHeal raises current hit points, capped at the maximum. Healing above
// zero wipes accumulated death saves.
func (s *Sheet) ApplyHeal(amount int) {
	if amount < 0 {
		amount = 0
	}
	c := &s.char.Combat
	c.HPCurrent += amount
	if c.HPCurrent > c.HPMax {
		c.HPCurrent = c.HPMax
	}
	if c.HPCurrent > 0 {
		c.DeathSaves = character.DeathSaves{}
	}
	s.save()
}

// FullHeal restores hit points to maximum and clears death saves.
func (s *Sheet) FullHeal() {
	s.char.Combat.HPCurrent = s.char.Combat.HPMax
	s.char.Combat.DeathSaves = character.DeathSaves{}
	s.save()
}

// SetTempHP sets the temporary hit point pool, floored at 0.
func (s *Sheet) SetTempHP(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.char.Combat.TempHP = amount
	s.save()
}

// SetMaxHP sets the hit point maximum and trims current down to it.
func (s *Sheet) SetMaxHP(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.char.Combat.HPMax = amount
	if s.char.Combat.HPCurrent > amount {
		s.char.Combat.HPCurrent = amount
	}
	s.save()
}

// RecordDeathSave accumulates one death saving throw result, 3 at most each.
func (s *Sheet) RecordDeathSave(success bool) {
	ds := &s.char.Combat.DeathSaves
	if success {
		if ds.Success < 3 {
			ds.Success++
		}
	} else {
		if ds.Failure < 3 {
			ds.Failure++
		}
	}
	s.save()
}

// ResetDeathSaves clears both death save counters.
func (s *Sheet) ResetDeathSaves() {
	s.char.Combat.DeathSaves = character.DeathSaves{}
	s.save()
}

// ToggleInspiration flips one of the three inspiration slots.
func (s *Sheet) ToggleInspiration(index int) {
	if index < 0 || index >= len(s.char.Combat.Inspiration) {
		return
	}
	s.char.Combat.Inspiration[index] = !s.char.Combat.Inspiration[index]
	s.save()
}

// SetExhaustion sets the exhaustion level, clamped to [0, 6].
func (s *Sheet) SetExhaustion(level int) {
	if level < 0 {
		level = 0
	}
	if level > 6 {
		level = 6
	}
	s.char.Combat.Exhaustion = level
	s.save()
}

// SetSpeed sets walking speed in feet, floored at 0.
func (s *Sheet) SetSpeed(feet int) {
	if feet < 0 {
		feet = 0
	}
	s.char.Combat.Speed = feet
	s.save()
}

// SetConditions replaces the free-text conditions line.
func (s *Sheet) SetConditions(text string) {
	s.char.Combat.Conditions = text
	s.save()
}

// SetHitDice sets the hit dice pool.
func (s *Sheet) SetHitDice(current, max int) {
	if max < 0 {
		max = 0
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	s.char.Combat.HitDiceCurrent = current
	s.char.Combat.HitDiceMax = max
	s.save()
}

// AddExperience adds signed experience, floors total at 0, and recomputes the
// level from the progression table.
func (s *Sheet) AddExperience(amount int) {
	p := &s.char.Profile
	p.XP += amount
	if p.XP < 0 {
		p.XP = 0
	}
	p.Level = character.LevelForXP(p.XP)
	s.save()
}

// ResetExperience zeroes experience and returns the character to level 1.
func (s *Sheet) ResetExperience() {
	s.char.Profile.XP = 0
	s.char.Profile.Level = 1
	s.save()
}

// UpdateProfile replaces the identity block wholesale; level and XP keep
// their current values since they move through AddExperience.
func (s *Sheet) UpdateProfile(p character.Profile) {
	p.Level = s.char.Profile.Level
	p.XP = s.char.Profile.XP
	s.char.Profile = p
	s.save()
}

// UpdateBio replaces the free-text biography block.
func (s *Sheet) UpdateBio(b character.Bio) {
	s.char.Bio = b
	s.save()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
