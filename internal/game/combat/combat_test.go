package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/game/item"
)

func mustLoad(t *testing.T) *catalog.Registry {
	t.Helper()
	r, err := catalog.Load()
	require.NoError(t, err)
	return r
}

func give(t *testing.T, reg *catalog.Registry, c *character.Character, templateID string) *item.Item {
	t.Helper()
	it, err := item.New(reg, templateID)
	require.NoError(t, err)
	c.Inventory = append(c.Inventory, it)
	return it
}

func equip(t *testing.T, reg *catalog.Registry, c *character.Character, templateID string) *item.Item {
	t.Helper()
	it := give(t, reg, c, templateID)
	c.EquippedIDs = append(c.EquippedIDs, it.InstanceID)
	return it
}

func TestAbilityModifier(t *testing.T) {
	cases := []struct{ score, want int }{
		{1, -5}, {7, -2}, {8, -1}, {9, -1}, {10, 0},
		{11, 0}, {12, 1}, {15, 2}, {16, 3}, {20, 5},
	}
	for _, tc := range cases {
		if got := AbilityModifier(tc.score); got != tc.want {
			t.Fatalf("AbilityModifier(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestProficiencyBonus(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {12, 4}, {13, 5}, {16, 5}, {17, 6}, {20, 6},
	}
	for _, tc := range cases {
		if got := ProficiencyBonus(tc.level); got != tc.want {
			t.Fatalf("ProficiencyBonus(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "+3", FormatModifier(3))
	assert.Equal(t, "+0", FormatModifier(0))
	assert.Equal(t, "-2", FormatModifier(-2))
}

func TestArmorClassUnarmored(t *testing.T) {
	c := character.New()
	c.Stats.DEX = 14
	assert.Equal(t, 12, ArmorClass(c))
}

func TestArmorClassByBucket(t *testing.T) {
	reg := mustLoad(t)

	cases := []struct {
		armor string
		dex   int
		want  int
	}{
		{"leather", 18, 15},     // light: 11 + 4
		{"scale_mail", 18, 16},  // medium: 14 + min(4, 2)
		{"scale_mail", 8, 13},   // medium with penalty: 14 + (-1)
		{"plate", 18, 18},       // heavy: fixed
		{"plate", 6, 18},        // heavy ignores penalties too
	}
	for _, tc := range cases {
		c := character.New()
		c.Stats.DEX = tc.dex
		equip(t, reg, c, tc.armor)
		assert.Equal(t, tc.want, ArmorClass(c), "%s dex %d", tc.armor, tc.dex)
	}
}

func TestArmorClassShield(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.DEX = 14
	equip(t, reg, c, "leather")
	equip(t, reg, c, "shield")
	assert.Equal(t, 15, ArmorClass(c)) // 11 + 2 + 2

	// A second shield grants nothing.
	equip(t, reg, c, "shield")
	assert.Equal(t, 15, ArmorClass(c))
}

func TestArmorClassUnequippedArmorIgnored(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.DEX = 14
	give(t, reg, c, "plate") // carried, not worn
	assert.Equal(t, 12, ArmorClass(c))
}

func TestInitiative(t *testing.T) {
	c := character.New()
	c.Stats.DEX = 17
	assert.Equal(t, 3, Initiative(c))
}

func TestWearingNonProficientArmor(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	equip(t, reg, c, "chain_mail")
	assert.True(t, WearingNonProficientArmor(c))

	c.Proficiencies.Armor = append(c.Proficiencies.Armor, catalog.ProficiencyHeavyArmor)
	assert.False(t, WearingNonProficientArmor(c))

	equip(t, reg, c, "shield")
	assert.True(t, WearingNonProficientArmor(c))
}

func TestSkills(t *testing.T) {
	c := character.New()
	c.Stats.STR = 16
	c.Stats.DEX = 12
	c.Profile.Level = 5 // pb 3
	c.SkillProficiencies["athletics"] = true

	skills := Skills(c)
	require.Len(t, skills, 18)

	byKey := make(map[string]SkillScore)
	for _, s := range skills {
		byKey[s.Key] = s
	}

	assert.Equal(t, 6, byKey["athletics"].Modifier) // 3 + 3
	assert.True(t, byKey["athletics"].Proficient)
	assert.Equal(t, "+6", byKey["athletics"].Display)
	assert.Equal(t, 1, byKey["acrobatics"].Modifier) // dex only
	assert.Equal(t, 0, byKey["arcana"].Modifier)
}

func TestPassivePerception(t *testing.T) {
	c := character.New()
	c.Stats.WIS = 16
	assert.Equal(t, 13, PassivePerception(c))

	c.SkillProficiencies["perception"] = true
	assert.Equal(t, 15, PassivePerception(c)) // 10 + 3 + 2
}

func TestSavingThrows(t *testing.T) {
	c := character.New()
	c.Stats.CON = 14
	c.SavingThrows[catalog.Constitution] = true

	saves := SavingThrows(c)
	require.Len(t, saves, 6)
	assert.Equal(t, catalog.Strength, saves[0].Ability)

	var con SavingThrow
	for _, s := range saves {
		if s.Ability == catalog.Constitution {
			con = s
		}
	}
	assert.Equal(t, 4, con.Modifier) // 2 + pb 2
	assert.True(t, con.Proficient)
}

func TestSpellDerivedValues(t *testing.T) {
	c := character.New()
	c.Stats.INT = 16
	c.Profile.Level = 5
	c.Spells.SpellcastingAbility = catalog.Intelligence

	assert.Equal(t, 3, SpellAbilityModifier(c))
	assert.Equal(t, 14, SuggestedSpellSaveDC(c)) // 8 + 3 + 3
	assert.Equal(t, 6, SuggestedSpellAttackMod(c))
}

func TestProperty_AbilityModifierFloors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		score := rapid.IntRange(1, 30).Draw(t, "score")
		mod := AbilityModifier(score)
		if 2*mod > score-10 || score-10 >= 2*mod+2 {
			t.Fatalf("AbilityModifier(%d) = %d does not floor", score, mod)
		}
	})
}
