package character

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsheet/internal/catalog"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.NotEmpty(t, c.ID)
	assert.NotZero(t, c.LastModified)
	assert.Equal(t, "New Character", c.Profile.Name)
	assert.Equal(t, 1, c.Profile.Level)
	assert.Equal(t, 0, c.Profile.XP)
	assert.Equal(t, 10, c.Stats.STR)
	assert.Equal(t, 10, c.Combat.HPMax)
	assert.Equal(t, 30, c.Combat.Speed)
	assert.Len(t, c.Combat.Inspiration, 3)
	assert.Equal(t, catalog.Intelligence, c.Spells.SpellcastingAbility)
	assert.Len(t, c.Spells.Slots.Max, SpellLevels)
	assert.NotNil(t, c.Inventory)
	assert.NotNil(t, c.SkillProficiencies)
	assert.False(t, c.SavingThrows[catalog.Dexterity])
}

func TestAbilityScoresGetSet(t *testing.T) {
	var s AbilityScores
	for i, k := range catalog.AbilityKeys() {
		s.Set(k, 8+i)
	}
	for i, k := range catalog.AbilityKeys() {
		assert.Equal(t, 8+i, s.Get(k), string(k))
	}
	assert.Equal(t, 0, s.Get(catalog.AbilityKey("luck")))
}

func TestNormalizeFillsLegacyRecord(t *testing.T) {
	// A minimal record as an old save file would hold it.
	raw := `{"id":"abc","profile":{"name":"Old Timer","race":"Dwarf","class":"Cleric","level":3,"xp":900},"stats":{"str":14,"dex":8,"con":15,"int":10,"wis":16,"cha":12},"combat":{"hpCurrent":21,"hpMax":24}}`

	var c Character
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	c.Normalize()

	assert.NotNil(t, c.Inventory)
	assert.NotNil(t, c.EquippedIDs)
	assert.NotNil(t, c.HiddenAttacks)
	assert.NotNil(t, c.SkillProficiencies)
	assert.Len(t, c.SavingThrows, 6)
	assert.NotNil(t, c.Proficiencies.Tools)
	assert.Len(t, c.Combat.Inspiration, 3)
	assert.Equal(t, catalog.Intelligence, c.Spells.SpellcastingAbility)
	assert.Equal(t, 10, c.Spells.SpellSaveDC)
	assert.Len(t, c.Spells.Slots.Current, SpellLevels)
	require.NotNil(t, c.Spells.PactSlots)
	assert.Equal(t, 1, c.Spells.PactSlots.Level)
}

func TestNormalizeIdempotent(t *testing.T) {
	c := New()
	before, err := json.Marshal(c)
	require.NoError(t, err)
	c.Normalize()
	after, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestItemAndIsEquipped(t *testing.T) {
	c := New()
	assert.Nil(t, c.Item("missing"))
	assert.False(t, c.IsEquipped("missing"))

	c.EquippedIDs = append(c.EquippedIDs, "abc")
	assert.True(t, c.IsEquipped("abc"))
}

func TestLevelForXP(t *testing.T) {
	cases := []struct{ xp, want int }{
		{0, 1},
		{299, 1},
		{300, 2},
		{900, 3},
		{6500, 5},
		{6499, 4},
		{355000, 20},
		{999999, 20},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestXPForLevel(t *testing.T) {
	xp, ok := XPForLevel(5)
	require.True(t, ok)
	assert.Equal(t, 6500, xp)

	_, ok = XPForLevel(0)
	assert.False(t, ok)
	_, ok = XPForLevel(21)
	assert.False(t, ok)
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 300, XPToNextLevel(0))
	assert.Equal(t, 1, XPToNextLevel(299))
	assert.Equal(t, 600, XPToNextLevel(300))
	assert.Equal(t, 0, XPToNextLevel(400000))
}

func TestProperty_LevelMonotonicInXP(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 400000).Draw(t, "a")
		b := rapid.IntRange(0, 400000).Draw(t, "b")
		if a > b {
			a, b = b, a
		}
		la, lb := LevelForXP(a), LevelForXP(b)
		if la > lb {
			t.Fatalf("LevelForXP not monotonic: %d->%d but %d->%d", a, la, b, lb)
		}
		if la < 1 || lb > MaxLevel {
			t.Fatalf("level out of range: %d %d", la, lb)
		}
	})
}
