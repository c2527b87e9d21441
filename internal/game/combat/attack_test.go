package combat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/character"
)

func attackByID(list []Attack, id string) (Attack, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return Attack{}, false
}

func TestAttacksUnarmedOnly(t *testing.T) {
	c := character.New()
	c.Stats.STR = 14 // +2

	list := Attacks(c)
	require.Len(t, list, 1)

	unarmed := list[0]
	assert.Equal(t, UnarmedAttackID, unarmed.ID)
	assert.Equal(t, "Unarmed Strike", unarmed.Name)
	assert.Equal(t, "+4", unarmed.Hit) // 2 + pb 2
	assert.Equal(t, "3 Bludgeoning", unarmed.Damage)
	assert.Equal(t, "5 ft", unarmed.Range)
}

func TestAttacksDaggerModes(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.STR = 14 // +2
	c.Stats.DEX = 16 // +3
	c.Proficiencies.Weapons = []string{catalog.ProficiencySimpleWeapons}

	dagger := give(t, reg, c, "dagger")
	list := Attacks(c)

	// Unarmed plus STR, DEX, thrown/STR, thrown/DEX, off-hand.
	require.Len(t, list, 6)

	str, ok := attackByID(list, dagger.InstanceID+"_str")
	require.True(t, ok)
	assert.Equal(t, "Dagger (STR)", str.Name)
	assert.Equal(t, "+4", str.Hit)
	assert.Equal(t, "1d4 +2 Piercing", str.Damage)
	assert.Equal(t, "20/60", str.Range)

	dex, ok := attackByID(list, dagger.InstanceID+"_dex")
	require.True(t, ok)
	assert.Equal(t, "+5", dex.Hit)
	assert.Equal(t, "1d4 +3 Piercing", dex.Damage)

	thrownStr, ok := attackByID(list, dagger.InstanceID+"_thrown_str")
	require.True(t, ok)
	assert.Equal(t, "+4", thrownStr.Hit)
	assert.Equal(t, "1d4 +2 Piercing", thrownStr.Damage)

	thrownDex, ok := attackByID(list, dagger.InstanceID+"_thrown_dex")
	require.True(t, ok)
	assert.Equal(t, "+5", thrownDex.Hit)

	// Off-hand uses dexterity here and suppresses the positive damage mod.
	off, ok := attackByID(list, dagger.InstanceID+"_off")
	require.True(t, ok)
	assert.Equal(t, "+5", off.Hit)
	assert.Equal(t, "1d4 Piercing", off.Damage)

	_, ok = attackByID(list, dagger.InstanceID+"_2h")
	assert.False(t, ok)
}

func TestAttacksVersatileAndTwoHanded(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.STR = 16 // +3
	c.Proficiencies.Weapons = []string{catalog.ProficiencyMartialWeapons}

	longsword := give(t, reg, c, "longsword")
	greatsword := give(t, reg, c, "greatsword")
	list := Attacks(c)

	twoH, ok := attackByID(list, longsword.InstanceID+"_2h")
	require.True(t, ok)
	assert.Equal(t, "Longsword (two-handed)", twoH.Name)
	assert.Equal(t, "1d10 +3 Slashing", twoH.Damage)

	// Longsword is not finesse: no dexterity mode, but an off-hand mode
	// using strength with the damage mod suppressed.
	_, ok = attackByID(list, longsword.InstanceID+"_dex")
	assert.False(t, ok)
	off, ok := attackByID(list, longsword.InstanceID+"_off")
	require.True(t, ok)
	assert.Equal(t, "1d8 Slashing", off.Damage)

	// Two-handed weapons never get an off-hand mode.
	_, ok = attackByID(list, greatsword.InstanceID+"_off")
	assert.False(t, ok)
}

func TestAttacksProficiencyGate(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.STR = 14
	rapier := give(t, reg, c, "rapier") // martial

	list := Attacks(c)
	str, ok := attackByID(list, rapier.InstanceID+"_str")
	require.True(t, ok)
	assert.Equal(t, "+2", str.Hit) // no pb without martial proficiency

	c.Proficiencies.Weapons = []string{catalog.ProficiencyMartialWeapons}
	list = Attacks(c)
	str, _ = attackByID(list, rapier.InstanceID+"_str")
	assert.Equal(t, "+4", str.Hit)
}

func TestAttacksRangedAmmoCount(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	c.Stats.DEX = 16
	c.Proficiencies.Weapons = []string{catalog.ProficiencySimpleWeapons}

	bow := give(t, reg, c, "shortbow")
	a1 := give(t, reg, c, "arrows")
	a1.Quantity = 20
	a2 := give(t, reg, c, "arrows")
	a2.Quantity = 15
	bolts := give(t, reg, c, "bolts")
	bolts.Quantity = 20

	list := Attacks(c)
	ranged, ok := attackByID(list, bow.InstanceID+"_ranged")
	require.True(t, ok)
	assert.Equal(t, "Shortbow", ranged.Name)
	assert.Equal(t, "+5", ranged.Hit)
	assert.Equal(t, "1d6 +3 Piercing", ranged.Damage)
	assert.Equal(t, "80/320", ranged.Range)
	assert.True(t, ranged.NeedsAmmo)
	assert.Equal(t, catalog.AmmoArrow, ranged.AmmoType)
	assert.Equal(t, 35, ranged.AmmoCount) // bolts excluded
	assert.ElementsMatch(t, []string{a1.InstanceID, a2.InstanceID}, ranged.AmmoItemIDs)

	// Ranged weapons emit exactly one mode.
	for _, a := range list {
		if a.BaseID == bow.InstanceID {
			assert.True(t, strings.HasSuffix(a.ID, "_ranged"))
		}
	}
}

func TestAttacksHiddenFlag(t *testing.T) {
	reg := mustLoad(t)

	c := character.New()
	dagger := give(t, reg, c, "dagger")
	c.HiddenAttacks = []string{UnarmedAttackID, dagger.InstanceID + "_str"}

	list := Attacks(c)
	unarmed, _ := attackByID(list, UnarmedAttackID)
	assert.True(t, unarmed.Hidden)

	str, _ := attackByID(list, dagger.InstanceID+"_str")
	assert.True(t, str.Hidden)
	dex, _ := attackByID(list, dagger.InstanceID+"_dex")
	assert.False(t, dex.Hidden)

	visible := VisibleAttacks(c)
	for _, a := range visible {
		assert.False(t, a.Hidden)
	}
	assert.Len(t, visible, len(list)-2)
}

func TestAttacksNegativeStrength(t *testing.T) {
	c := character.New()
	c.Stats.STR = 7 // -2

	list := Attacks(c)
	unarmed := list[0]
	assert.Equal(t, "+0", unarmed.Hit)                 // -2 + pb 2
	assert.Equal(t, "-1 Bludgeoning", unarmed.Damage)  // 1 + (-2)
}
