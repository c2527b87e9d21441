package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildsRegistry(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	dagger := r.Weapon("dagger")
	require.NotNil(t, dagger)
	assert.Equal(t, "Dagger", dagger.Name)
	assert.Equal(t, SimpleMelee, dagger.Category)
	assert.True(t, dagger.HasProperty(PropFinesse))
	assert.True(t, dagger.HasProperty(PropThrown))
	assert.Equal(t, "20/60", dagger.Range)

	plate := r.Armor("plate")
	require.NotNil(t, plate)
	assert.Equal(t, HeavyArmor, plate.Bucket)
	assert.Equal(t, 18, plate.AC)
	assert.Equal(t, 15, plate.StrengthMin)

	quiver := r.Container("quiver")
	require.NotNil(t, quiver)
	assert.True(t, quiver.IgnoreContentWeight)

	kit := r.Consumable("healer_kit")
	require.NotNil(t, kit)
	assert.Equal(t, 10, kit.MaxCharges)

	arrows := r.Consumable("arrows")
	require.NotNil(t, arrows)
	assert.Equal(t, AmmoArrow, arrows.AmmoType)
	assert.True(t, arrows.Stackable)

	picks := r.Tool("thieves_tools")
	require.NotNil(t, picks)
	assert.Equal(t, Dexterity, picks.Ability)

	lute := r.Tool("lute")
	require.NotNil(t, lute)
	assert.Equal(t, Charisma, lute.Ability)
}

func TestLoadResolvesPackContents(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	for _, id := range []string{"pack_dungeoneer", "pack_explorer", "pack_burglar", "pack_diplomat", "pack_entertainer", "pack_priest", "pack_scholar"} {
		p := r.Pack(id)
		require.NotNil(t, p, "pack %s", id)
		if p.ContainerID != "" {
			require.NotNil(t, r.Container(p.ContainerID), "pack %s container %s", id, p.ContainerID)
		}
		for _, c := range p.Contents {
			_, ok := r.Find(c.TemplateID)
			assert.True(t, ok, "pack %s content %s", id, c.TemplateID)
		}
	}
}

func TestFindCoversAllSubtypes(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	cases := map[string]ItemType{
		"longsword":  TypeWeapon,
		"leather":    TypeArmor,
		"crowbar":    TypeGear,
		"lute":       TypeTool,
		"torch":      TypeConsumable,
		"gold_bar":   TypeTreasure,
		"backpack":   TypeContainer,
		"pack_burglar": TypePack,
	}
	for id, want := range cases {
		def, ok := r.Find(id)
		require.True(t, ok, id)
		assert.Equal(t, want, def.Common().Type, id)
	}

	_, ok := r.Find("vorpal_sword")
	assert.False(t, ok)

	// Spells live in their own namespace.
	_, ok = r.Find("fireball")
	assert.False(t, ok)
	_, ok = r.Spell("fireball")
	assert.True(t, ok)
}

func TestWeaponIsRanged(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	assert.True(t, r.Weapon("shortbow").IsRanged())
	assert.True(t, r.Weapon("hand_crossbow").IsRanged())
	// Thrown melee weapons keep a range string but stay melee.
	assert.False(t, r.Weapon("dagger").IsRanged())
	assert.False(t, r.Weapon("javelin").IsRanged())
	assert.False(t, r.Weapon("longsword").IsRanged())
}

func TestWeaponValidate(t *testing.T) {
	w := &WeaponDef{ID: "broken", Name: "Broken", Category: "exotic", DamageType: "sonic"}
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.Contains(t, err.Error(), "unknown damage type")
	assert.Contains(t, err.Error(), "damage dice")
}

func TestToolValidate(t *testing.T) {
	d := &ToolDef{ID: "dowsing_rod", Name: "Dowsing Rod", Ability: "luck"}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseAbility")

	d.Ability = Wisdom
	require.NoError(t, d.Validate())

	d.Ability = ""
	require.NoError(t, d.Validate())
}

func TestPackValidate(t *testing.T) {
	p := &PackDef{ID: "empty_pack", Name: "Empty"}
	require.Error(t, p.Validate())

	p.Contents = []PackContent{{TemplateID: "", Quantity: 0}}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "templateId")
	assert.Contains(t, err.Error(), "quantity")
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	w := &WeaponDef{ID: "club", Name: "Club", Category: SimpleMelee, Damage: "1d4", DamageType: "bludgeoning"}
	require.NoError(t, r.RegisterWeapon(w))
	require.Error(t, r.RegisterWeapon(w))
}

func TestSkillTable(t *testing.T) {
	assert.Len(t, Skills, 18)

	seen := make(map[string]bool)
	for _, s := range Skills {
		assert.False(t, seen[s.Key], "duplicate skill %s", s.Key)
		seen[s.Key] = true
	}

	stealth, ok := SkillByKey("stealth")
	require.True(t, ok)
	assert.Equal(t, Dexterity, stealth.Ability)

	athletics, ok := SkillByKey("athletics")
	require.True(t, ok)
	assert.Equal(t, Strength, athletics.Ability)

	_, ok = SkillByKey("basket_weaving")
	assert.False(t, ok)
}

func TestArmorProficiencyFor(t *testing.T) {
	assert.Equal(t, ProficiencyHeavyArmor, ArmorProficiencyFor(HeavyArmor))
	assert.Equal(t, ProficiencyShields, ArmorProficiencyFor(Shield))
	assert.Equal(t, "", ArmorProficiencyFor(ArmorBucket("exotic")))
}

func TestCostString(t *testing.T) {
	c := &Cost{Value: 1500, Unit: "gp"}
	assert.Equal(t, "1,500 gp", c.String())

	var nilCost *Cost
	assert.Equal(t, "--", nilCost.String())
	assert.Equal(t, 0, nilCost.BaseValue())
	assert.Equal(t, 150000, c.BaseValue())
}
