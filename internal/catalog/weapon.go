package catalog

import (
	"fmt"
	"strings"
)

// WeaponCategory classifies a weapon by proficiency family and reach.
type WeaponCategory string

const (
	SimpleMelee   WeaponCategory = "simple_melee"
	SimpleRanged  WeaponCategory = "simple_ranged"
	MartialMelee  WeaponCategory = "martial_melee"
	MartialRanged WeaponCategory = "martial_ranged"
)

// IsSimple reports whether the category belongs to the simple weapon family.
func (c WeaponCategory) IsSimple() bool {
	return strings.HasPrefix(string(c), "simple")
}

// IsMartial reports whether the category belongs to the martial weapon family.
func (c WeaponCategory) IsMartial() bool {
	return strings.HasPrefix(string(c), "martial")
}

// IsRanged reports whether the category names a ranged weapon.
func (c WeaponCategory) IsRanged() bool {
	return strings.Contains(string(c), "ranged")
}

// Weapon properties as they appear in the data files.
const (
	PropLight      = "light"
	PropHeavy      = "heavy"
	PropFinesse    = "finesse"
	PropTwoHanded  = "two_handed"
	PropVersatile  = "versatile"
	PropThrown     = "thrown"
	PropReach      = "reach"
	PropAmmunition = "ammunition"
	PropLoading    = "loading"
	PropSpecial    = "special"
)

// AmmoType identifies the consumable family a ranged weapon draws from.
type AmmoType string

const (
	AmmoArrow  AmmoType = "arrow"
	AmmoBolt   AmmoType = "bolt"
	AmmoBullet AmmoType = "bullet"
	AmmoNeedle AmmoType = "needle"
)

// WeaponDef is a weapon template loaded from the catalog data files.
type WeaponDef struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Weight        float64        `yaml:"weight"`
	Cost          *Cost          `yaml:"cost"`
	Rarity        string         `yaml:"rarity"`
	Category      WeaponCategory `yaml:"category"`
	Damage        string         `yaml:"damage"`
	DamageType    string         `yaml:"damageType"`
	Properties    []string       `yaml:"properties"`
	Range         string         `yaml:"range"`
	VersatileDice string         `yaml:"versatileDamage"`
	AmmoType      AmmoType       `yaml:"ammoType"`
}

// Common implements Definition.
func (w *WeaponDef) Common() Common {
	return Common{ID: w.ID, Name: w.Name, Description: w.Description, Type: TypeWeapon, Weight: w.Weight, Cost: w.Cost, Rarity: w.Rarity}
}

// HasProperty reports whether the weapon carries the named property.
func (w *WeaponDef) HasProperty(name string) bool {
	for _, p := range w.Properties {
		if p == name {
			return true
		}
	}
	return false
}

// IsRanged reports whether the weapon attacks at range. A melee weapon whose
// range string carries a normal/long split (e.g. "20/60") is still melee when
// thrown is set; the thrown mode is derived separately.
func (w *WeaponDef) IsRanged() bool {
	if w.Category.IsRanged() {
		return true
	}
	return strings.Contains(w.Range, "/") && !w.HasProperty(PropThrown)
}

// Validate checks the weapon definition for consistency.
//
// Postcondition: returns nil iff the definition is usable by the engine.
func (w *WeaponDef) Validate() error {
	var violations []string
	if w.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if w.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	switch w.Category {
	case SimpleMelee, SimpleRanged, MartialMelee, MartialRanged:
	default:
		violations = append(violations, fmt.Sprintf("unknown category %q", w.Category))
	}
	if w.Damage == "" {
		violations = append(violations, "damage dice must not be empty")
	}
	if _, ok := DamageTypes[w.DamageType]; !ok {
		violations = append(violations, fmt.Sprintf("unknown damage type %q", w.DamageType))
	}
	if w.HasProperty(PropVersatile) && w.VersatileDice == "" {
		violations = append(violations, "versatile weapon requires versatileDamage dice")
	}
	if w.HasProperty(PropAmmunition) && w.AmmoType == "" {
		violations = append(violations, "ammunition weapon requires ammoType")
	}
	if w.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: WeaponDef.Validate: weapon %q: %s", w.ID, strings.Join(violations, "; "))
	}
	return nil
}
