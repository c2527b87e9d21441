package catalog

import (
	"fmt"
	"strings"
)

// ArmorBucket classifies armor by how dexterity interacts with its AC.
type ArmorBucket string

const (
	LightArmor  ArmorBucket = "light"
	MediumArmor ArmorBucket = "medium"
	HeavyArmor  ArmorBucket = "heavy"
	Shield      ArmorBucket = "shield"
)

// ArmorDef is an armor or shield template loaded from the catalog data files.
type ArmorDef struct {
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Description   string      `yaml:"description"`
	Weight        float64     `yaml:"weight"`
	Cost          *Cost       `yaml:"cost"`
	Rarity        string      `yaml:"rarity"`
	Bucket        ArmorBucket `yaml:"bucket"`
	AC            int         `yaml:"ac"`
	StrengthMin   int         `yaml:"strengthMin"`
	StealthDisadv bool        `yaml:"stealthDisadvantage"`
}

// Common implements Definition.
func (a *ArmorDef) Common() Common {
	return Common{ID: a.ID, Name: a.Name, Description: a.Description, Type: TypeArmor, Weight: a.Weight, Cost: a.Cost, Rarity: a.Rarity}
}

// IsShield reports whether the definition is a shield rather than worn armor.
func (a *ArmorDef) IsShield() bool { return a.Bucket == Shield }

// Validate checks the armor definition for consistency.
func (a *ArmorDef) Validate() error {
	var violations []string
	if a.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if a.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	switch a.Bucket {
	case LightArmor, MediumArmor, HeavyArmor, Shield:
	default:
		violations = append(violations, fmt.Sprintf("unknown bucket %q", a.Bucket))
	}
	if a.AC <= 0 {
		violations = append(violations, "ac must be positive")
	}
	if a.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: ArmorDef.Validate: armor %q: %s", a.ID, strings.Join(violations, "; "))
	}
	return nil
}
