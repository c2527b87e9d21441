package catalog

import (
	"fmt"
	"strings"
)

// GearDef is a plain adventuring-gear template with no mechanical payload.
type GearDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Cost        *Cost   `yaml:"cost"`
	Rarity      string  `yaml:"rarity"`
}

// Common implements Definition.
func (g *GearDef) Common() Common {
	return Common{ID: g.ID, Name: g.Name, Description: g.Description, Type: TypeGear, Weight: g.Weight, Cost: g.Cost, Rarity: g.Rarity}
}

// Validate checks the gear definition for consistency.
func (g *GearDef) Validate() error {
	var violations []string
	if g.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if g.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if g.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: GearDef.Validate: gear %q: %s", g.ID, strings.Join(violations, "; "))
	}
	return nil
}

// ToolDef is an artisan tool or kit template. Ability, when set, names the
// ability score that governs checks made with the tool.
type ToolDef struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Weight      float64    `yaml:"weight"`
	Cost        *Cost      `yaml:"cost"`
	Rarity      string     `yaml:"rarity"`
	ToolKind    string     `yaml:"kind"`
	Ability     AbilityKey `yaml:"baseAbility"`
}

// Common implements Definition.
func (t *ToolDef) Common() Common {
	return Common{ID: t.ID, Name: t.Name, Description: t.Description, Type: TypeTool, Weight: t.Weight, Cost: t.Cost, Rarity: t.Rarity}
}

// Validate checks the tool definition for consistency.
func (t *ToolDef) Validate() error {
	var violations []string
	if t.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if t.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if t.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if t.Ability != "" {
		valid := false
		for _, key := range AbilityKeys() {
			if t.Ability == key {
				valid = true
				break
			}
		}
		if !valid {
			violations = append(violations, fmt.Sprintf("baseAbility %q is not an ability key", t.Ability))
		}
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: ToolDef.Validate: tool %q: %s", t.ID, strings.Join(violations, "; "))
	}
	return nil
}

// TreasureDef is a valuable with no mechanical payload beyond its price.
type TreasureDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Cost        *Cost   `yaml:"cost"`
	Rarity      string  `yaml:"rarity"`
}

// Common implements Definition.
func (t *TreasureDef) Common() Common {
	return Common{ID: t.ID, Name: t.Name, Description: t.Description, Type: TypeTreasure, Weight: t.Weight, Cost: t.Cost, Rarity: t.Rarity}
}

// Validate checks the treasure definition for consistency.
func (t *TreasureDef) Validate() error {
	var violations []string
	if t.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if t.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if t.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: TreasureDef.Validate: treasure %q: %s", t.ID, strings.Join(violations, "; "))
	}
	return nil
}
