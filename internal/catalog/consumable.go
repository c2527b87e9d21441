package catalog

import (
	"fmt"
	"strings"
)

// ConsumableDef is a template for an expendable item tracked by charges.
type ConsumableDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Cost        *Cost   `yaml:"cost"`
	Rarity      string  `yaml:"rarity"`
	// MaxCharges is the number of uses a fresh instance starts with.
	MaxCharges int `yaml:"maxCharges"`
	// AmmoType is set on ammunition so attack derivation can count it
	// against the matching ranged weapon.
	AmmoType AmmoType `yaml:"ammoType"`
	// Stackable consumables merge into a single inventory entry by
	// quantity instead of spawning one instance per unit.
	Stackable bool `yaml:"stackable"`
}

// Common implements Definition.
func (c *ConsumableDef) Common() Common {
	return Common{ID: c.ID, Name: c.Name, Description: c.Description, Type: TypeConsumable, Weight: c.Weight, Cost: c.Cost, Rarity: c.Rarity}
}

// Validate checks the consumable definition for consistency.
func (c *ConsumableDef) Validate() error {
	var violations []string
	if c.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if c.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if c.MaxCharges <= 0 {
		violations = append(violations, "maxCharges must be positive")
	}
	if c.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: ConsumableDef.Validate: consumable %q: %s", c.ID, strings.Join(violations, "; "))
	}
	return nil
}
