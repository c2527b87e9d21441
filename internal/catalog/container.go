package catalog

import (
	"fmt"
	"strings"
)

// ContainerDef is a template for an item that can hold other items.
type ContainerDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Cost        *Cost   `yaml:"cost"`
	Rarity      string  `yaml:"rarity"`
	Capacity    string  `yaml:"capacity"`
	// IgnoreContentWeight marks magical containers whose contents do not
	// count against carried weight.
	IgnoreContentWeight bool `yaml:"ignoreContentWeight"`
}

// Common implements Definition.
func (c *ContainerDef) Common() Common {
	return Common{ID: c.ID, Name: c.Name, Description: c.Description, Type: TypeContainer, Weight: c.Weight, Cost: c.Cost, Rarity: c.Rarity}
}

// Validate checks the container definition for consistency.
func (c *ContainerDef) Validate() error {
	var violations []string
	if c.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if c.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if c.Weight < 0 {
		violations = append(violations, "weight must not be negative")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: ContainerDef.Validate: container %q: %s", c.ID, strings.Join(violations, "; "))
	}
	return nil
}

// PackContent names one template and quantity inside an equipment pack.
type PackContent struct {
	TemplateID string `yaml:"templateId"`
	Quantity   int    `yaml:"quantity"`
}

// PackDef is an equipment bundle. Adding a pack to an inventory expands it
// into its container plus contents; the pack itself is never instantiated.
type PackDef struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Cost        *Cost         `yaml:"cost"`
	Rarity      string        `yaml:"rarity"`
	ContainerID string        `yaml:"containerId"`
	Contents    []PackContent `yaml:"contents"`
}

// Common implements Definition. A pack carries no weight of its own; the
// instantiated contents do.
func (p *PackDef) Common() Common {
	return Common{ID: p.ID, Name: p.Name, Description: p.Description, Type: TypePack, Weight: 0, Cost: p.Cost, Rarity: p.Rarity}
}

// Validate checks the pack definition for consistency. Content template IDs
// are resolved against the registry at load time, not here.
func (p *PackDef) Validate() error {
	var violations []string
	if p.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if p.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if len(p.Contents) == 0 {
		violations = append(violations, "contents must not be empty")
	}
	for i, c := range p.Contents {
		if c.TemplateID == "" {
			violations = append(violations, fmt.Sprintf("content %d: templateId must not be empty", i))
		}
		if c.Quantity <= 0 {
			violations = append(violations, fmt.Sprintf("content %d: quantity must be positive", i))
		}
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: PackDef.Validate: pack %q: %s", p.ID, strings.Join(violations, "; "))
	}
	return nil
}
