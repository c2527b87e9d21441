package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

func decodeFile(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: decodeFile: reading %q: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog: decodeFile: parsing %q: %w", name, err)
	}
	return nil
}

// Load builds a Registry from the embedded catalog data files.
//
// Postcondition: every definition in the returned registry passed Validate,
// and every pack content resolves to a registered template.
func Load() (*Registry, error) {
	r := NewRegistry()

	var weapons []*WeaponDef
	if err := decodeFile("data/weapons.yaml", &weapons); err != nil {
		return nil, err
	}
	for _, w := range weapons {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterWeapon(w); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var armors []*ArmorDef
	if err := decodeFile("data/armors.yaml", &armors); err != nil {
		return nil, err
	}
	for _, a := range armors {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterArmor(a); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var gear []*GearDef
	if err := decodeFile("data/gear.yaml", &gear); err != nil {
		return nil, err
	}
	for _, g := range gear {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterGear(g); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var tools []*ToolDef
	if err := decodeFile("data/tools.yaml", &tools); err != nil {
		return nil, err
	}
	for _, t := range tools {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterTool(t); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var consumables []*ConsumableDef
	if err := decodeFile("data/consumables.yaml", &consumables); err != nil {
		return nil, err
	}
	for _, c := range consumables {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterConsumable(c); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var treasures []*TreasureDef
	if err := decodeFile("data/treasures.yaml", &treasures); err != nil {
		return nil, err
	}
	for _, t := range treasures {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterTreasure(t); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var containers []*ContainerDef
	if err := decodeFile("data/containers.yaml", &containers); err != nil {
		return nil, err
	}
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterContainer(c); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var packs []*PackDef
	if err := decodeFile("data/packs.yaml", &packs); err != nil {
		return nil, err
	}
	for _, p := range packs {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterPack(p); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	var spells []*SpellDef
	if err := decodeFile("data/spells.yaml", &spells); err != nil {
		return nil, err
	}
	for _, s := range spells {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
		if err := r.RegisterSpell(s); err != nil {
			return nil, fmt.Errorf("catalog: Load: %w", err)
		}
	}

	if err := r.resolvePacks(); err != nil {
		return nil, err
	}
	return r, nil
}

// resolvePacks verifies that every pack content and container reference names
// a registered template.
func (r *Registry) resolvePacks() error {
	for _, p := range r.packs {
		if p.ContainerID != "" {
			if c := r.Container(p.ContainerID); c == nil {
				return fmt.Errorf("catalog: resolvePacks: pack %q references unknown container %q", p.ID, p.ContainerID)
			}
		}
		for _, content := range p.Contents {
			if _, ok := r.Find(content.TemplateID); !ok {
				return fmt.Errorf("catalog: resolvePacks: pack %q references unknown template %q", p.ID, content.TemplateID)
			}
		}
	}
	return nil
}
