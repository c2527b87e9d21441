// Package catalog holds the static game-data library: item templates, spell
// definitions, and rule tables. All data is immutable after loading; the rest
// of the engine consults it by template ID.
package catalog

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/charsheet/internal/game/currency"
)

// ErrNotFound is returned when a template or spell ID is absent from the catalog.
var ErrNotFound = errors.New("catalog: not found")

// ItemType classifies a catalog definition.
type ItemType string

const (
	TypeWeapon     ItemType = "weapon"
	TypeArmor      ItemType = "armor"
	TypeGear       ItemType = "gear"
	TypeTool       ItemType = "tool"
	TypeConsumable ItemType = "consumable"
	TypeTreasure   ItemType = "treasure"
	TypeContainer  ItemType = "container"
	TypePack       ItemType = "pack"
)

// AbilityKey names one of the six ability scores.
type AbilityKey string

const (
	Strength     AbilityKey = "str"
	Dexterity    AbilityKey = "dex"
	Constitution AbilityKey = "con"
	Intelligence AbilityKey = "int"
	Wisdom       AbilityKey = "wis"
	Charisma     AbilityKey = "cha"
)

// AbilityKeys returns the six ability keys in conventional order.
func AbilityKeys() []AbilityKey {
	return []AbilityKey{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}
}

// Cost is a price in a single denomination.
type Cost struct {
	Value int           `yaml:"value" json:"value"`
	Unit  currency.Unit `yaml:"unit" json:"unit"`
}

// String renders the cost for display, or "--" for a nil receiver.
func (c *Cost) String() string {
	if c == nil {
		return "--"
	}
	return currency.FormatCost(c.Value, c.Unit)
}

// BaseValue returns the cost in copper, for price comparisons.
func (c *Cost) BaseValue() int {
	if c == nil {
		return 0
	}
	rate, ok := currency.Rate(c.Unit)
	if !ok {
		rate = 1
	}
	return c.Value * rate
}

// Common is the subtype-independent slice of an item definition, snapshotted
// onto every instantiated inventory item.
type Common struct {
	ID          string
	Name        string
	Description string
	Type        ItemType
	Weight      float64
	Cost        *Cost
	Rarity      string
}

// Definition is implemented by every item template subtype.
type Definition interface {
	// Common returns the subtype-independent fields.
	Common() Common
}

// Registry holds all loaded definitions indexed by ID.
type Registry struct {
	weapons     map[string]*WeaponDef
	armors      map[string]*ArmorDef
	gear        map[string]*GearDef
	tools       map[string]*ToolDef
	consumables map[string]*ConsumableDef
	treasures   map[string]*TreasureDef
	containers  map[string]*ContainerDef
	packs       map[string]*PackDef
	spells      map[string]*SpellDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons:     make(map[string]*WeaponDef),
		armors:      make(map[string]*ArmorDef),
		gear:        make(map[string]*GearDef),
		tools:       make(map[string]*ToolDef),
		consumables: make(map[string]*ConsumableDef),
		treasures:   make(map[string]*TreasureDef),
		containers:  make(map[string]*ContainerDef),
		packs:       make(map[string]*PackDef),
		spells:      make(map[string]*SpellDef),
	}
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
func (r *Registry) RegisterArmor(a *ArmorDef) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterGear adds g to the registry.
func (r *Registry) RegisterGear(g *GearDef) error {
	if _, exists := r.gear[g.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterGear: gear ID %q already registered", g.ID)
	}
	r.gear[g.ID] = g
	return nil
}

// RegisterTool adds d to the registry.
func (r *Registry) RegisterTool(d *ToolDef) error {
	if _, exists := r.tools[d.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterTool: tool ID %q already registered", d.ID)
	}
	r.tools[d.ID] = d
	return nil
}

// RegisterConsumable adds c to the registry.
func (r *Registry) RegisterConsumable(c *ConsumableDef) error {
	if _, exists := r.consumables[c.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterConsumable: consumable ID %q already registered", c.ID)
	}
	r.consumables[c.ID] = c
	return nil
}

// RegisterTreasure adds d to the registry.
func (r *Registry) RegisterTreasure(d *TreasureDef) error {
	if _, exists := r.treasures[d.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterTreasure: treasure ID %q already registered", d.ID)
	}
	r.treasures[d.ID] = d
	return nil
}

// RegisterContainer adds c to the registry.
func (r *Registry) RegisterContainer(c *ContainerDef) error {
	if _, exists := r.containers[c.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterContainer: container ID %q already registered", c.ID)
	}
	r.containers[c.ID] = c
	return nil
}

// RegisterPack adds p to the registry.
func (r *Registry) RegisterPack(p *PackDef) error {
	if _, exists := r.packs[p.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterPack: pack ID %q already registered", p.ID)
	}
	r.packs[p.ID] = p
	return nil
}

// RegisterSpell adds s to the registry.
func (r *Registry) RegisterSpell(s *SpellDef) error {
	if _, exists := r.spells[s.ID]; exists {
		return fmt.Errorf("catalog: Registry.RegisterSpell: spell ID %q already registered", s.ID)
	}
	r.spells[s.ID] = s
	return nil
}

// Weapon returns the WeaponDef for the given id, or nil if not found.
func (r *Registry) Weapon(id string) *WeaponDef { return r.weapons[id] }

// Armor returns the ArmorDef for the given id, or nil if not found.
func (r *Registry) Armor(id string) *ArmorDef { return r.armors[id] }

// Gear returns the GearDef for the given id, or nil if not found.
func (r *Registry) Gear(id string) *GearDef { return r.gear[id] }

// Tool returns the ToolDef for the given id, or nil if not found.
func (r *Registry) Tool(id string) *ToolDef { return r.tools[id] }

// Consumable returns the ConsumableDef for the given id, or nil if not found.
func (r *Registry) Consumable(id string) *ConsumableDef { return r.consumables[id] }

// Treasure returns the TreasureDef for the given id, or nil if not found.
func (r *Registry) Treasure(id string) *TreasureDef { return r.treasures[id] }

// Container returns the ContainerDef for the given id, or nil if not found.
func (r *Registry) Container(id string) *ContainerDef { return r.containers[id] }

// Pack returns the PackDef for the given id, or nil if not found.
func (r *Registry) Pack(id string) *PackDef { return r.packs[id] }

// Spell returns the SpellDef for the given id and whether it was found.
func (r *Registry) Spell(id string) (*SpellDef, bool) {
	s, ok := r.spells[id]
	return s, ok
}

// Find looks up an item template by ID across every subtype.
//
// Postcondition: ok is true iff the id is registered as an item template.
// Spells are not item templates and are never returned by Find.
func (r *Registry) Find(id string) (Definition, bool) {
	if d, ok := r.weapons[id]; ok {
		return d, true
	}
	if d, ok := r.armors[id]; ok {
		return d, true
	}
	if d, ok := r.gear[id]; ok {
		return d, true
	}
	if d, ok := r.tools[id]; ok {
		return d, true
	}
	if d, ok := r.consumables[id]; ok {
		return d, true
	}
	if d, ok := r.treasures[id]; ok {
		return d, true
	}
	if d, ok := r.containers[id]; ok {
		return d, true
	}
	if d, ok := r.packs[id]; ok {
		return d, true
	}
	return nil, false
}

// AllSpells returns all registered spells in unspecified order.
func (r *Registry) AllSpells() []*SpellDef {
	out := make([]*SpellDef, 0, len(r.spells))
	for _, s := range r.spells {
		out = append(out, s)
	}
	return out
}
