// Package item models inventory item instances. An Item is a snapshot of a
// catalog template plus per-instance state such as quantity, charges, and the
// container it sits in.
package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/charsheet/internal/catalog"
)

// ErrPackTemplate is returned when a pack ID is passed to New. Packs expand
// into their contents instead of becoming items themselves.
var ErrPackTemplate = errors.New("item: pack templates expand instead of instantiating")

// WeaponData is the combat payload snapshotted from a weapon template.
type WeaponData struct {
	Category      catalog.WeaponCategory `json:"category"`
	Damage        string                 `json:"damage"`
	DamageType    string                 `json:"damageType"`
	Properties    []string               `json:"properties,omitempty"`
	Range         string                 `json:"range,omitempty"`
	VersatileDice string                 `json:"versatileDamage,omitempty"`
	AmmoType      catalog.AmmoType       `json:"ammoType,omitempty"`
}

// HasProperty reports whether the weapon carries the named property.
func (w *WeaponData) HasProperty(name string) bool {
	for _, p := range w.Properties {
		if p == name {
			return true
		}
	}
	return false
}

// ArmorData is the defense payload snapshotted from an armor template.
type ArmorData struct {
	Bucket        catalog.ArmorBucket `json:"bucket"`
	AC            int                 `json:"ac"`
	StrengthMin   int                 `json:"strengthMin,omitempty"`
	StealthDisadv bool                `json:"stealthDisadvantage,omitempty"`
}

// ContainerData is the payload for items that hold other items.
type ContainerData struct {
	Capacity            string `json:"capacity,omitempty"`
	IgnoreContentWeight bool   `json:"ignoreContentWeight,omitempty"`
	IsOpen              bool   `json:"isOpen"`
}

// ConsumableData is the payload for expendables. Charges is per-instance
// state; the rest is snapshotted from the template.
type ConsumableData struct {
	MaxCharges int              `json:"maxCharges"`
	Charges    int              `json:"charges"`
	AmmoType   catalog.AmmoType `json:"ammoType,omitempty"`
	Stackable  bool             `json:"stackable,omitempty"`
}

// ToolData is the payload for tools and kits.
type ToolData struct {
	Kind    string             `json:"kind,omitempty"`
	Ability catalog.AbilityKey `json:"baseAbility,omitempty"`
}

// Payload holds the subtype-specific slice of an item. At most one field is
// set; gear and treasure carry none. Unstructured preserves payload fields
// from records written by older builds that this one has no typed shape for.
type Payload struct {
	Weapon       *WeaponData     `json:"weapon,omitempty"`
	Armor        *ArmorData      `json:"armor,omitempty"`
	Container    *ContainerData  `json:"container,omitempty"`
	Consumable   *ConsumableData `json:"consumable,omitempty"`
	Tool         *ToolData       `json:"tool,omitempty"`
	Unstructured map[string]any  `json:"unstructured,omitempty"`
}

// Item is one entry in a character's inventory.
type Item struct {
	InstanceID  string           `json:"instanceId"`
	TemplateID  string           `json:"templateId"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Type        catalog.ItemType `json:"type"`
	Weight      float64          `json:"weight"`
	Quantity    int              `json:"quantity"`
	// ParentID points at the containing item's InstanceID, or is empty for
	// items carried directly.
	ParentID string  `json:"parentId,omitempty"`
	Data     Payload `json:"data"`
}

// IsContainer reports whether the item can hold other items.
func (i *Item) IsContainer() bool { return i.Data.Container != nil }

// New instantiates the template with the given id from the registry.
//
// Precondition:  reg must not be nil.
// Postcondition: the returned item has a fresh InstanceID, quantity 1, no
// parent, and fully initialised per-instance state (consumable charges at
// maximum, containers open).
func New(reg *catalog.Registry, templateID string) (*Item, error) {
	def, ok := reg.Find(templateID)
	if !ok {
		return nil, fmt.Errorf("item: New: template %q: %w", templateID, catalog.ErrNotFound)
	}

	common := def.Common()
	it := &Item{
		InstanceID:  uuid.New().String(),
		TemplateID:  common.ID,
		Name:        common.Name,
		Description: common.Description,
		Type:        common.Type,
		Weight:      common.Weight,
		Quantity:    1,
	}

	switch d := def.(type) {
	case *catalog.WeaponDef:
		it.Data.Weapon = &WeaponData{
			Category:      d.Category,
			Damage:        d.Damage,
			DamageType:    d.DamageType,
			Properties:    append([]string(nil), d.Properties...),
			Range:         d.Range,
			VersatileDice: d.VersatileDice,
			AmmoType:      d.AmmoType,
		}
	case *catalog.ArmorDef:
		it.Data.Armor = &ArmorData{
			Bucket:        d.Bucket,
			AC:            d.AC,
			StrengthMin:   d.StrengthMin,
			StealthDisadv: d.StealthDisadv,
		}
	case *catalog.ContainerDef:
		it.Data.Container = &ContainerData{
			Capacity:            d.Capacity,
			IgnoreContentWeight: d.IgnoreContentWeight,
			IsOpen:              true,
		}
	case *catalog.ConsumableDef:
		it.Data.Consumable = &ConsumableData{
			MaxCharges: d.MaxCharges,
			Charges:    d.MaxCharges,
			AmmoType:   d.AmmoType,
			Stackable:  d.Stackable,
		}
	case *catalog.ToolDef:
		it.Data.Tool = &ToolData{Kind: d.ToolKind, Ability: d.Ability}
	case *catalog.PackDef:
		return nil, fmt.Errorf("item: New: template %q: %w", templateID, ErrPackTemplate)
	}

	return it, nil
}

// IsRangedWeapon reports whether the item is a weapon that attacks at range.
// Thrown melee weapons keep a range string but remain melee.
func (i *Item) IsRangedWeapon() bool {
	w := i.Data.Weapon
	if w == nil {
		return false
	}
	if w.Category.IsRanged() {
		return true
	}
	for _, r := range w.Range {
		if r == '/' {
			return !w.HasProperty(catalog.PropThrown)
		}
	}
	return false
}
