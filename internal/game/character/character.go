// Package character defines the persisted character record. Everything here
// is authored state; derived figures such as armor class and attack lists are
// computed by the combat package and never stored.
package character

import (
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/game/currency"
	"github.com/cory-johannsen/charsheet/internal/game/item"
)

// SpellLevels is the number of spell levels tracked, cantrips included.
const SpellLevels = 10

// AbilityScores holds the six raw ability scores.
type AbilityScores struct {
	STR int `json:"str"`
	DEX int `json:"dex"`
	CON int `json:"con"`
	INT int `json:"int"`
	WIS int `json:"wis"`
	CHA int `json:"cha"`
}

// Get returns the score for the given ability key, or 0 for an unknown key.
func (a AbilityScores) Get(key catalog.AbilityKey) int {
	switch key {
	case catalog.Strength:
		return a.STR
	case catalog.Dexterity:
		return a.DEX
	case catalog.Constitution:
		return a.CON
	case catalog.Intelligence:
		return a.INT
	case catalog.Wisdom:
		return a.WIS
	case catalog.Charisma:
		return a.CHA
	default:
		return 0
	}
}

// Set overwrites the score for the given ability key.
func (a *AbilityScores) Set(key catalog.AbilityKey, value int) {
	switch key {
	case catalog.Strength:
		a.STR = value
	case catalog.Dexterity:
		a.DEX = value
	case catalog.Constitution:
		a.CON = value
	case catalog.Intelligence:
		a.INT = value
	case catalog.Wisdom:
		a.WIS = value
	case catalog.Charisma:
		a.CHA = value
	}
}

// Profile carries identity and progression.
type Profile struct {
	Name       string `json:"name"`
	PlayerName string `json:"playerName,omitempty"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Background string `json:"background,omitempty"`
	Alignment  string `json:"alignment,omitempty"`
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// Bio holds free-text character detail.
type Bio struct {
	Age    string `json:"age"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Skin   string `json:"skin"`
	Hair   string `json:"hair"`

	PersonalityTraits string `json:"personalityTraits"`
	Ideals            string `json:"ideals"`
	Bonds             string `json:"bonds"`
	Flaws             string `json:"flaws"`

	Backstory     string `json:"backstory"`
	FeatureText   string `json:"featureText"`
	TreasureNotes string `json:"treasureNotes"`
}

// DeathSaves tracks accumulated death saving throw results, 0 to 3 each.
type DeathSaves struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// CombatStats holds authored combat state.
type CombatStats struct {
	HPCurrent int `json:"hpCurrent"`
	HPMax     int `json:"hpMax"`
	TempHP    int `json:"tempHp"`

	HitDiceCurrent int `json:"hitDiceCurrent"`
	HitDiceMax     int `json:"hitDiceMax"`

	Speed      int `json:"speed"`
	Exhaustion int `json:"exhaustion"`

	Inspiration []bool `json:"inspiration"`
	Conditions  string `json:"conditions"`

	DeathSaves DeathSaves `json:"deathSaves"`
}

// Proficiencies lists what the character is trained with. Armor and weapon
// entries are fixed keys; tools and languages are free text.
type Proficiencies struct {
	Armor     []string `json:"armor"`
	Weapons   []string `json:"weapons"`
	Tools     []string `json:"tools"`
	Languages []string `json:"languages"`
}

// SlotPool tracks spell slots per level, index 0 unused for slots.
type SlotPool struct {
	Current []int `json:"current"`
	Max     []int `json:"max"`
}

// PactSlots tracks warlock pact magic separately from regular slots.
type PactSlots struct {
	Level   int `json:"level"`
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Spellbook holds the character's spell state. Save DC and attack modifier
// are authored rather than derived so multiclass casters stay representable.
type Spellbook struct {
	SpellcastingAbility catalog.AbilityKey `json:"spellcastingAbility"`
	SpellSaveDC         int                `json:"spellSaveDC"`
	SpellAttackMod      int                `json:"spellAttackMod"`

	Slots     SlotPool   `json:"slots"`
	PactSlots *PactSlots `json:"pactSlots,omitempty"`

	Known    []string `json:"known"`
	Prepared []string `json:"prepared"`
}

// Character is the complete persisted record.
type Character struct {
	ID           string `json:"id"`
	LastModified int64  `json:"lastModified"`

	Profile Profile       `json:"profile"`
	Stats   AbilityScores `json:"stats"`
	Combat  CombatStats   `json:"combat"`
	Bio     Bio           `json:"bio"`

	Inventory   []*item.Item    `json:"inventory"`
	EquippedIDs []string        `json:"equippedIds"`
	Wallet      currency.Wallet `json:"wallet"`

	SkillProficiencies map[string]bool             `json:"skillProficiencies"`
	SavingThrows       map[catalog.AbilityKey]bool `json:"savingThrows"`

	HiddenAttacks []string `json:"hiddenAttacks"`

	Proficiencies Proficiencies `json:"proficiencies"`
	Spells        Spellbook     `json:"spells"`
}

// New returns a fresh level 1 character with standard starting values.
//
// Postcondition: the record passes Normalize unchanged.
func New() *Character {
	c := &Character{
		ID:           uuid.New().String(),
		LastModified: time.Now().UnixMilli(),
		Profile: Profile{
			Name:  "New Character",
			Race:  "Human",
			Class: "Fighter",
			Level: 1,
			XP:    0,
		},
		Stats: AbilityScores{STR: 10, DEX: 10, CON: 10, INT: 10, WIS: 10, CHA: 10},
		Combat: CombatStats{
			HPCurrent:      10,
			HPMax:          10,
			HitDiceCurrent: 1,
			HitDiceMax:     1,
			Speed:          30,
			Inspiration:    []bool{false, false, false},
		},
	}
	c.Normalize()
	return c
}

// Touch refreshes the last-modified timestamp.
func (c *Character) Touch() {
	c.LastModified = time.Now().UnixMilli()
}

// IsEquipped reports whether the item instance is in the equipped set.
func (c *Character) IsEquipped(instanceID string) bool {
	for _, id := range c.EquippedIDs {
		if id == instanceID {
			return true
		}
	}
	return false
}

// Item returns the inventory item with the given instance ID, or nil.
func (c *Character) Item(instanceID string) *item.Item {
	for _, it := range c.Inventory {
		if it.InstanceID == instanceID {
			return it
		}
	}
	return nil
}

// Normalize fills in any structure missing from records written by older
// versions. Loading a character always runs through here before use.
func (c *Character) Normalize() {
	if c.Inventory == nil {
		c.Inventory = []*item.Item{}
	}
	if c.EquippedIDs == nil {
		c.EquippedIDs = []string{}
	}
	if c.HiddenAttacks == nil {
		c.HiddenAttacks = []string{}
	}
	if c.SkillProficiencies == nil {
		c.SkillProficiencies = map[string]bool{}
	}
	if c.SavingThrows == nil {
		c.SavingThrows = map[catalog.AbilityKey]bool{}
	}
	for _, k := range catalog.AbilityKeys() {
		if _, ok := c.SavingThrows[k]; !ok {
			c.SavingThrows[k] = false
		}
	}

	if c.Proficiencies.Armor == nil {
		c.Proficiencies.Armor = []string{}
	}
	if c.Proficiencies.Weapons == nil {
		c.Proficiencies.Weapons = []string{}
	}
	if c.Proficiencies.Tools == nil {
		c.Proficiencies.Tools = []string{}
	}
	if c.Proficiencies.Languages == nil {
		c.Proficiencies.Languages = []string{}
	}

	if c.Combat.Inspiration == nil {
		c.Combat.Inspiration = []bool{false, false, false}
	}
	if c.Profile.Level < 1 {
		c.Profile.Level = 1
	}

	if c.Spells.SpellcastingAbility == "" {
		c.Spells.SpellcastingAbility = catalog.Intelligence
		c.Spells.SpellSaveDC = 10
		c.Spells.SpellAttackMod = 2
	}
	c.Spells.Slots.Current = padSlots(c.Spells.Slots.Current)
	c.Spells.Slots.Max = padSlots(c.Spells.Slots.Max)
	if c.Spells.PactSlots == nil {
		c.Spells.PactSlots = &PactSlots{Level: 1}
	}
	if c.Spells.Known == nil {
		c.Spells.Known = []string{}
	}
	if c.Spells.Prepared == nil {
		c.Spells.Prepared = []string{}
	}
}

func padSlots(s []int) []int {
	if len(s) >= SpellLevels {
		return s[:SpellLevels]
	}
	out := make([]int, SpellLevels)
	copy(out, s)
	return out
}
