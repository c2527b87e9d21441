package catalog

// SkillDef binds a skill to its governing ability.
type SkillDef struct {
	Key     string
	Label   string
	Ability AbilityKey
}

// Skills lists the eighteen skills in alphabetical display order.
var Skills = []SkillDef{
	{Key: "acrobatics", Label: "Acrobatics", Ability: Dexterity},
	{Key: "animal_handling", Label: "Animal Handling", Ability: Wisdom},
	{Key: "arcana", Label: "Arcana", Ability: Intelligence},
	{Key: "athletics", Label: "Athletics", Ability: Strength},
	{Key: "deception", Label: "Deception", Ability: Charisma},
	{Key: "history", Label: "History", Ability: Intelligence},
	{Key: "insight", Label: "Insight", Ability: Wisdom},
	{Key: "intimidation", Label: "Intimidation", Ability: Charisma},
	{Key: "investigation", Label: "Investigation", Ability: Intelligence},
	{Key: "medicine", Label: "Medicine", Ability: Wisdom},
	{Key: "nature", Label: "Nature", Ability: Intelligence},
	{Key: "perception", Label: "Perception", Ability: Wisdom},
	{Key: "performance", Label: "Performance", Ability: Charisma},
	{Key: "persuasion", Label: "Persuasion", Ability: Charisma},
	{Key: "religion", Label: "Religion", Ability: Intelligence},
	{Key: "sleight_of_hand", Label: "Sleight of Hand", Ability: Dexterity},
	{Key: "stealth", Label: "Stealth", Ability: Dexterity},
	{Key: "survival", Label: "Survival", Ability: Wisdom},
}

// SkillByKey returns the SkillDef for key and whether it exists.
func SkillByKey(key string) (SkillDef, bool) {
	for _, s := range Skills {
		if s.Key == key {
			return s, true
		}
	}
	return SkillDef{}, false
}

// DamageTypes maps damage type keys to display labels.
var DamageTypes = map[string]string{
	"acid":        "Acid",
	"bludgeoning": "Bludgeoning",
	"damage_none": "None",
	"cold":        "Cold",
	"fire":        "Fire",
	"force":       "Force",
	"lightning":   "Lightning",
	"necrotic":    "Necrotic",
	"piercing":    "Piercing",
	"poison":      "Poison",
	"psychic":     "Psychic",
	"radiant":     "Radiant",
	"slashing":    "Slashing",
	"thunder":     "Thunder",
}

// Weapon proficiency selections a character can hold. A family proficiency
// covers every weapon whose category starts with it.
const (
	ProficiencySimpleWeapons  = "simple"
	ProficiencyMartialWeapons = "martial"
)

// Armor proficiency selections mirror the armor buckets.
const (
	ProficiencyLightArmor  = "light"
	ProficiencyMediumArmor = "medium"
	ProficiencyHeavyArmor  = "heavy"
	ProficiencyShields     = "shield"
)

// ArmorProficiencyFor maps an armor bucket to the proficiency that covers it.
func ArmorProficiencyFor(bucket ArmorBucket) string {
	switch bucket {
	case LightArmor:
		return ProficiencyLightArmor
	case MediumArmor:
		return ProficiencyMediumArmor
	case HeavyArmor:
		return ProficiencyHeavyArmor
	case Shield:
		return ProficiencyShields
	default:
		return ""
	}
}
