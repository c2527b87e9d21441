package catalog

import (
	"fmt"
	"strings"
)

// SpellDef is a spell entry in the catalog. Level 0 denotes a cantrip.
type SpellDef struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Level         int    `yaml:"level"`
	School        string `yaml:"school"`
	CastingTime   string `yaml:"castingTime"`
	Range         string `yaml:"range"`
	Components    string `yaml:"components"`
	Duration      string `yaml:"duration"`
	Description   string `yaml:"description"`
	Concentration bool   `yaml:"concentration"`
	Ritual        bool   `yaml:"ritual"`
}

// IsCantrip reports whether the spell is a cantrip.
func (s *SpellDef) IsCantrip() bool { return s.Level == 0 }

// Validate checks the spell definition for consistency.
func (s *SpellDef) Validate() error {
	var violations []string
	if s.ID == "" {
		violations = append(violations, "id must not be empty")
	}
	if s.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if s.Level < 0 || s.Level > 9 {
		violations = append(violations, fmt.Sprintf("level %d out of range [0, 9]", s.Level))
	}
	if s.School == "" {
		violations = append(violations, "school must not be empty")
	}
	if len(violations) > 0 {
		return fmt.Errorf("catalog: SpellDef.Validate: spell %q: %s", s.ID, strings.Join(violations, "; "))
	}
	return nil
}
