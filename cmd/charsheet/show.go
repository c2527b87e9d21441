package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/game/combat"
	"github.com/cory-johannsen/charsheet/internal/game/inventory"
	"github.com/cory-johannsen/charsheet/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Show a character sheet with all derived values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		c := mgr.Get(args[0])
		if c == nil {
			return fmt.Errorf("character %q: %w", args[0], storage.ErrNotFound)
		}
		s, err := mgr.Open(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — level %d %s %s\n", c.Profile.Name, c.Profile.Level, c.Profile.Race, c.Profile.Class)
		fmt.Printf("XP %d", c.Profile.XP)
		if remaining := character.XPToNextLevel(c.Profile.XP); remaining > 0 {
			fmt.Printf(" (%d to next level)", remaining)
		}
		fmt.Println()
		fmt.Println()

		fmt.Printf("STR %2d  DEX %2d  CON %2d  INT %2d  WIS %2d  CHA %2d\n",
			c.Stats.STR, c.Stats.DEX, c.Stats.CON, c.Stats.INT, c.Stats.WIS, c.Stats.CHA)
		fmt.Printf("AC %d   Initiative %s   Speed %d ft   Proficiency %s\n",
			combat.ArmorClass(c),
			combat.FormatModifier(combat.Initiative(c)),
			c.Combat.Speed,
			combat.FormatModifier(combat.ProficiencyBonus(c.Profile.Level)))
		fmt.Printf("HP %d/%d", c.Combat.HPCurrent, c.Combat.HPMax)
		if c.Combat.TempHP > 0 {
			fmt.Printf(" (+%d temp)", c.Combat.TempHP)
		}
		fmt.Printf("   Passive Perception %d\n", combat.PassivePerception(c))
		if combat.WearingNonProficientArmor(c) {
			fmt.Println("warning: wearing armor without proficiency")
		}
		fmt.Println()

		fmt.Println("Saving throws:")
		for _, st := range combat.SavingThrows(c) {
			marker := " "
			if st.Proficient {
				marker = "*"
			}
			fmt.Printf("  %s %s %s\n", marker, strings.ToUpper(string(st.Ability)), st.Display)
		}
		fmt.Println()

		fmt.Println("Skills:")
		for _, sk := range combat.Skills(c) {
			marker := " "
			if sk.Proficient {
				marker = "*"
			}
			fmt.Printf("  %s %-16s %s\n", marker, sk.Label, sk.Display)
		}
		fmt.Println()

		fmt.Println("Attacks:")
		for _, a := range combat.VisibleAttacks(c) {
			line := fmt.Sprintf("  %-34s hit %-4s %s", a.Name, a.Hit, a.Damage)
			if a.NeedsAmmo {
				line += fmt.Sprintf("  [%d %s]", a.AmmoCount, a.AmmoType)
			}
			if a.Range != "" {
				line += fmt.Sprintf("  range %s", a.Range)
			}
			fmt.Println(line)
		}
		fmt.Println()

		total := inventory.TotalCarriedWeight(c.Inventory)
		capacity := inventory.CarryingCapacity(c.Stats.STR)
		fmt.Printf("Carried weight: %.2f / %d lb across %d items\n",
			total, capacity, len(c.Inventory))

		groups := combat.SpellbookGroups(s.Registry(), c)
		if len(groups) > 0 {
			fmt.Println()
			fmt.Println("Spells:")
			for _, g := range groups {
				if g.HasSlots {
					fmt.Printf("  %s (%d/%d slots):", g.Label, g.SlotCurrent, g.SlotMax)
				} else {
					fmt.Printf("  %s:", g.Label)
				}
				names := make([]string, 0, len(g.Spells))
				for _, sp := range g.Spells {
					names = append(names, sp.Name)
				}
				fmt.Printf(" %s\n", strings.Join(names, ", "))
			}
		}
		return nil
	},
}
