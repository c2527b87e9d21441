package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all characters, most recently modified first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		roster := mgr.List()
		if len(roster) == 0 {
			fmt.Println("no characters yet; run 'charsheet create'")
			return nil
		}
		for _, s := range roster {
			modified := time.UnixMilli(s.LastModified).Format("2006-01-02 15:04")
			fmt.Printf("%s  %-24s level %2d %-12s %s\n", s.ID, s.Name, s.Level, s.Class, modified)
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new character with default starting values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		c, err := mgr.Create(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", c.Profile.Name, c.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Delete a character and its persisted record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := mgr.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}
