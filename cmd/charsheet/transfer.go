package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export <character-id>",
	Short: "Export a character as an indented JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		data, filename, err := mgr.Export(args[0])
		if err != nil {
			return err
		}
		path := filepath.Join(exportDir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("exported to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported character under a fresh identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, logger, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer logger.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %q: %w", args[0], err)
		}
		c, err := mgr.Import(cmd.Context(), data)
		if err != nil {
			return err
		}
		fmt.Printf("imported %s as %s\n", c.Profile.Name, c.ID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "directory to write the export into")
}
