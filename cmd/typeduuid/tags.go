package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/typeduuid/typeduuid"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the kind manifest",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKinds(cmd.Context()); err != nil {
			return err
		}
		kinds := typeduuid.DefaultRegistry().Kinds()
		if len(kinds) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no kinds registered")
			return nil
		}
		for _, k := range kinds {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s\n", k.Tag(), k.Name())
		}
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <name> <tag>",
	Short: "Register a kind and persist it to the manifest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := loadKinds(ctx); err != nil {
			return err
		}

		k, err := typeduuid.Register(args[0], args[1])
		if err != nil {
			return err
		}

		m := currentManifest()
		if err := os.MkdirAll(filepath.Dir(m.Path()), 0o755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
		if err := m.Save(ctx, typeduuid.DefaultRegistry()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s) in %s\n", k.Name(), k.Tag(), m.Path())
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsAddCmd)
}
