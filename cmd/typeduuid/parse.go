package main

import (
	"fmt"

	"github.com/arthur-debert/typeduuid/typeduuid"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <identifier>",
	Short: "Parse an identifier in canonical or short form",
	Long:  "Auto-detects the form, resolves the tag against the kind manifest, and prints every representation of the identifier.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKinds(cmd.Context()); err != nil {
			return err
		}

		id, err := typeduuid.Parse(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if k, ok := id.Kind(); ok {
			fmt.Fprintf(out, "kind:      %s\n", k.Name())
		}
		fmt.Fprintf(out, "tag:       %s\n", id.Tag())
		fmt.Fprintf(out, "uuid:      %s\n", id.UUID())
		fmt.Fprintf(out, "canonical: %s\n", id.String())
		fmt.Fprintf(out, "short:     %s\n", id.Short())
		return nil
	},
}
