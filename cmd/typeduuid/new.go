package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <tag>",
	Short: "Generate a fresh identifier for a registered tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKinds(cmd.Context()); err != nil {
			return err
		}
		k, err := lookupKind(args[0])
		if err != nil {
			return err
		}

		id, err := k.NewID()
		if err != nil {
			return err
		}
		if shortOutput {
			fmt.Fprintln(cmd.OutOrStdout(), id.Short())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
		}
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVarP(&shortOutput, "short", "s", false, "print the short base62 form")
}
