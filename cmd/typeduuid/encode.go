package main

import (
	"fmt"

	"github.com/arthur-debert/typeduuid/typeduuid"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <canonical>",
	Short: "Convert a canonical identifier to its short form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKinds(cmd.Context()); err != nil {
			return err
		}
		id, err := typeduuid.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id.Short())
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <short>",
	Short: "Convert a short identifier to its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKinds(cmd.Context()); err != nil {
			return err
		}
		id, err := typeduuid.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return nil
	},
}
