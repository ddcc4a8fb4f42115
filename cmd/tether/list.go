package main

import (
	"fmt"

	"github.com/mlegeay/tether/showcase"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available showcase panels",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range showcase.Panels() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", p.Name, p.Brief)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
