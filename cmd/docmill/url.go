package main

import (
	"fmt"

	"docmill/internal/include"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url PATH...",
	Short: "Map source paths to the URLs the site serves them at",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			fmt.Fprintln(cmd.OutOrStdout(), include.PageURL(path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}
