package main

import (
	"fmt"

	"docmill/internal/actions"
	"docmill/internal/include"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions PATH...",
	Short: "Render a reverse-chronological changelog listing",
	Long: `Read action entries (markdown files with title/date front-matter) from the
given files or directories and render them as collapsible admonitions,
newest first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := include.ListFiles(args, "*.md")
		if len(files) == 0 {
			return fmt.Errorf("no action files found under %v", args)
		}

		acts, err := actions.Load(files)
		if err != nil {
			return err
		}
		actions.Sort(acts)

		fmt.Fprintln(cmd.OutOrStdout(), actions.Render(acts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
