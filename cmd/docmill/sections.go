package main

import (
	"fmt"

	"docmill/internal/include"

	"github.com/spf13/cobra"
)

var (
	sectionsInclude []string
	sectionsExclude []string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "Include a file keeping only the named sections",
	Long: `Include a markdown file, keeping only the heading-delimited sections that
pass the include/exclude title filters. Titles match case-insensitively.
Link-reference definitions found anywhere in the file survive filtering and
are re-appended after the kept sections.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		inc := include.NewIncluder(cfg, ".")
		out, err := inc.Sections(args[0], sectionsInclude, sectionsExclude, includeOptions())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	sectionsCmd.Flags().StringArrayVar(&sectionsInclude, "include", nil, "Section title to keep (repeatable; empty keeps all)")
	sectionsCmd.Flags().StringArrayVar(&sectionsExclude, "exclude", nil, "Section title to drop (repeatable)")
	addIncludeFlags(sectionsCmd)
	rootCmd.AddCommand(sectionsCmd)
}
