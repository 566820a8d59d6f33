package main

import (
	"fmt"
	"os"

	"docmill/internal/gitinfo"

	"github.com/spf13/cobra"
)

var changedBase string

var changedCmd = &cobra.Command{
	Use:   "changed",
	Short: "List documentation pages changed since a git ref",
	Long: `Diff the working tree against a base ref and list the markdown files under
the docs directory that changed, so the site build can rebuild only the
affected pages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		docs, err := gitinfo.ChangedDocs(changedBase, cfg.Site.DocsDir)
		if err != nil {
			return err
		}

		if len(docs) == 0 {
			fmt.Fprintln(os.Stderr, dimStyle.Render("no docs changed since "+changedBase))
			return nil
		}

		for _, doc := range docs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", doc.Path, doc.ChangedLines)
		}
		return nil
	},
}

func init() {
	changedCmd.Flags().StringVar(&changedBase, "base", "HEAD", "Base git ref to diff against")
	rootCmd.AddCommand(changedCmd)
}
