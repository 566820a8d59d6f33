package main

import (
	"docmill/internal/include"
	"docmill/internal/markdown"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Render a transformed file as HTML",
	Long: `Apply the include transforms to a markdown file and render the result to
HTML, for checking what the site will show without a full site build.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		inc := include.NewIncluder(cfg, ".")
		text, err := inc.File(args[0], includeOptions())
		if err != nil {
			return err
		}

		html, err := markdown.ToHTML(text)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(html)
		return err
	},
}

func init() {
	addIncludeFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}
