package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check the data-package descriptor, and optionally a document against it",
	Long: `Compile the data-package descriptor as a JSON schema. With a FILE argument,
also validate that JSON document against the descriptor, reporting every
failure with its location.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := loadPackage()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if _, err := pkg.Compile(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, okStyle.Render("ok")+dimStyle.Render(" "+pkg.Path))
			return nil
		}

		if err := pkg.ValidateFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, okStyle.Render("ok")+dimStyle.Render(" "+args[0]+" matches "+pkg.Path))
		return nil
	},
}

func init() {
	addSchemaFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
