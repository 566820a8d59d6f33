package main

import (
	"fmt"

	"docmill/internal/datapkg"

	"github.com/spf13/cobra"
)

var (
	schemaGlob      string
	schemaSubSchema string
	schemaLevel     string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Document data-package fields as a markdown table",
	Long: `Load the data-package descriptor, optionally drill into a sub-schema, and
emit a markdown table of its fields. --include controls which requirement
tiers appear: required, recommended (required plus recommended), or all.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := datapkg.ParseLevel(schemaLevel)
		if err != nil {
			return err
		}

		pkg, err := loadPackage()
		if err != nil {
			return err
		}
		if err := pkg.Resolve(schemaSubSchema); err != nil {
			return err
		}

		table, err := pkg.FieldTable(level)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}

// loadPackage resolves the descriptor glob from the flag, falling back to the
// configured default.
func loadPackage() (*datapkg.Package, error) {
	glob := schemaGlob
	if glob == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		glob = cfg.Schema.PackageGlob
	}
	return datapkg.Load(glob)
}

// addSchemaFlags registers the descriptor-locating flags shared with validate.
func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&schemaGlob, "package", "", "Glob for the data-package descriptor (default from config)")
}

func init() {
	addSchemaFlags(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaSubSchema, "sub-schema", "", "Drill into this property or $defs entry")
	schemaCmd.Flags().StringVar(&schemaLevel, "include", "recommended", "Requirement tiers to document: required, recommended, or all")
	rootCmd.AddCommand(schemaCmd)
}
