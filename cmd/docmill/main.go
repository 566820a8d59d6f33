package main

import (
	"fmt"
	"os"

	"docmill/internal/config"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "docmill",
		Short: "Build-time text transforms for the documentation site",
		Long: `docmill prepares markdown for the documentation site: it splices files
into pages, filters sections by title, renders changelog listings, and
documents data-package schemas as field tables. Output goes to stdout so the
site build can capture it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the docmill config file (default docmill.yaml)")
}

// loadConfig reads the shared config for whichever subcommand is running.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
