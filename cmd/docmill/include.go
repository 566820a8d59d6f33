package main

import (
	"fmt"

	"docmill/internal/include"

	"github.com/spf13/cobra"
)

var (
	includeStart       int
	includeEnd         int
	includeNoDownshift bool
	includeCodeType    string
)

var includeCmd = &cobra.Command{
	Use:   "include FILE",
	Short: "Splice a file into a page",
	Long: `Read a file and emit it ready for embedding: headings downshifted one
level, link definitions rewritten from the config map, and the branch
placeholder replaced with the current git branch. A line range limits the
slice; --code wraps the result in a fenced block.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		inc := include.NewIncluder(cfg, ".")
		out, err := inc.File(args[0], includeOptions())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// addIncludeFlags registers the flags shared by every command that splices a
// file, so sections/preview accept the same line-range controls.
func addIncludeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&includeStart, "start", 0, "First line to include (0-based)")
	cmd.Flags().IntVar(&includeEnd, "end", -1, "Line to stop before (-1 = end of file)")
	cmd.Flags().BoolVar(&includeNoDownshift, "no-downshift", false, "Keep heading levels as-is")
}

func includeOptions() include.Options {
	opts := include.DefaultOptions()
	opts.StartLine = includeStart
	opts.EndLine = includeEnd
	opts.DownshiftHeadings = !includeNoDownshift
	opts.CodeType = includeCodeType
	return opts
}

func init() {
	addIncludeFlags(includeCmd)
	includeCmd.Flags().StringVar(&includeCodeType, "code", "", "Wrap output in a fenced code block of this language")
	rootCmd.AddCommand(includeCmd)
}
