package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath  string
	journalPath string
	noJournal   bool
	noInherit   bool
	assumeYes   bool
	verbose     bool
	quiet       bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "file-renamer",
	Short: "Plan and apply bulk file renames",
	Long: `file-renamer renames the files of one directory in bulk. Every run first
builds a plan: the renames it would perform and the conflicts it refuses to
perform (duplicate names, invalid names, collisions with files that stay).
Nothing is renamed until the plan is confirmed.

Two workflows are available:
  pair    give target files the base names of source files, keeping extensions
  batch   apply find/replace, prefix/suffix, trimming and numbering to a file list`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "file-renamer %s\n", version)
		fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		fmt.Fprintf(stdout, "  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: <dir>/renamer.yaml)")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "path to the rename journal (default: <dir>/.file-renamer-journal.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "do not record completed renames")
	rootCmd.PersistentFlags().BoolVar(&noInherit, "no-inherit", false, "ignore system and user config files")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "apply the plan without asking")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorf("%v", err)
		return err
	}
	return nil
}
