package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bianoble/file-renamer/internal/config"
	"github.com/bianoble/file-renamer/internal/sandbox"
)

var initForce bool

// initTemplate is the default renamer.yaml scaffold. Every section is
// optional and commented out except the version.
const initTemplate = `# file-renamer configuration
# Settings here apply to runs in this directory. CLI flags take precedence.
version: 1

# Default rules for 'file-renamer batch'.
# batch:
#   find: "IMG_"
#   replace: "photo_"
#   prefix: ""
#   suffix: ""
#   remove_from_start: 0
#   remove_from_end: 0
#   numbering: true
#   number_position: end     # start or end
#   number_format: "000"     # zero padding template
#   number_start: 1
#   number_separator: "_"

# Saved pairs for 'file-renamer pair' when no arguments are given.
# pairs:
#   - target: IMG_01.png
#     source: vacation_01.jpg

# listing:
#   include_hidden: false

# Where completed renames are recorded, relative to this directory.
# journal: .file-renamer-journal.yaml

# Compare names ignoring case. Default: on for Windows and macOS.
# case_insensitive: true
`

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Create a starter renamer.yaml configuration",
	Long: `Creates a renamer.yaml file in DIR (default: the current directory) with a
commented template of every setting. --config writes to another path instead.

Use --force to overwrite an existing configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args)
		if err != nil {
			return err
		}
		outPath := configPath
		if outPath == "" {
			outPath = config.ProjectPath(dir)
		}

		if !initForce {
			if exists, _ := afero.Exists(osFs, outPath); exists {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := sandbox.SafeWrite(osFs, outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the file to set default batch rules or saved pairs")
		info("  2. Run 'file-renamer batch %s --dry-run' to preview a plan", dir)
		info("  3. Drop --dry-run to apply it")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
