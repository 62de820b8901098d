package cmd

import (
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list [DIR]",
	Short: "List the files a plan would work on",
	Long: `Lists the regular files of DIR (default: the current directory) in natural
sort order, the order pair --in-order and batch use. Hidden files are skipped
unless --all is given or listing.include_hidden is set in the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}
		if listAll {
			t := true
			cfg.Listing.IncludeHidden = &t
		}

		entries, err := newClient(dir, cfg, nil).GetFilesInDirectory(dir)
		if err != nil {
			return err
		}
		if !quiet {
			renderListing(stdout, dir, entries, currentTheme())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include hidden files")
	rootCmd.AddCommand(listCmd)
}
