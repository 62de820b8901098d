package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bianoble/file-renamer/internal/config"
	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/naming"
	"github.com/bianoble/file-renamer/internal/plan"
)

var (
	pairSourceDir string
	pairInOrder   bool
	pairTargetExt string
	pairSourceExt string
)

var pairCmd = &cobra.Command{
	Use:   "pair DIR [TARGET=SOURCE ...]",
	Short: "Give target files the base names of source files",
	Long: `Renames each TARGET file in DIR to the base name of its SOURCE file while
keeping the target's extension: IMG_01.png=vacation_01.jpg renames IMG_01.png
to vacation_01.png.

Pairs come from the arguments, from --in-order, or from the 'pairs' section of
the config. Each target and each source may appear in one pair only; when
a name is repeated the later pair wins.

With --in-order the files of DIR are paired position by position with the
files of --source-dir (default: DIR), both in natural sort order. Use
--target-ext and --source-ext to pick which files take part.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args[:1])
		if err != nil {
			return err
		}
		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}

		pairs, err := collectPairs(dir, args[1:], cfg)
		if err != nil {
			return err
		}
		if pairs.Len() == 0 {
			return fmt.Errorf("no pairs given — pass TARGET=SOURCE arguments, --in-order, or add 'pairs' to %s", config.FileName)
		}

		p, err := newClient(dir, cfg, nil).BuildPlanFromPairs(dir, pairs)
		if err != nil {
			return err
		}
		return review(commandContext(cmd), p, cfg)
	},
}

// collectPairs builds the pair map from arguments, --in-order, or config, in
// that order of preference.
func collectPairs(dir string, args []string, cfg *config.Config) (*plan.PairMap, error) {
	if len(args) > 0 {
		if pairInOrder {
			return nil, fmt.Errorf("TARGET=SOURCE arguments and --in-order are mutually exclusive — use one or the other")
		}
		assignments, err := parseAssignments(args, "TARGET=SOURCE")
		if err != nil {
			return nil, err
		}
		m := &plan.PairMap{}
		for _, a := range assignments {
			m.Set(a[0], a[1])
		}
		return m, nil
	}

	if pairInOrder {
		srcDir := dir
		if pairSourceDir != "" {
			abs, err := filepath.Abs(pairSourceDir)
			if err != nil {
				return nil, fmt.Errorf("resolving source directory: %w", err)
			}
			srcDir = abs
		}
		if srcDir == dir && pairTargetExt == "" && pairSourceExt == "" {
			return nil, fmt.Errorf("--in-order within one directory needs --target-ext or --source-ext to tell targets from sources")
		}

		opts := listing.Options{IncludeHidden: cfg.IncludeHidden()}
		targets, err := listing.List(osFs, dir, opts)
		if err != nil {
			return nil, err
		}
		sources, err := listing.List(osFs, srcDir, opts)
		if err != nil {
			return nil, err
		}

		targetNames := filterExt(listing.Names(targets), pairTargetExt)
		sourceNames := filterExt(listing.Names(sources), pairSourceExt)
		if len(targetNames) != len(sourceNames) {
			info("Pairing %d target(s) with %d source(s); the extra files are left out.", len(targetNames), len(sourceNames))
		}
		return plan.PairInOrder(targetNames, sourceNames), nil
	}

	return plan.NewPairMap(cfg.Pairs), nil
}

// filterExt keeps the names whose extension matches ext, ignoring case and a
// leading dot. Empty ext keeps everything.
func filterExt(names []string, ext string) []string {
	if ext == "" {
		return names
	}
	want := "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	var out []string
	for _, n := range names {
		if _, e := naming.SplitExtension(n); strings.ToLower(e) == want {
			out = append(out, n)
		}
	}
	return out
}

func init() {
	pairCmd.Flags().StringVar(&pairSourceDir, "source-dir", "", "directory holding the source files for --in-order (default: DIR)")
	pairCmd.Flags().BoolVar(&pairInOrder, "in-order", false, "pair target and source files position by position")
	pairCmd.Flags().StringVar(&pairTargetExt, "target-ext", "", "only pair target files with this extension")
	pairCmd.Flags().StringVar(&pairSourceExt, "source-ext", "", "only use source files with this extension")
	addPlanFlags(pairCmd)
	rootCmd.AddCommand(pairCmd)
}
