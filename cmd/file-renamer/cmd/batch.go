package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/plan"
)

var (
	batchFlags     plan.BatchParams
	batchOverrides []string
)

var batchCmd = &cobra.Command{
	Use:   "batch DIR [FILE ...]",
	Short: "Apply find/replace, prefix/suffix, trimming and numbering to files",
	Long: `Applies one rule set to FILE... in DIR, in the order given. Without FILE
arguments every visible file of DIR is used, in natural sort order.

Each name is processed with its extension split off:
  1. --trim-end characters are removed, then --trim-start characters
  2. every occurrence of --find is replaced with --replace (literal text)
  3. --prefix is prepended and --suffix appended
  4. with --number, a sequence number is added at the start or end

Numbers count only files that are actually renamed, so they stay contiguous
when some files are skipped as conflicts. --rename OLD=NEW replaces OLD's name
as the input of the rules, for one-off corrections.

Flags override the 'batch' section of the config.`,
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

		params := mergeBatchFlags(cfg.Batch, cmd.Flags())

		files := args[1:]
		if len(files) == 0 {
			entries, err := listing.List(osFs, dir, listing.Options{IncludeHidden: cfg.IncludeHidden()})
			if err != nil {
				return err
			}
			files = listing.Names(entries)
		}

		entries, err := batchEntries(files, batchOverrides)
		if err != nil {
			return err
		}

		p, err := newClient(dir, cfg, nil).BuildPlanFromBatchEntries(dir, entries, params)
		if err != nil {
			return err
		}
		return review(commandContext(cmd), p, cfg)
	},
}

// mergeBatchFlags overlays the flags the user set on the configured params.
func mergeBatchFlags(base plan.BatchParams, flags *pflag.FlagSet) plan.BatchParams {
	p := base
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	set("find", func() { p.Find = batchFlags.Find })
	set("replace", func() { p.Replace = batchFlags.Replace })
	set("prefix", func() { p.Prefix = batchFlags.Prefix })
	set("suffix", func() { p.Suffix = batchFlags.Suffix })
	set("trim-start", func() { p.RemoveFromStart = batchFlags.RemoveFromStart })
	set("trim-end", func() { p.RemoveFromEnd = batchFlags.RemoveFromEnd })
	set("number", func() { p.Numbering = batchFlags.Numbering })
	set("number-position", func() { p.NumberPosition = batchFlags.NumberPosition })
	set("number-format", func() { p.NumberFormat = batchFlags.NumberFormat })
	set("number-start", func() { p.NumberStart = batchFlags.NumberStart })
	set("number-sep", func() { p.NumberSeparator = batchFlags.NumberSeparator })

	// Unset numbering options take the flag defaults, start 1 and "_".
	if p.NumberStart == 0 && !flags.Changed("number-start") {
		p.NumberStart = batchFlags.NumberStart
	}
	if p.NumberSeparator == "" && !flags.Changed("number-sep") {
		p.NumberSeparator = batchFlags.NumberSeparator
	}

	return p
}

// batchEntries pairs each file with its --rename override, if any.
func batchEntries(files, overrides []string) ([]plan.BatchEntry, error) {
	assignments, err := parseAssignments(overrides, "OLD=NEW")
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(assignments))
	for _, a := range assignments {
		byName[a[0]] = a[1]
	}

	entries := make([]plan.BatchEntry, len(files))
	for i, f := range files {
		entries[i] = plan.BatchEntry{Name: f, Override: byName[f]}
		delete(byName, f)
	}
	for _, a := range assignments {
		if _, left := byName[a[0]]; left {
			return nil, fmt.Errorf("--rename %s: not among the files of this batch", a[0])
		}
	}
	return entries, nil
}

type positionValue struct{ p *plan.NumberPosition }

func (v positionValue) String() string     { return string(*v.p) }
func (v positionValue) Set(s string) error { *v.p = plan.NumberPosition(s); return nil }
func (v positionValue) Type() string       { return "start|end" }

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.Find, "find", "", "literal text to replace")
	f.StringVar(&batchFlags.Replace, "replace", "", "replacement for --find")
	f.StringVar(&batchFlags.Prefix, "prefix", "", "text to prepend")
	f.StringVar(&batchFlags.Suffix, "suffix", "", "text to append before the extension")
	f.IntVar(&batchFlags.RemoveFromStart, "trim-start", 0, "characters to remove from the start of the name")
	f.IntVar(&batchFlags.RemoveFromEnd, "trim-end", 0, "characters to remove from the end of the name")
	f.BoolVar(&batchFlags.Numbering, "number", false, "add a sequence number")
	f.Var(positionValue{&batchFlags.NumberPosition}, "number-position", "where the number goes: start or end (default end)")
	f.StringVar(&batchFlags.NumberFormat, "number-format", "", "zero padding template, e.g. 000")
	f.IntVar(&batchFlags.NumberStart, "number-start", 1, "first sequence number")
	f.StringVar(&batchFlags.NumberSeparator, "number-sep", "_", "text between the name and the number")
	f.StringArrayVar(&batchOverrides, "rename", nil, "use NEW instead of OLD's name as the rules' input (OLD=NEW, repeatable)")
	addPlanFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}
