package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bianoble/file-renamer/internal/config"
	"github.com/bianoble/file-renamer/internal/plan"
)

// Flags shared by the planning commands.
var (
	dryRun  bool
	outPath string
)

func addPlanFlags(c *cobra.Command) {
	c.Flags().BoolVar(&dryRun, "dry-run", false, "show the plan without renaming")
	c.Flags().StringVarP(&outPath, "out", "o", "", "write the plan to a file for 'file-renamer apply' instead of renaming")
}

var applyCmd = &cobra.Command{
	Use:   "apply PLAN",
	Short: "Apply a plan written with --out",
	Long: `Applies the operations of a plan file written by 'pair --out' or 'batch --out'.
The operations are applied exactly as saved; conflicts listed in the file are
not retried. Files that changed since the plan was written fail individually.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig(p.Directory)
		if err != nil {
			return err
		}
		return execute(commandContext(cmd), p, cfg)
	},
}

// review shows p and then writes, stops, or applies it according to the
// --out and --dry-run flags.
func review(ctx context.Context, p *plan.Plan, cfg *config.Config) error {
	if !quiet {
		renderPlan(stdout, p, currentTheme())
	}

	if outPath != "" {
		if err := savePlan(outPath, p); err != nil {
			return err
		}
		info("Plan written to %s. Apply it with 'file-renamer apply %s'.", outPath, outPath)
		return nil
	}
	if dryRun {
		info("Dry run — no files renamed.")
		return nil
	}
	return execute(ctx, p, cfg)
}

// execute confirms and applies p.Operations, then reports the outcome.
func execute(ctx context.Context, p *plan.Plan, cfg *config.Config) error {
	if len(p.Operations) == 0 {
		info("Nothing to rename.")
		return nil
	}

	if err := confirm(fmt.Sprintf("Rename %d file(s) in %s?", len(p.Operations), p.Directory)); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !quiet && stderrIsTTY() {
		bar = progressbar.NewOptions(len(p.Operations),
			progressbar.OptionSetDescription("renaming"),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(stderr, "\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		)
	}
	progress := func(done, total int) {
		if bar != nil {
			_ = bar.Set(done)
		}
	}

	result, err := newClient(p.Directory, cfg, progress).ExecutePlan(ctx, p)
	if result != nil && (!quiet || len(result.Errors) > 0) {
		renderResult(stdout, result, currentTheme())
	}
	if err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d rename(s) failed", len(result.Errors), len(p.Operations))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
