package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/file-renamer/internal/config"
	"github.com/bianoble/file-renamer/internal/journal"
	"github.com/bianoble/file-renamer/internal/logging"
	"github.com/bianoble/file-renamer/internal/plan"
	"github.com/bianoble/file-renamer/internal/sandbox"
	"github.com/bianoble/file-renamer/pkg/renamer"
)

// Process I/O, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin

	osFs afero.Fs = afero.NewOsFs()

	interactive = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stderrIsTTY = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

// errDeclined is returned when the user answers no at the confirmation prompt.
var errDeclined = errors.New("rename cancelled")

// targetDir resolves the directory argument, defaulting to the working
// directory.
func targetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	return abs, nil
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig reads the layered configuration for dir.
func loadConfig(dir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ProjectPath(dir)
	}

	cfg, layers, err := config.LoadLayered(osFs, config.DiscoverOptions{ProjectPath: path}, noInherit || config.EnvNoInherit())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	for _, l := range layers {
		if l.Loaded {
			detail("config: %s (%s)", l.Path, l.Level)
		}
	}
	return cfg, nil
}

// resolveJournal returns the journal path for dir, or "" when disabled.
func resolveJournal(dir string, cfg *config.Config) string {
	if noJournal {
		return ""
	}
	path := journalPath
	if path == "" {
		path = cfg.Journal
	}
	if path == "" {
		path = journal.DefaultFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path
}

// newLogger creates the CLI logger on stderr.
func newLogger() *logging.Logger {
	level := logging.LevelNormal
	switch {
	case quiet:
		level = logging.LevelQuiet
	case verbose:
		level = logging.LevelVerbose
	}
	return logging.New(stderr, level, !noColor)
}

// newClient builds a library client configured from cfg.
func newClient(dir string, cfg *config.Config, progress func(done, total int)) *renamer.Client {
	return renamer.New(renamer.Options{
		Fs:              osFs,
		CaseInsensitive: cfg.CaseInsensitive,
		IncludeHidden:   cfg.IncludeHidden(),
		JournalPath:     resolveJournal(dir, cfg),
		Logger:          newLogger(),
		Progress:        progress,
	})
}

// savePlan writes p as YAML for a later apply.
func savePlan(path string, p *plan.Plan) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	return sandbox.SafeWrite(osFs, path, data, 0644)
}

// loadPlan reads a plan written by savePlan.
func loadPlan(path string) (*plan.Plan, error) {
	data, err := afero.ReadFile(osFs, path)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	var p plan.Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	if p.Directory == "" {
		return nil, fmt.Errorf("plan %s has no directory", path)
	}
	if p.Operations == nil {
		p.Operations = []plan.RenameOp{}
	}
	return &p, nil
}

// confirm asks before applying. --yes skips the question; without a
// terminal and without --yes nothing is applied.
func confirm(prompt string) error {
	if assumeYes {
		return nil
	}
	if !interactive() {
		return fmt.Errorf("not a terminal: pass --yes to apply without confirmation")
	}

	fmt.Fprintf(stdout, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return errDeclined
	}
}

// parseAssignments splits KEY=VALUE arguments. form names the expected
// shape in errors.
func parseAssignments(args []string, form string) ([][2]string, error) {
	out := make([][2]string, 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("invalid argument '%s' — expected %s", a, form)
		}
		out = append(out, [2]string{k, v})
	}
	return out, nil
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Fprintf(stdout, "  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(stderr, "error: "+format+"\n", args...)
}

func humanSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
