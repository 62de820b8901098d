package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/file-renamer/internal/naming"
	"github.com/bianoble/file-renamer/internal/plan"
)

// Load reads and validates a renamer.yaml configuration file.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg, err := parse(fs, path)
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

func parse(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadLayered loads every discovered layer that exists, merges them from
// lowest to highest precedence and validates the result. Missing files are
// skipped; with no layers at all the result is Default(). When noInherit is
// set only the project layer is read.
func LoadLayered(fs afero.Fs, opts DiscoverOptions, noInherit bool) (*Config, []ConfigLayerInfo, error) {
	layers := DiscoverPaths(opts)
	var loaded []*Config

	for i := range layers {
		layer := &layers[i]
		if noInherit && layer.Level != LevelProject {
			continue
		}

		cfg, err := parse(fs, layer.Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			layer.Err = err
			return nil, layers, fmt.Errorf("%s config: %w", layer.Level, err)
		}
		layer.Loaded = true
		loaded = append(loaded, cfg)
	}

	if len(loaded) == 0 {
		return Default(), layers, nil
	}

	merged, err := MergeAll(loaded)
	if err != nil {
		return nil, layers, err
	}
	if errs := Validate(merged); len(errs) > 0 {
		return nil, layers, &ValidationError{Errors: errs}
	}
	return merged, layers, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if err := cfg.Batch.Validate(); err != nil {
		var pe *plan.ParamsError
		if errors.As(err, &pe) {
			for _, msg := range pe.Errors {
				errs = append(errs, "batch: "+msg)
			}
		} else {
			errs = append(errs, fmt.Sprintf("batch: %v", err))
		}
	}

	targets := make(map[string]bool)
	sources := make(map[string]bool)
	for i, p := range cfg.Pairs {
		prefix := fmt.Sprintf("pair[%d]", i)
		if p.Target != "" {
			prefix = fmt.Sprintf("pair for '%s'", p.Target)
		}

		switch {
		case p.Target == "":
			errs = append(errs, fmt.Sprintf("%s: 'target' is required", prefix))
		case naming.InvalidNameReason(p.Target) != "":
			errs = append(errs, fmt.Sprintf("%s: target %s — use a file name, not a path", prefix, naming.InvalidNameReason(p.Target)))
		case targets[p.Target]:
			errs = append(errs, fmt.Sprintf("%s: duplicate target '%s'", prefix, p.Target))
		default:
			targets[p.Target] = true
		}

		switch {
		case p.Source == "":
			errs = append(errs, fmt.Sprintf("%s: 'source' is required", prefix))
		case naming.InvalidNameReason(p.Source) != "":
			errs = append(errs, fmt.Sprintf("%s: source %s — use a file name, not a path", prefix, naming.InvalidNameReason(p.Source)))
		case sources[p.Source]:
			errs = append(errs, fmt.Sprintf("%s: source '%s' is already paired", prefix, p.Source))
		default:
			sources[p.Source] = true
		}
	}

	return errs
}
