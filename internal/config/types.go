package config

import "github.com/bianoble/file-renamer/internal/plan"

// Config represents a renamer.yaml file. Every section is optional; CLI
// flags are applied on top of the merged result.
type Config struct {
	Version int `yaml:"version"`

	// Batch holds the default batch parameters.
	Batch plan.BatchParams `yaml:"batch,omitempty"`

	// Pairs holds saved target → source pairs for the pair command.
	Pairs []plan.Pair `yaml:"pairs,omitempty"`

	Listing Listing `yaml:"listing,omitempty"`

	// Journal is the path of the rename journal, relative to the target
	// directory unless absolute. Empty means the default file name.
	Journal string `yaml:"journal,omitempty"`

	// CaseInsensitive overrides the host's case sensitivity when set.
	CaseInsensitive *bool `yaml:"case_insensitive,omitempty"`
}

// Listing controls directory enumeration.
type Listing struct {
	IncludeHidden *bool `yaml:"include_hidden,omitempty"`
}

// Default returns an empty version 1 configuration.
func Default() *Config {
	return &Config{Version: 1}
}

// IncludeHidden reports whether hidden files are listed.
func (c *Config) IncludeHidden() bool {
	return c.Listing.IncludeHidden != nil && *c.Listing.IncludeHidden
}
