package config

import (
	"fmt"

	"github.com/bianoble/file-renamer/internal/plan"
)

// Merge combines two configs where overlay takes precedence over base:
//   - version: must agree if both declare it (non-zero); fatal error on mismatch
//   - batch: field by field, set overlay fields win
//   - pairs: merge by target; an overlay pair also evicts any base pair using its source
//   - listing, journal, case_insensitive: overlay wins when set
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := &Config{}

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	result.Batch = mergeBatch(base.Batch, overlay.Batch)
	result.Pairs = mergePairs(base.Pairs, overlay.Pairs)

	result.Listing = base.Listing
	if overlay.Listing.IncludeHidden != nil {
		result.Listing.IncludeHidden = overlay.Listing.IncludeHidden
	}

	result.Journal = base.Journal
	if overlay.Journal != "" {
		result.Journal = overlay.Journal
	}

	result.CaseInsensitive = base.CaseInsensitive
	if overlay.CaseInsensitive != nil {
		result.CaseInsensitive = overlay.CaseInsensitive
	}

	return result, nil
}

// MergeAll merges multiple configs in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		var err error
		result, err = Merge(result, configs[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0 && overlay == 0:
		*out = 0 // neither declares; validation will catch this
	case base == 0:
		*out = overlay
	case overlay == 0:
		*out = base
	case base == overlay:
		*out = base
	default:
		return fmt.Errorf("config version mismatch: one layer declares version %d, another declares version %d — all config layers must agree on version", base, overlay)
	}
	return nil
}

func mergeBatch(base, overlay plan.BatchParams) plan.BatchParams {
	result := base
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setString(&result.Find, overlay.Find)
	setString(&result.Replace, overlay.Replace)
	setString(&result.Prefix, overlay.Prefix)
	setString(&result.Suffix, overlay.Suffix)
	setInt(&result.RemoveFromStart, overlay.RemoveFromStart)
	setInt(&result.RemoveFromEnd, overlay.RemoveFromEnd)
	if overlay.Numbering {
		result.Numbering = true
	}
	if overlay.NumberPosition != "" {
		result.NumberPosition = overlay.NumberPosition
	}
	setString(&result.NumberFormat, overlay.NumberFormat)
	setInt(&result.NumberStart, overlay.NumberStart)
	setString(&result.NumberSeparator, overlay.NumberSeparator)

	return result
}

func mergePairs(base, overlay []plan.Pair) []plan.Pair {
	if len(base) == 0 {
		return overlay
	}
	if len(overlay) == 0 {
		return base
	}

	m := plan.NewPairMap(base)
	for _, p := range overlay {
		m.Set(p.Target, p.Source)
	}
	return m.Pairs()
}
