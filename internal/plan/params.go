package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bianoble/file-renamer/internal/naming"
)

// ErrInvalidParams is matched by every batch parameter validation failure.
var ErrInvalidParams = errors.New("invalid batch parameters")

// NumberPosition selects where the sequence number is inserted.
type NumberPosition string

const (
	NumberStart NumberPosition = "start"
	NumberEnd   NumberPosition = "end"
)

// BatchParams is the declarative rule set applied uniformly across a batch.
// The zero value changes nothing.
type BatchParams struct {
	Find            string         `yaml:"find,omitempty"`
	Replace         string         `yaml:"replace,omitempty"`
	Prefix          string         `yaml:"prefix,omitempty"`
	Suffix          string         `yaml:"suffix,omitempty"`
	RemoveFromStart int            `yaml:"remove_from_start,omitempty"`
	RemoveFromEnd   int            `yaml:"remove_from_end,omitempty"`
	Numbering       bool           `yaml:"numbering,omitempty"`
	NumberPosition  NumberPosition `yaml:"number_position,omitempty"` // "start" or "end" (default)
	NumberFormat    string         `yaml:"number_format,omitempty"`   // "0", "00", "000", ...
	NumberStart     int            `yaml:"number_start,omitempty"`
	NumberSeparator string         `yaml:"number_separator,omitempty"`
}

// ParamsError lists every problem found in a BatchParams.
type ParamsError struct {
	Errors []string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("%s:\n  - %s", ErrInvalidParams, strings.Join(e.Errors, "\n  - "))
}

// Is makes errors.Is(err, ErrInvalidParams) hold.
func (e *ParamsError) Is(target error) bool {
	return target == ErrInvalidParams
}

// IsNoop reports whether no pipeline stage has an effect.
func (p BatchParams) IsNoop() bool {
	return p.Find == "" && p.Prefix == "" && p.Suffix == "" &&
		p.RemoveFromStart == 0 && p.RemoveFromEnd == 0 && !p.Numbering
}

// Validate checks the parameters and returns a *ParamsError listing every
// problem, or nil.
func (p BatchParams) Validate() error {
	var errs []string

	if p.RemoveFromStart < 0 {
		errs = append(errs, fmt.Sprintf("remove_from_start must not be negative, got %d", p.RemoveFromStart))
	}
	if p.RemoveFromEnd < 0 {
		errs = append(errs, fmt.Sprintf("remove_from_end must not be negative, got %d", p.RemoveFromEnd))
	}

	if p.Numbering {
		if _, ok := normalizePosition(p.NumberPosition); !ok {
			errs = append(errs, fmt.Sprintf("invalid number_position '%s' — must be one of: start, end", p.NumberPosition))
		}
		if _, ok := numberWidth(p.NumberFormat); !ok {
			errs = append(errs, fmt.Sprintf("invalid number_format '%s' — use zeros only, e.g. 000", p.NumberFormat))
		}
		if strings.ContainsRune(p.NumberSeparator, '/') {
			errs = append(errs, "number_separator must not contain '/'")
		}
	}

	if len(errs) > 0 {
		return &ParamsError{Errors: errs}
	}
	return nil
}

// Transform validates p and resolves it into the form the naming pipeline
// consumes.
func (p BatchParams) Transform() (naming.Transform, error) {
	if err := p.Validate(); err != nil {
		return naming.Transform{}, err
	}

	t := naming.Transform{
		Find:            p.Find,
		Replace:         p.Replace,
		Prefix:          p.Prefix,
		Suffix:          p.Suffix,
		RemoveFromStart: p.RemoveFromStart,
		RemoveFromEnd:   p.RemoveFromEnd,
		Numbering:       p.Numbering,
		NumberStart:     p.NumberStart,
		NumberSeparator: p.NumberSeparator,
	}
	if p.Numbering {
		pos, _ := normalizePosition(p.NumberPosition)
		width, _ := numberWidth(p.NumberFormat)
		t.NumberPosition = pos
		t.NumberWidth = width
	}
	return t, nil
}

// normalizePosition accepts "start"/"end" and the older "prefix"/"suffix"
// spellings. Empty means end.
func normalizePosition(p NumberPosition) (naming.Position, bool) {
	switch strings.ToLower(string(p)) {
	case "", "end", "suffix":
		return naming.PositionEnd, true
	case "start", "prefix":
		return naming.PositionStart, true
	default:
		return "", false
	}
}

// numberWidth derives the padding width from a template of zeros. An empty
// template means no padding.
func numberWidth(format string) (int, bool) {
	if format == "" {
		return 1, true
	}
	for _, ch := range format {
		if ch != '0' {
			return 0, false
		}
	}
	return len(format), true
}
