package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/bianoble/file-renamer/internal/naming"
)

func TestBatchParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  BatchParams
		wantErr string
	}{
		{name: "zero value", params: BatchParams{}},
		{name: "negative start trim", params: BatchParams{RemoveFromStart: -1}, wantErr: "remove_from_start"},
		{name: "negative end trim", params: BatchParams{RemoveFromEnd: -2}, wantErr: "remove_from_end"},
		{name: "bad position", params: BatchParams{Numbering: true, NumberPosition: "middle"}, wantErr: "number_position"},
		{name: "bad format", params: BatchParams{Numbering: true, NumberFormat: "0#0"}, wantErr: "number_format"},
		{name: "slash separator", params: BatchParams{Numbering: true, NumberSeparator: "/"}, wantErr: "number_separator"},
		{name: "bad format ignored without numbering", params: BatchParams{NumberFormat: "abc"}},
		{name: "legacy prefix position", params: BatchParams{Numbering: true, NumberPosition: "prefix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Error("error should match ErrInvalidParams")
			}
		})
	}
}

func TestBatchParamsValidateCollectsAll(t *testing.T) {
	err := BatchParams{RemoveFromStart: -1, RemoveFromEnd: -1, Numbering: true, NumberFormat: "x"}.Validate()
	var pe *ParamsError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParamsError", err)
	}
	if len(pe.Errors) != 3 {
		t.Errorf("errors = %v, want 3", pe.Errors)
	}
}

func TestBatchParamsTransform(t *testing.T) {
	tr, err := BatchParams{
		Prefix:          "p",
		Numbering:       true,
		NumberPosition:  NumberStart,
		NumberFormat:    "0000",
		NumberStart:     3,
		NumberSeparator: "-",
	}.Transform()
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if tr.NumberWidth != 4 || tr.NumberPosition != naming.PositionStart || tr.NumberStart != 3 || tr.Prefix != "p" {
		t.Errorf("transform = %+v", tr)
	}

	tr, err = BatchParams{Numbering: true}.Transform()
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if tr.NumberWidth != 1 || tr.NumberPosition != naming.PositionEnd {
		t.Errorf("defaults = %+v, want width 1 at end", tr)
	}
}

func TestBatchParamsIsNoop(t *testing.T) {
	if !(BatchParams{Replace: "ignored without find"}).IsNoop() {
		t.Error("replace alone should be a no-op")
	}
	if (BatchParams{Suffix: "_x"}).IsNoop() {
		t.Error("suffix is an effect")
	}
}
