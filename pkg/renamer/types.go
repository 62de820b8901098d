package renamer

import (
	"github.com/bianoble/file-renamer/internal/engine"
	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/plan"
)

// Type aliases re-export the planning and execution types as the public API.
// Users import "github.com/bianoble/file-renamer/pkg/renamer" and use
// renamer.Plan, renamer.BatchParams, etc.

type FileEntry = listing.FileEntry
type Pair = plan.Pair
type PairMap = plan.PairMap
type BatchParams = plan.BatchParams
type BatchEntry = plan.BatchEntry
type NumberPosition = plan.NumberPosition
type RenameOp = plan.RenameOp
type Conflict = plan.Conflict
type Plan = plan.Plan
type Mode = plan.Mode
type ExecuteResult = engine.ExecuteResult
type RenameError = engine.RenameError

const (
	ModePairing = plan.ModePairing
	ModeBatch   = plan.ModeBatch

	NumberStart = plan.NumberStart
	NumberEnd   = plan.NumberEnd

	ReasonDuplicateName   = plan.ReasonDuplicateName
	ReasonDuplicateTarget = plan.ReasonDuplicateTarget
	ReasonInvalidName     = plan.ReasonInvalidName
	ReasonExistingFile    = plan.ReasonExistingFile
)

var (
	ErrNoDirectory       = plan.ErrNoDirectory
	ErrInvalidParams     = plan.ErrInvalidParams
	ErrInvalidOperations = engine.ErrInvalidOperations
)

// NewPairMap builds a one-to-one pair mapping; see plan.PairMap.
func NewPairMap(pairs []Pair) *PairMap {
	return plan.NewPairMap(pairs)
}

// PairInOrder pairs targets and sources position by position.
func PairInOrder(targets, sources []string) *PairMap {
	return plan.PairInOrder(targets, sources)
}
