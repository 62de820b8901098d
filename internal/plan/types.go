package plan

// Mode names the workflow that produced a plan.
type Mode string

const (
	ModePairing Mode = "pairing"
	ModeBatch   Mode = "batch"
)

// Conflict reasons. Reason strings are stable; Detail carries the specifics.
const (
	ReasonDuplicateName   = "duplicate resulting name"
	ReasonInvalidName     = "invalid resulting name"
	ReasonExistingFile    = "collides with existing file"
	ReasonDuplicateTarget = "duplicate target"
)

// RenameOp is one proposed or executed rename. SourceName is set only in
// pairing mode and names the file that donated the base name.
type RenameOp struct {
	OldPath    string `yaml:"old_path"`
	NewPath    string `yaml:"new_path"`
	OldName    string `yaml:"old_name"`
	NewName    string `yaml:"new_name"`
	SourceName string `yaml:"source_name,omitempty"`
}

// Conflict is a target excluded from a plan because its computed name would
// be unsafe or meaningless.
type Conflict struct {
	TargetName string `yaml:"target_name"`
	SourceName string `yaml:"source_name,omitempty"`
	NewName    string `yaml:"new_name"`
	Reason     string `yaml:"reason"`
	Detail     string `yaml:"detail,omitempty"`
}

// Plan is the reviewable outcome of one planning call. Every call returns a
// fresh Plan. Operations never share a NewName and never land on a file of
// the working set that is not itself renamed away.
type Plan struct {
	Directory  string     `yaml:"directory"`
	Mode       Mode       `yaml:"mode"`
	Operations []RenameOp `yaml:"operations"`
	Conflicts  []Conflict `yaml:"conflicts"`
}

// Empty reports whether the plan has nothing to execute.
func (p *Plan) Empty() bool {
	return len(p.Operations) == 0
}
