package refactor

import "github.com/termfx/javarefactor/javaast"

// FixKind classifies a Fix the same way the grammar's Delete/Replace/Insert
// textual edits do, adapted to node identity rather than byte ranges: this
// tree has no stored source offsets (lossless printing is reconstructed from
// Formatting, not recorded spans), so a Fix targets the NodeID whose hook
// produced it instead of a [start,end) byte range.
type FixKind int

const (
	FixReplace FixKind = iota
	FixDelete
	FixInsert
)

func (k FixKind) String() string {
	switch k {
	case FixReplace:
		return "replace"
	case FixDelete:
		return "delete"
	case FixInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Fix is a localized change a single visitor hook made to a single node.
type Fix struct {
	Kind        FixKind
	Target      javaast.NodeID
	Replacement javaast.Node // nil for FixDelete
}
