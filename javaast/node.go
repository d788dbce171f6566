// Package javaast is an immutable concrete-syntax tree for Java. Every node
// carries its surrounding whitespace and comments as a prefix and suffix.
// Whitespace between a node's own tokens is not stored: the printer writes
// fixed spacing there (`if (`, ` = `, one space around a binary operator),
// so a source reprints byte-for-byte only where it uses that spacing.
// Transformed nodes reprint the contracted form of whatever replaced them.
package javaast

import (
	"sync/atomic"

	"github.com/termfx/javarefactor/javatype"
)

// Kind is the closed set of node kinds mirroring the Java grammar. Operators
// are modeled as distinct tagged variants elsewhere (BinaryOp, UnaryOp,
// AssignOp) rather than as node kinds; they carry no formatting of their own.
type Kind int

const (
	KindCompilationUnit Kind = iota
	KindPackage
	KindImport
	KindClassDecl
	KindMethodDecl
	KindVariableDecl
	KindBlock
	KindAnnotation
	KindArrayAccess
	KindArrayType
	KindAssign
	KindCompoundAssign
	KindBinary
	KindBreak
	KindCase
	KindCatch
	KindContinue
	KindDoWhile
	KindEmpty
	KindEnumValue
	KindFieldAccess
	KindForEach
	KindFor
	KindIdentifier
	KindIf
	KindInstanceof
	KindLabel
	KindLambda
	KindLiteral
	KindMethodInvocation
	KindMultiCatch
	KindNewArray
	KindNewClass
	KindParameterizedType
	KindParentheses
	KindPrimitiveType
	KindReturn
	KindSwitch
	KindSynchronized
	KindTernary
	KindThrow
	KindTry
	KindTypeCast
	KindTypeParameter
	KindUnary
	KindWhile
	KindWildcard
)

var kindNames = [...]string{
	"CompilationUnit", "Package", "Import", "ClassDecl", "MethodDecl",
	"VariableDecl", "Block", "Annotation", "ArrayAccess", "ArrayType",
	"Assign", "CompoundAssign", "Binary", "Break", "Case", "Catch",
	"Continue", "DoWhile", "Empty", "EnumValue", "FieldAccess", "ForEach",
	"For", "Identifier", "If", "Instanceof", "Label", "Lambda", "Literal",
	"MethodInvocation", "MultiCatch", "NewArray", "NewClass",
	"ParameterizedType", "Parentheses", "PrimitiveType", "Return", "Switch",
	"Synchronized", "Ternary", "Throw", "Try", "TypeCast", "TypeParameter",
	"Unary", "While", "Wildcard",
}

// String renders the kind's name, e.g. for diagnostics.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// NodeID is a stable identity independent of structural equality, assigned
// monotonically at parse time and preserved across transformations that do
// not replace the node. Scoped refactors anchor to a NodeID.
type NodeID uint64

var nodeIDCounter uint64

// NewNodeID allocates the next monotonic node id. Called by the (external)
// parser and by refactors that synthesize new nodes.
func NewNodeID() NodeID {
	return NodeID(atomic.AddUint64(&nodeIDCounter, 1))
}

// Node is the common interface implemented by every kind in the closed set.
// Printing dispatches on Kind via a single type switch (Print, in print.go)
// rather than per-node virtual methods.
type Node interface {
	Kind() Kind
	ID() NodeID
	Formatting() Formatting
}

// Base is embedded by every concrete node kind; it carries the identity and
// formatting state common to all nodes.
type Base struct {
	id  NodeID
	fmt Formatting
}

// NewBase constructs a Base with a fresh id and the given formatting.
func NewBase(f Formatting) Base {
	return Base{id: NewNodeID(), fmt: f}
}

// ID returns the node's stable identity.
func (b Base) ID() NodeID { return b.id }

// Formatting returns the node's prefix/suffix whitespace state.
func (b Base) Formatting() Formatting { return b.fmt }

// setFormatting memoizes a reified Formatting onto the node. The Infer ->
// Reified transition runs once lazily per node, right before printing. It
// is reached through pointer promotion by every concrete node kind, which
// all embed Base by value.
func (b *Base) setFormatting(f Formatting) { b.fmt = f }

type formatSetter interface {
	setFormatting(Formatting)
}

// Typed is implemented by expression and type-bearing nodes that carry an
// optional resolved type.
type Typed interface {
	Node
	ResolvedType() javatype.Type
}
