package javaast

import "github.com/termfx/javarefactor/javatype"

// typedBase is embedded by expression/type-bearing nodes to carry their
// optional resolved Type.
type typedBase struct {
	Base
	Type javatype.Type
}

// ResolvedType returns the node's resolved type, or nil if unresolved.
func (t typedBase) ResolvedType() javatype.Type { return t.Type }

// Identifier is a bare name reference: a variable, type, or package segment.
type Identifier struct {
	typedBase
	Name string
}

func (*Identifier) Kind() Kind { return KindIdentifier }

// Literal is a literal token: numeric, char, string, boolean, null, or the
// wildcard `*` used in annotation/signature contexts.
type Literal struct {
	typedBase
	Tag   javatype.PrimitiveTag
	Value any    // int64, float64, string, bool, rune, or nil
	Suffix string // numeric suffix retained verbatim, e.g. "L", "d", "f"
}

func (*Literal) Kind() Kind { return KindLiteral }

// Binary is `left op right`.
type Binary struct {
	typedBase
	Left  Node
	Op    BinaryOp
	Right Node
}

func (*Binary) Kind() Kind { return KindBinary }

// Unary is a prefix or postfix unary expression.
type Unary struct {
	typedBase
	Op      UnaryOp
	Operand Node
}

func (*Unary) Kind() Kind { return KindUnary }

// Assign is `target = value`.
type Assign struct {
	typedBase
	Target Node
	Value  Node
}

func (*Assign) Kind() Kind { return KindAssign }

// CompoundAssign is `target op= value`.
type CompoundAssign struct {
	typedBase
	Target Node
	Op     AssignOp
	Value  Node
}

func (*CompoundAssign) Kind() Kind { return KindCompoundAssign }

// Ternary is `cond ? then : else`.
type Ternary struct {
	typedBase
	Condition Node
	Then      Node
	Else      Node
}

func (*Ternary) Kind() Kind { return KindTernary }

// Instanceof is `value instanceof Type [binding]`.
type Instanceof struct {
	typedBase
	Value   Node
	Type    Node
	Binding string // pattern-matching binding name, "" if absent
}

func (*Instanceof) Kind() Kind { return KindInstanceof }

// Lambda is `(params) -> body`.
type Lambda struct {
	typedBase
	Params []*Parameter
	Body   Node // Block or expression
}

func (*Lambda) Kind() Kind { return KindLambda }

// MethodInvocation is `[target.]name(args)`.
type MethodInvocation struct {
	typedBase
	Target   Node // nil for unqualified calls
	TypeArgs []Node
	Name     string
	Args     []Node
	Resolved *javatype.Method
}

func (*MethodInvocation) Kind() Kind { return KindMethodInvocation }

// FieldAccess is `target.name`.
type FieldAccess struct {
	typedBase
	Target Node
	Name   string
}

func (*FieldAccess) Kind() Kind { return KindFieldAccess }

// ArrayAccess is `array[index]`.
type ArrayAccess struct {
	typedBase
	Array Node
	Index Node
}

func (*ArrayAccess) Kind() Kind { return KindArrayAccess }

// NewClass is `new Type(args) [body]`.
type NewClass struct {
	typedBase
	EnclosingExpr Node // for qualified instance creation, nil otherwise
	Type          Node
	Args          []Node
	AnonymousBody []Node // nil unless an anonymous class body is present
}

func (*NewClass) Kind() Kind { return KindNewClass }

// NewArray is `new Type[dims]` or `new Type[]{init}`.
type NewArray struct {
	typedBase
	ElementType Node
	Dimensions  []Node // explicit dimension size expressions, outermost first
	ExtraDims   int    // additional empty `[]` beyond len(Dimensions)
	Initializer []Node // nil unless an array initializer is present
}

func (*NewArray) Kind() Kind { return KindNewArray }

// TypeCast is `(Type) value`.
type TypeCast struct {
	typedBase
	Type  Node
	Value Node
}

func (*TypeCast) Kind() Kind { return KindTypeCast }

// Parentheses is `(inner)`, preserved distinctly so printing round-trips
// redundant parenthesization exactly.
type Parentheses struct {
	typedBase
	Inner Node
}

func (*Parentheses) Kind() Kind { return KindParentheses }

// EnumValue is one `NAME[(args)] [body]` constant of an enum body.
type EnumValue struct {
	Base
	Annotations   []*Annotation
	Name          string
	Args          []Node
	AnonymousBody []Node // nil unless the constant has a class body
}

func (*EnumValue) Kind() Kind { return KindEnumValue }
