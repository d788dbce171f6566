package javatype

// PrimitiveTag enumerates the primitive and pseudo-primitive kinds a literal
// or primitive-type node can carry.
type PrimitiveTag int

const (
	PrimitiveNone PrimitiveTag = iota
	PrimitiveBoolean
	PrimitiveByte
	PrimitiveChar
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveVoid
	// PrimitiveString is the literal type tag carried by string-literal
	// tokens. It is never the resolved Type of an expression: the resolved
	// Type of a string literal is always Class("java.lang.String"). See
	// DESIGN.md Open Question (i).
	PrimitiveString
	PrimitiveWildcard
	PrimitiveNull
)

var primitiveNames = map[PrimitiveTag]string{
	PrimitiveNone:     "",
	PrimitiveBoolean:  "boolean",
	PrimitiveByte:     "byte",
	PrimitiveChar:     "char",
	PrimitiveShort:    "short",
	PrimitiveInt:      "int",
	PrimitiveLong:     "long",
	PrimitiveFloat:    "float",
	PrimitiveDouble:   "double",
	PrimitiveVoid:     "void",
	PrimitiveString:   "java.lang.String",
	PrimitiveWildcard: "*",
	PrimitiveNull:     "null",
}

// String renders the tag's keyword spelling, e.g. for printing a
// PrimitiveType reference.
func (t PrimitiveTag) String() string { return primitiveNames[t] }

// Primitive is a resolved primitive type.
type Primitive struct {
	Tag PrimitiveTag
}

func (Primitive) typeMarker() {}

// FQN returns the primitive keyword, or for PrimitiveString the fully
// qualified java.lang.String, reconciling the literal tag with the resolved
// type.
func (p Primitive) FQN() string { return primitiveNames[p.Tag] }

// String satisfies fmt.Stringer for diagnostics.
func (p Primitive) String() string { return primitiveNames[p.Tag] }

// IsNumeric reports whether the tag denotes a numeric primitive.
func (p Primitive) IsNumeric() bool {
	switch p.Tag {
	case PrimitiveByte, PrimitiveShort, PrimitiveInt, PrimitiveLong, PrimitiveFloat, PrimitiveDouble:
		return true
	default:
		return false
	}
}
