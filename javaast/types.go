package javaast

import "github.com/termfx/javarefactor/javatype"

// PrimitiveType is a primitive type reference, e.g. `int`, `void`.
type PrimitiveType struct {
	typedBase
	Tag javatype.PrimitiveTag
}

func (*PrimitiveType) Kind() Kind { return KindPrimitiveType }

// ArrayType is `Element[]`, possibly with several dimensions represented as
// nested ArrayType values.
type ArrayType struct {
	typedBase
	Element Node
}

func (*ArrayType) Kind() Kind { return KindArrayType }

// ParameterizedType is `Raw<Args>`.
type ParameterizedType struct {
	typedBase
	Raw  Node
	Args []Node
}

func (*ParameterizedType) Kind() Kind { return KindParameterizedType }

// Wildcard is `?`, `? extends Bound`, or `? super Bound`.
type Wildcard struct {
	typedBase
	Extends Node // nil if absent
	Super   Node // nil if absent
}

func (*Wildcard) Kind() Kind { return KindWildcard }
