// Package javatype models resolved Java symbols: classes, methods, variables,
// generic type variables, primitives, and arrays. Trees produced by the
// (external) parser carry these as the resolved type of expression and
// type-bearing nodes.
package javatype

// Type is the closed sum of resolved symbol descriptors. Implementations are
// Class, Method, Var, GenericTypeVariable, Primitive, and Array.
type Type interface {
	// FQN returns the fully qualified name used for matching and printing.
	FQN() string

	typeMarker()
}

// Owner is either a Package or a Class; it names where a Class or Var is
// declared.
type Owner interface {
	ownerMarker()
}

// Package is the owner of a top-level Class.
type Package struct {
	Name string
}

func (Package) ownerMarker() {}

// GenericTypeVariable is a declared type parameter, e.g. the T in List<T>.
type GenericTypeVariable struct {
	Name   string
	Bounds []Type
}

func (GenericTypeVariable) typeMarker() {}

// FQN returns the variable's name; type variables have no qualified name.
func (g GenericTypeVariable) FQN() string { return g.Name }

// Array is a covariant array type over Element.
type Array struct {
	Element Type
}

func (Array) typeMarker() {}

// FQN is the element's FQN suffixed with "[]".
func (a Array) FQN() string { return a.Element.FQN() + "[]" }
