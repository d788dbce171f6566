package javatype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAssignableFromReflexiveAndTransitive(t *testing.T) {
	object := Build("java.lang.Object")
	base := Build("b.Base").WithSupertype(object)
	derived := Build("b.Derived").WithSupertype(base)

	require.True(t, IsAssignableFrom(derived, derived), "reflexive")
	require.True(t, IsAssignableFrom(base, derived), "direct supertype")
	require.True(t, IsAssignableFrom(object, derived), "transitive supertype")
	require.False(t, IsAssignableFrom(derived, base), "not assignable upward->downward")
}

func TestIsAssignableFromInterfaces(t *testing.T) {
	comparable := Build("c.Comparable")
	impl := Build("c.Impl").WithInterfaces(comparable)

	require.True(t, IsAssignableFrom(comparable, impl))
}

func TestIsAssignableFromArraysCovariant(t *testing.T) {
	object := Build("java.lang.Object")
	str := Build("java.lang.String").WithSupertype(object)

	require.True(t, IsAssignableFrom(Array{Element: object}, Array{Element: str}))
	require.False(t, IsAssignableFrom(Array{Element: str}, Array{Element: object}))
}

func TestPrimitiveStringReconciledWithClassString(t *testing.T) {
	// Open Question (i): the literal tag PrimitiveString prints as
	// java.lang.String so FQN-based matching treats them identically.
	require.Equal(t, "java.lang.String", Primitive{Tag: PrimitiveString}.FQN())
	require.Equal(t, "java.lang.String", Build("java.lang.String").FQN())
}
