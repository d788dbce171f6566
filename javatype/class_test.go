package javatype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInterns(t *testing.T) {
	a1 := Build("a.A1")
	a2 := Build("a.A1")
	require.Same(t, a1, a2, "Build must return the canonical instance for a repeated FQN")

	other := Build("a.A2")
	require.NotSame(t, a1, other)
}

func TestClosureIncludesSelfAndAncestors(t *testing.T) {
	object := Build("java.lang.Object")
	serializable := Build("java.io.Serializable")
	base := Build("a.Base").WithSupertype(object)
	derived := Build("a.Derived").WithSupertype(base).WithInterfaces(serializable)

	closure := derived.Closure()
	names := make([]string, 0, len(closure))
	for _, c := range closure {
		names = append(names, c.FQN())
	}
	require.Contains(t, names, "a.Derived")
	require.Contains(t, names, "a.Base")
	require.Contains(t, names, "java.lang.Object")
	require.Contains(t, names, "java.io.Serializable")
}
