package refactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/javatype"
	"github.com/termfx/javarefactor/visitor"
)

func classWithLiteral(name string, v int64) *javaast.ClassDecl {
	return &javaast.ClassDecl{
		Base: javaast.NewBase(javaast.None()),
		Name: name,
		Members: []javaast.Node{
			&javaast.MethodDecl{
				Base: javaast.NewBase(javaast.None()),
				Name: "run",
				Body: &javaast.Block{
					Base: javaast.NewBase(javaast.None()),
					Statements: []javaast.Node{
						&javaast.Return{
							Base:  javaast.NewBase(javaast.None()),
							Value: &javaast.Literal{Tag: javatype.PrimitiveInt, Value: v},
						},
					},
				},
			},
		},
	}
}

func compilationUnit(class *javaast.ClassDecl) *javaast.CompilationUnit {
	return &javaast.CompilationUnit{
		Base:  javaast.NewBase(javaast.None()),
		Types: []*javaast.ClassDecl{class},
	}
}

func TestFixWithNoStagedVisitorsIsIdentity(t *testing.T) {
	cu := compilationUnit(classWithLiteral("C", 1))
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	result, err := tx.Fix()
	require.NoError(t, err)
	require.False(t, result.Changed)
	require.Empty(t, result.Patch)
	require.Empty(t, result.Fixes)
	require.Equal(t, source, javaast.Print(result.Fixed))
}

func TestNewRejectsMismatchedSource(t *testing.T) {
	cu := compilationUnit(classWithLiteral("C", 1))
	_, err := New(cu, "not the real source")
	require.True(t, errors.Is(err, ErrPrintInvariant))
}

func TestFixRecordsReplaceAndProducesPatch(t *testing.T) {
	cu := compilationUnit(classWithLiteral("C", 1))
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	tx.Visit(visitor.New(visitor.Hooks{
		javaast.KindLiteral: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			l := n.(*javaast.Literal)
			out := *l
			out.Value = l.Value.(int64) + 1
			return &out
		},
	}))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.NotEmpty(t, result.Patch)
	require.Len(t, result.Fixes, 1)
	require.Equal(t, FixReplace, result.Fixes[0].Kind)
}

func TestFixRecordsDeleteWhenHookReturnsNil(t *testing.T) {
	cu := compilationUnit(classWithLiteral("C", 1))
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	tx.Visit(visitor.New(visitor.Hooks{
		javaast.KindReturn: func(cur *visitor.Cursor, n javaast.Node) javaast.Node { return nil },
	}))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.Len(t, result.Fixes, 1)
	require.Equal(t, FixDelete, result.Fixes[0].Kind)
}

func TestFixRejectsOverlappingFoldAnchors(t *testing.T) {
	class := classWithLiteral("C", 1)
	cu := compilationUnit(class)
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	method := class.Members[0].(*javaast.MethodDecl)
	lit := method.Body.Statements[0].(*javaast.Return).Value.(*javaast.Literal)

	bumpWithin := func(anchor javaast.NodeID) *visitor.Visitor {
		return visitor.New(visitor.Hooks{
			javaast.KindLiteral: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
				if !cur.IsScopeInCursorPath(anchor) {
					return n
				}
				l := n.(*javaast.Literal)
				out := *l
				out.Value = l.Value.(int64) + 1
				return &out
			},
		})
	}

	// method's scope and the literal's own scope both contain the literal,
	// so Fold's disjoint-scope contract is violated: both anchors fix it.
	tx.Fold([]javaast.NodeID{method.ID(), lit.ID()}, bumpWithin)

	_, err = tx.Fix()
	require.True(t, errors.Is(err, ErrConflictingFixes))
}

func TestFixSkipsUnresolvedMethodInvocationAndWarns(t *testing.T) {
	inv := &javaast.MethodInvocation{Name: "call"}
	inv.Base = javaast.NewBase(javaast.None())
	class := &javaast.ClassDecl{
		Base: javaast.NewBase(javaast.None()),
		Name: "C",
		Members: []javaast.Node{
			&javaast.MethodDecl{
				Base: javaast.NewBase(javaast.None()),
				Name: "run",
				Body: &javaast.Block{
					Base:       javaast.NewBase(javaast.None()),
					Statements: []javaast.Node{inv},
				},
			},
		},
	}
	cu := compilationUnit(class)
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	tx.Visit(visitor.New(visitor.Hooks{
		javaast.KindMethodInvocation: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			call := n.(*javaast.MethodInvocation)
			out := *call
			out.Name = "renamed"
			return &out
		},
	}))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.False(t, result.Changed)
	require.Empty(t, result.Fixes)
	require.Len(t, result.Warnings, 1)
	require.True(t, errors.Is(result.Warnings[0].Err, ErrUnresolvedSymbol))
	require.Equal(t, inv.ID(), result.Warnings[0].Target)
}

func TestFixChainsMultipleStagedVisitors(t *testing.T) {
	cu := compilationUnit(classWithLiteral("C", 1))
	source := javaast.Print(cu)

	tx, err := New(cu, source)
	require.NoError(t, err)

	bumpBy := func(delta int64) *visitor.Visitor {
		return visitor.New(visitor.Hooks{
			javaast.KindLiteral: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
				l := n.(*javaast.Literal)
				out := *l
				out.Value = l.Value.(int64) + delta
				return &out
			},
		})
	}
	tx.Visit(bumpBy(10)).Visit(bumpBy(100))

	result, err := tx.Fix()
	require.NoError(t, err)
	got := result.Fixed.(*javaast.CompilationUnit).Types[0].
		Members[0].(*javaast.MethodDecl).Body.Statements[0].(*javaast.Return).Value.(*javaast.Literal)
	require.Equal(t, int64(111), got.Value)
	require.Len(t, result.Fixes, 2)
}
