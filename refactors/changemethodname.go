package refactors

import (
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/visitor"
)

// ChangeMethodName renames the call target of a single, already-located
// invocation, leaving its receiver, type arguments, and argument list
// untouched.
func ChangeMethodName(invocation javaast.NodeID, newName string) *visitor.Visitor {
	return visitor.New(visitor.Hooks{
		javaast.KindMethodInvocation: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			inv := n.(*javaast.MethodInvocation)
			if inv.ID() != invocation {
				return n
			}
			out := *inv
			out.Name = newName
			return &out
		},
	})
}
