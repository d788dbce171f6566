package refactors

import (
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/visitor"
)

// ChangeLiteral applies transform to the value of every literal within
// scope. It never touches Tag or Suffix, so the printer's existing
// suffix/escaping rules reproduce the literal's type-appropriate source form
// from the transformed value unchanged.
func ChangeLiteral(scope javaast.NodeID, transform func(any) any) *visitor.Visitor {
	return visitor.New(visitor.Hooks{
		javaast.KindLiteral: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			if !cur.IsScopeInCursorPath(scope) {
				return n
			}
			lit := n.(*javaast.Literal)
			out := *lit
			out.Value = transform(lit.Value)
			return &out
		},
	})
}
