package refactors

import (
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/visitor"
)

// AddImport adds a single-type import for clazz if the compilation unit
// doesn't already have it in scope.
func AddImport(clazz string) *visitor.Visitor {
	return visitor.New(visitor.Hooks{
		javaast.KindCompilationUnit: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			cu := n.(*javaast.CompilationUnit)
			if !needsImportFor(cu, clazz) {
				return n
			}
			out := *cu
			out.Imports = append(append([]*javaast.ImportDecl{}, out.Imports...), &javaast.ImportDecl{
				Base:      javaast.NewBase(javaast.Infer()),
				Qualified: clazz,
			})
			return &out
		},
	})
}
