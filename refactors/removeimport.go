package refactors

import (
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/javatype"
	"github.com/termfx/javarefactor/visitor"
)

// RemoveImport drops or narrows whatever import statement brings clazz into
// scope, based on what the compilation unit still references after any
// other staged visitors have run:
//   - a single-type import of clazz is dropped once nothing resolves to it
//   - a star import whose package is exactly clazz is dropped once nothing
//     in that package is referenced, or narrowed to a single-type import
//     once exactly one class of it is
//   - a static single-member import of clazz.member is dropped once that
//     method is never called
//   - a static star import of clazz is dropped once no static method of
//     clazz is called
func RemoveImport(clazz string) *visitor.Visitor {
	return visitor.New(visitor.Hooks{
		javaast.KindCompilationUnit: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			cu := n.(*javaast.CompilationUnit)
			out := *cu
			out.Imports = rewriteImportsRemoving(&out, clazz)
			return &out
		},
	})
}

func rewriteImportsRemoving(cu *javaast.CompilationUnit, clazz string) []*javaast.ImportDecl {
	types := referencedTypeFQNs(cu)
	methods := referencedStaticMethodFQNs(cu)

	out := make([]*javaast.ImportDecl, 0, len(cu.Imports))
	for _, im := range cu.Imports {
		switch {
		case im.Static && im.Star:
			if kept := keepStaticStar(im, clazz, methods); kept != nil {
				out = append(out, kept)
			}
		case im.Static:
			if kept := keepStaticNamed(im, clazz, methods); kept != nil {
				out = append(out, kept)
			}
		case im.Star:
			out = appendStarImport(out, im, clazz, types)
		default:
			if im.Qualified != clazz || types[clazz] {
				out = append(out, im)
			}
		}
	}
	return out
}

func keepStaticStar(im *javaast.ImportDecl, clazz string, methods map[string]bool) *javaast.ImportDecl {
	if im.Qualified != clazz {
		return im
	}
	prefix := clazz + "#"
	for key := range methods {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			return im
		}
	}
	return nil
}

func keepStaticNamed(im *javaast.ImportDecl, clazz string, methods map[string]bool) *javaast.ImportDecl {
	if im.Target() != clazz {
		return im
	}
	if methods[clazz+"#"+im.Member()] {
		return im
	}
	return nil
}

func appendStarImport(out []*javaast.ImportDecl, im *javaast.ImportDecl, clazz string, types map[string]bool) []*javaast.ImportDecl {
	if im.Qualified != clazz {
		return append(out, im)
	}
	var onlyMember string
	count := 0
	for t := range types {
		if packageOf(t) == im.Qualified {
			count++
			onlyMember = t
		}
	}
	switch count {
	case 0:
		return out
	case 1:
		return append(out, &javaast.ImportDecl{Base: im.Base, Qualified: onlyMember})
	default:
		return append(out, im)
	}
}

func referencedTypeFQNs(root javaast.Node) map[string]bool {
	out := map[string]bool{}
	javaast.Walk(root, func(n javaast.Node) {
		t, ok := n.(javaast.Typed)
		if !ok {
			return
		}
		rt := t.ResolvedType()
		if rt == nil {
			return
		}
		if c, ok := rt.(*javatype.Class); ok {
			out[c.FQN()] = true
		}
	})
	return out
}

func referencedStaticMethodFQNs(root javaast.Node) map[string]bool {
	out := map[string]bool{}
	javaast.Walk(root, func(n javaast.Node) {
		inv, ok := n.(*javaast.MethodInvocation)
		if !ok || inv.Target != nil || inv.Resolved == nil || inv.Resolved.DeclaringType == nil {
			return
		}
		out[inv.Resolved.DeclaringType.FQN()+"#"+inv.Resolved.Name] = true
	})
	return out
}
