package refactors

import (
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/visitor"
)

// typeContextKinds are the node kinds whose Identifier-valued fields are
// type references rather than expression references. A bare Identifier
// resolves to a type either way; only its position in the tree tells them
// apart, since javaast models both with the same node kind.
var typeContextKinds = map[javaast.Kind]bool{
	javaast.KindVariableDecl:        true,
	javaast.KindMethodDecl:          true,
	javaast.KindClassDecl:           true,
	javaast.KindArrayType:           true,
	javaast.KindParameterizedType:   true,
	javaast.KindCatch:               true,
	javaast.KindNewClass:            true,
	javaast.KindNewArray:            true,
	javaast.KindTypeCast:            true,
	javaast.KindInstanceof:          true,
	javaast.KindForEach:             true,
	javaast.KindWildcard:            true,
	javaast.KindMultiCatch:          true,
	javaast.KindLambda:              true,
	javaast.KindTypeParameter:       true,
}

// ChangeType rewrites every type reference resolving to from so it names to
// instead, preserving each site's qualification style, and keeps the
// compilation unit's imports consistent: the import for from is dropped once
// nothing references it, and an import for to is added if its package isn't
// already in scope.
func ChangeType(from, to string) *visitor.Visitor {
	renamed := 0

	hooks := visitor.Hooks{
		javaast.KindIdentifier: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			id := n.(*javaast.Identifier)
			if !typeContextKinds[parentKind(cur)] {
				return n
			}
			if id.ResolvedType() == nil || id.ResolvedType().FQN() != from {
				return n
			}
			out := *id
			if isQualified(id.Name) {
				out.Name = to
			} else {
				out.Name = simpleName(to)
			}
			renamed++
			return &out
		},
		javaast.KindCompilationUnit: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			if renamed == 0 {
				return n
			}
			cu := n.(*javaast.CompilationUnit)
			out := *cu

			imports := make([]*javaast.ImportDecl, 0, len(out.Imports))
			for _, im := range out.Imports {
				if !im.Static && !im.Star && im.Qualified == from {
					continue
				}
				imports = append(imports, im)
			}
			out.Imports = imports

			if needsImportFor(&out, to) {
				out.Imports = append(out.Imports, &javaast.ImportDecl{
					Base:      javaast.NewBase(javaast.Infer()),
					Qualified: to,
				})
			}
			return &out
		},
	}
	return visitor.New(hooks)
}

func parentKind(cur *visitor.Cursor) javaast.Kind {
	p := cur.Parent()
	if p == nil {
		return -1
	}
	return p.Kind()
}

func isQualified(name string) bool {
	for _, r := range name {
		if r == '.' {
			return true
		}
	}
	return false
}

// needsImportFor reports whether clazz requires an explicit import to stay
// visible in cu: it doesn't if cu already imports it, lives in cu's own
// package, or is in java.lang.
func needsImportFor(cu *javaast.CompilationUnit, clazz string) bool {
	if javaast.HasImport(cu, clazz) {
		return false
	}
	pkg := packageOf(clazz)
	if pkg == "java.lang" {
		return false
	}
	if cu.Package != nil && cu.Package.Name == pkg {
		return false
	}
	return true
}
