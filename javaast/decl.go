package javaast

import (
	"strings"

	"github.com/termfx/javarefactor/javatype"
)

// CompilationUnit is the tree rooted at a single source file.
type CompilationUnit struct {
	Base
	Package *PackageDecl // nil for the default package
	Imports []*ImportDecl
	Types   []*ClassDecl
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }

// PackageDecl is a `package a.b.c;` declaration.
type PackageDecl struct {
	Base
	Name        string
	Annotations []*Annotation
}

func (*PackageDecl) Kind() Kind { return KindPackage }

// ImportDecl is a single `import ...;` statement, single-type, on-demand
// (star), or static.
type ImportDecl struct {
	Base
	Static bool
	// Qualified is the import path without a trailing ".*", e.g. "a.A1" or
	// "a" (the on-demand package) or "a.B.method" (static named).
	Qualified string
	Star      bool
}

func (*ImportDecl) Kind() Kind { return KindImport }

// Target returns the type (or, for static imports, declaring-type) this
// import reaches into: the qualified path unchanged for single-type and star
// imports (Qualified already omits the ".*"), or with the last segment
// stripped for static-named imports (which name a member, not a type).
func (d *ImportDecl) Target() string {
	if d.Static && !d.Star {
		if i := strings.LastIndex(d.Qualified, "."); i >= 0 {
			return d.Qualified[:i]
		}
		return d.Qualified
	}
	return d.Qualified
}

// Member returns the simple member name for a static named import.
func (d *ImportDecl) Member() string {
	if i := strings.LastIndex(d.Qualified, "."); i >= 0 {
		return d.Qualified[i+1:]
	}
	return d.Qualified
}

// Matches reports whether this import brings clazz into scope: a
// single-type import whose qualified name equals clazz, or a star import
// whose target is clazz's package.
func (d *ImportDecl) Matches(clazz string) bool {
	if d.Static {
		return false
	}
	if d.Star {
		return packageOf(clazz) == d.Qualified
	}
	return d.Qualified == clazz
}

func packageOf(fqn string) string {
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[:i]
	}
	return ""
}

// Annotation is `@Name` or `@Name(args)`.
type Annotation struct {
	Base
	Name string
	Args []Node // AssignExpr for name=value pairs, or bare expressions
}

func (*Annotation) Kind() Kind { return KindAnnotation }

// TypeParameter is a single `<T extends Bound>` entry.
type TypeParameter struct {
	Base
	Name   string
	Bounds []Node // TypeRefs
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

// ClassDecl is a class, interface, enum, or annotation declaration.
type ClassDecl struct {
	Base
	ClassKind   ClassKind
	Modifiers   Modifier
	Annotations []*Annotation
	Name        string
	TypeParams  []*TypeParameter
	Extends     Node // TypeRef, nil if absent
	Implements  []Node
	Members     []Node // MethodDecl, VariableDecl, ClassDecl (nested), EnumValue, Block (initializers)
}

func (*ClassDecl) Kind() Kind { return KindClassDecl }

// Parameter is one formal parameter of a method or lambda.
type Parameter struct {
	Base
	Modifiers Modifier
	Type      Node // TypeRef, nil for lambdas with inferred types
	Varargs   bool
	Name      string
}

// MethodDecl is a method or constructor declaration.
type MethodDecl struct {
	Base
	Modifiers   Modifier
	Annotations []*Annotation
	TypeParams  []*TypeParameter
	ReturnType  Node // TypeRef, nil for constructors
	Name        string
	Params      []*Parameter
	Throws      []Node
	Body        *Block // nil for abstract/interface methods
	Resolved    *javatype.Method
}

func (*MethodDecl) Kind() Kind { return KindMethodDecl }

// VariableDeclarator is one `name = initializer` entry of a VariableDecl.
type VariableDeclarator struct {
	Base
	Name        string
	ExtraDims   int // trailing `[]` after the name, e.g. `int a[]`
	Initializer Node
}

// VariableDecl is a (possibly multi-variable) local variable, field, or
// for-loop init declaration.
type VariableDecl struct {
	Base
	Modifiers    Modifier
	Annotations  []*Annotation
	Type         Node // TypeRef
	Declarators  []*VariableDeclarator
	IsFieldOfCU  bool
}

func (*VariableDecl) Kind() Kind { return KindVariableDecl }
