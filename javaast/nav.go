package javaast

import "github.com/termfx/javarefactor/javatype"

// Walk visits n and every descendant in pre-order, calling fn on each. It is
// the structural traversal that navigation and matching helpers are built
// on; visitor.Visitor provides the ancestor-aware variant used by refactors.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range children(n) {
		Walk(c, fn)
	}
}

// children enumerates the direct Node-valued children of n, skipping any
// with no Kind (Parameter, VariableDeclarator) and descending into those
// through their own Node-valued fields.
func children(n Node) []Node {
	var out []Node
	add := func(ns ...Node) {
		for _, c := range ns {
			if c != nil {
				out = append(out, c)
			}
		}
	}
	addParam := func(p *Parameter) {
		if p != nil {
			add(p.Type)
		}
	}
	addDeclarator := func(d *VariableDeclarator) {
		if d != nil {
			add(d.Initializer)
		}
	}

	switch v := n.(type) {
	case *CompilationUnit:
		if v.Package != nil {
			add(v.Package)
		}
		for _, im := range v.Imports {
			add(im)
		}
		for _, t := range v.Types {
			add(t)
		}
	case *PackageDecl:
		for _, a := range v.Annotations {
			add(a)
		}
	case *Annotation:
		add(v.Args...)
	case *TypeParameter:
		add(v.Bounds...)
	case *ClassDecl:
		for _, a := range v.Annotations {
			add(a)
		}
		for _, tp := range v.TypeParams {
			add(tp)
		}
		add(v.Extends)
		add(v.Implements...)
		add(v.Members...)
	case *MethodDecl:
		for _, a := range v.Annotations {
			add(a)
		}
		for _, tp := range v.TypeParams {
			add(tp)
		}
		add(v.ReturnType)
		for _, p := range v.Params {
			addParam(p)
		}
		add(v.Throws...)
		if v.Body != nil {
			add(v.Body)
		}
	case *VariableDecl:
		for _, a := range v.Annotations {
			add(a)
		}
		add(v.Type)
		for _, d := range v.Declarators {
			addDeclarator(d)
		}
	case *Block:
		add(v.Statements...)
	case *ArrayAccess:
		add(v.Array, v.Index)
	case *ArrayType:
		add(v.Element)
	case *Assign:
		add(v.Target, v.Value)
	case *CompoundAssign:
		add(v.Target, v.Value)
	case *Binary:
		add(v.Left, v.Right)
	case *Case:
		add(v.Labels...)
		add(v.Statements...)
	case *Catch:
		addParam(v.Param)
		add(v.Body)
	case *DoWhile:
		add(v.Body, v.Condition)
	case *EnumValue:
		for _, a := range v.Annotations {
			add(a)
		}
		add(v.Args...)
		add(v.AnonymousBody...)
	case *FieldAccess:
		add(v.Target)
	case *ForEach:
		add(v.VarType, v.Iterable, v.Body)
	case *For:
		add(v.Init...)
		add(v.Condition)
		add(v.Update...)
		add(v.Body)
	case *If:
		add(v.Condition, v.Then, v.Else)
	case *Instanceof:
		add(v.Value, v.Type)
	case *Label:
		add(v.Statement)
	case *Lambda:
		for _, p := range v.Params {
			addParam(p)
		}
		add(v.Body)
	case *MethodInvocation:
		add(v.Target)
		add(v.TypeArgs...)
		add(v.Args...)
	case *MultiCatch:
		add(v.Alternatives...)
	case *NewArray:
		add(v.ElementType)
		add(v.Dimensions...)
		add(v.Initializer...)
	case *NewClass:
		add(v.EnclosingExpr, v.Type)
		add(v.Args...)
		add(v.AnonymousBody...)
	case *ParameterizedType:
		add(v.Raw)
		add(v.Args...)
	case *Parentheses:
		add(v.Inner)
	case *Return:
		add(v.Value)
	case *Switch:
		add(v.Selector)
		for _, c := range v.Cases {
			add(c)
		}
	case *Synchronized:
		add(v.Lock, v.Body)
	case *Ternary:
		add(v.Condition, v.Then, v.Else)
	case *Throw:
		add(v.Value)
	case *Try:
		add(v.Resources...)
		add(v.Body)
		for _, c := range v.Catches {
			add(c)
		}
		add(v.Finally)
	case *TypeCast:
		add(v.Type, v.Value)
	case *Unary:
		add(v.Operand)
	case *While:
		add(v.Condition, v.Body)
	case *Wildcard:
		add(v.Extends, v.Super)
	}
	return out
}

// SignatureMatcher decides whether one method invocation matches a signature.
type SignatureMatcher interface {
	Matches(inv *MethodInvocation) bool
}

// FindMethodCalls returns every MethodInvocation under root that the given
// signature matcher accepts. A nil matcher collects every invocation,
// resolved or not.
func FindMethodCalls(root Node, m SignatureMatcher) []*MethodInvocation {
	var out []*MethodInvocation
	Walk(root, func(n Node) {
		inv, ok := n.(*MethodInvocation)
		if !ok {
			return
		}
		if m == nil || m.Matches(inv) {
			out = append(out, inv)
		}
	})
	return out
}

// FindFields returns every field VariableDecl declared directly on cu's
// top-level and nested classes whose declared type FQN equals typeFQN.
func FindFields(cu *CompilationUnit, typeFQN string) []*VariableDecl {
	var out []*VariableDecl
	Walk(cu, func(n Node) {
		vd, ok := n.(*VariableDecl)
		if !ok || !vd.IsFieldOfCU {
			return
		}
		if t, ok := vd.Type.(Typed); ok && t.ResolvedType() != nil && t.ResolvedType().FQN() == typeFQN {
			out = append(out, vd)
		}
	})
	return out
}

// FindInheritedFields walks decl's resolved supertype closure and returns
// every *javatype.Var member whose declared type matches typeFQN. Unlike
// FindFields, this operates on the resolved type graph rather than syntax,
// since supertype bodies are not necessarily present in the same
// CompilationUnit.
func FindInheritedFields(decl *javatype.Class, typeFQN string) []*javatype.Var {
	var out []*javatype.Var
	for _, ancestor := range decl.Closure() {
		for _, m := range ancestor.Members {
			v, ok := m.(*javatype.Var)
			if !ok {
				continue
			}
			if v.Type != nil && v.Type.FQN() == typeFQN {
				out = append(out, v)
			}
		}
	}
	return out
}

// HasType reports whether any node in root carries a resolved type whose
// FQN equals typeFQN.
func HasType(root Node, typeFQN string) bool {
	found := false
	Walk(root, func(n Node) {
		if found {
			return
		}
		t, ok := n.(Typed)
		if !ok || t.ResolvedType() == nil {
			return
		}
		if t.ResolvedType().FQN() == typeFQN {
			found = true
		}
	})
	return found
}

// HasImport reports whether cu declares an import that matches clazz, per
// ImportDecl.Matches.
func HasImport(cu *CompilationUnit, clazz string) bool {
	for _, im := range cu.Imports {
		if im.Matches(clazz) {
			return true
		}
	}
	return false
}
