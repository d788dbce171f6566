// Package visitor implements the depth-first, cursor-aware tree traversal
// that refactors are built on: one optional hook per node kind, an explicit
// ancestor stack available to every hook, and post-order reassembly so a
// parent's hook sees its children already transformed.
package visitor

import "github.com/termfx/javarefactor/javaast"

// Cursor is the ancestor stack maintained by a traversal. It is pushed
// before a node's children are visited and popped afterward regardless of
// how the hook returns, so a panic-free hook never leaves it unbalanced.
type Cursor struct {
	stack []javaast.Node
}

func (c *Cursor) push(n javaast.Node) { c.stack = append(c.stack, n) }

func (c *Cursor) pop() { c.stack = c.stack[:len(c.stack)-1] }

// Current returns the node whose hook is presently running.
func (c *Cursor) Current() javaast.Node {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Parent returns the immediate ancestor of Current, or nil at the root.
func (c *Cursor) Parent() javaast.Node {
	if len(c.stack) < 2 {
		return nil
	}
	return c.stack[len(c.stack)-2]
}

// Ancestors returns the full root-to-current path, root first, including
// the node whose hook is presently running.
func (c *Cursor) Ancestors() []javaast.Node {
	out := make([]javaast.Node, len(c.stack))
	copy(out, c.stack)
	return out
}

// IsScopeInCursorPath reports whether id names a node currently on the
// stack, the guard scoped visitors use to no-op outside their anchor.
func (c *Cursor) IsScopeInCursorPath(id javaast.NodeID) bool {
	for _, n := range c.stack {
		if n != nil && n.ID() == id {
			return true
		}
	}
	return false
}

// Hook transforms a node after its children have already been visited and
// possibly replaced. It returns the node to keep in that position: the same
// node for no change, a different node to rewrite it, or nil to delete it
// from its parent (a slice field drops it; a singular field is cleared).
type Hook func(cur *Cursor, n javaast.Node) javaast.Node

// Hooks maps a node kind to the behavior that runs on every node of that
// kind. A kind with no entry is transparent: its children are still visited,
// but the node itself passes through unchanged.
type Hooks map[javaast.Kind]Hook

// Visitor runs one set of Hooks over a tree.
type Visitor struct {
	Hooks Hooks
}

// New builds a Visitor from the given hooks.
func New(hooks Hooks) *Visitor {
	return &Visitor{Hooks: hooks}
}

// Run applies v to root and returns the resulting tree. Traversal is
// depth-first with children visited in source order; a hook for a given
// kind runs only after every child of that node has already been visited
// and (if rewriting) replaced.
func (v *Visitor) Run(root javaast.Node) javaast.Node {
	c := &Cursor{}
	return v.visit(c, root)
}

func (v *Visitor) visit(c *Cursor, n javaast.Node) javaast.Node {
	if n == nil {
		return nil
	}
	c.push(n)
	rewritten := rewriteChildren(n, func(child javaast.Node) javaast.Node {
		return v.visit(c, child)
	})
	if rewritten == nil {
		c.pop()
		return nil
	}
	if hook, ok := v.Hooks[rewritten.Kind()]; ok {
		rewritten = hook(c, rewritten)
	}
	c.pop()
	return rewritten
}

// Fold builds one scoped visitor per anchor id by calling factory, and runs
// each in turn over root, threading the (possibly rewritten) tree from one
// scoped visitor into the next.
func Fold(root javaast.Node, anchors []javaast.NodeID, factory func(anchor javaast.NodeID) *Visitor) javaast.Node {
	cur := root
	for _, anchor := range anchors {
		cur = factory(anchor).Run(cur)
	}
	return cur
}

// rewriteOne runs rewrite on v and asserts the result back to T. A nil
// result (deletion) or a result of an unexpected type yields ok=false.
func rewriteOne[T javaast.Node](v T, rewrite func(javaast.Node) javaast.Node) (T, bool) {
	r := rewrite(v)
	if r == nil {
		var zero T
		return zero, false
	}
	t, ok := r.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return t, true
}

// rewriteSlice runs rewrite on every element of items, dropping elements
// that are deleted or change kind entirely.
func rewriteSlice[T javaast.Node](items []T, rewrite func(javaast.Node) javaast.Node) []T {
	if items == nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if t, ok := rewriteOne[T](it, rewrite); ok {
			out = append(out, t)
		}
	}
	return out
}

// rewritePtr is rewriteOne guarded for an optional concrete-pointer field:
// nil in, nil out, with no call into rewrite (a nil *PackageDecl or *Block
// boxed into a Node is a non-nil interface and would otherwise be
// dereferenced).
func rewritePtr[T javaast.Node](p T, isNil bool, rewrite func(javaast.Node) javaast.Node) T {
	if isNil {
		return p
	}
	if t, ok := rewriteOne[T](p, rewrite); ok {
		return t
	}
	var zero T
	return zero
}

func rewriteParameter(p *javaast.Parameter, rewrite func(javaast.Node) javaast.Node) *javaast.Parameter {
	if p == nil {
		return nil
	}
	out := *p
	out.Type = rewrite(out.Type)
	return &out
}

func rewriteParameters(ps []*javaast.Parameter, rewrite func(javaast.Node) javaast.Node) []*javaast.Parameter {
	if ps == nil {
		return nil
	}
	out := make([]*javaast.Parameter, len(ps))
	for i, p := range ps {
		out[i] = rewriteParameter(p, rewrite)
	}
	return out
}

func rewriteDeclarator(d *javaast.VariableDeclarator, rewrite func(javaast.Node) javaast.Node) *javaast.VariableDeclarator {
	if d == nil {
		return nil
	}
	out := *d
	out.Initializer = rewrite(out.Initializer)
	return &out
}

func rewriteDeclarators(ds []*javaast.VariableDeclarator, rewrite func(javaast.Node) javaast.Node) []*javaast.VariableDeclarator {
	if ds == nil {
		return nil
	}
	out := make([]*javaast.VariableDeclarator, len(ds))
	for i, d := range ds {
		out[i] = rewriteDeclarator(d, rewrite)
	}
	return out
}

// rewriteChildren returns a shallow copy of n with every Node-valued field
// replaced by the result of rewrite, enabling post-order reassembly without
// every node kind needing its own Visitor method.
func rewriteChildren(n javaast.Node, rewrite func(javaast.Node) javaast.Node) javaast.Node {
	switch v := n.(type) {
	case *javaast.CompilationUnit:
		out := *v
		out.Package = rewritePtr(out.Package, out.Package == nil, rewrite)
		out.Imports = rewriteSlice(out.Imports, rewrite)
		out.Types = rewriteSlice(out.Types, rewrite)
		return &out
	case *javaast.PackageDecl:
		out := *v
		out.Annotations = rewriteSlice(out.Annotations, rewrite)
		return &out
	case *javaast.ImportDecl:
		out := *v
		return &out
	case *javaast.Annotation:
		out := *v
		out.Args = rewriteSlice(out.Args, rewrite)
		return &out
	case *javaast.TypeParameter:
		out := *v
		out.Bounds = rewriteSlice(out.Bounds, rewrite)
		return &out
	case *javaast.ClassDecl:
		out := *v
		out.Annotations = rewriteSlice(out.Annotations, rewrite)
		out.TypeParams = rewriteSlice(out.TypeParams, rewrite)
		out.Extends = rewrite(out.Extends)
		out.Implements = rewriteSlice(out.Implements, rewrite)
		out.Members = rewriteSlice(out.Members, rewrite)
		return &out
	case *javaast.MethodDecl:
		out := *v
		out.Annotations = rewriteSlice(out.Annotations, rewrite)
		out.TypeParams = rewriteSlice(out.TypeParams, rewrite)
		out.ReturnType = rewrite(out.ReturnType)
		out.Params = rewriteParameters(out.Params, rewrite)
		out.Throws = rewriteSlice(out.Throws, rewrite)
		out.Body = rewritePtr(out.Body, out.Body == nil, rewrite)
		return &out
	case *javaast.VariableDecl:
		out := *v
		out.Annotations = rewriteSlice(out.Annotations, rewrite)
		out.Type = rewrite(out.Type)
		out.Declarators = rewriteDeclarators(out.Declarators, rewrite)
		return &out
	case *javaast.Block:
		out := *v
		out.Statements = rewriteSlice(out.Statements, rewrite)
		return &out
	case *javaast.If:
		out := *v
		out.Condition = rewrite(out.Condition)
		out.Then = rewrite(out.Then)
		out.Else = rewrite(out.Else)
		return &out
	case *javaast.For:
		out := *v
		out.Init = rewriteSlice(out.Init, rewrite)
		out.Condition = rewrite(out.Condition)
		out.Update = rewriteSlice(out.Update, rewrite)
		out.Body = rewrite(out.Body)
		return &out
	case *javaast.ForEach:
		out := *v
		out.VarType = rewrite(out.VarType)
		out.Iterable = rewrite(out.Iterable)
		out.Body = rewrite(out.Body)
		return &out
	case *javaast.While:
		out := *v
		out.Condition = rewrite(out.Condition)
		out.Body = rewrite(out.Body)
		return &out
	case *javaast.DoWhile:
		out := *v
		out.Body = rewrite(out.Body)
		out.Condition = rewrite(out.Condition)
		return &out
	case *javaast.Case:
		out := *v
		out.Labels = rewriteSlice(out.Labels, rewrite)
		out.Statements = rewriteSlice(out.Statements, rewrite)
		return &out
	case *javaast.Switch:
		out := *v
		out.Selector = rewrite(out.Selector)
		out.Cases = rewriteSlice(out.Cases, rewrite)
		return &out
	case *javaast.Catch:
		out := *v
		out.Param = rewriteParameter(out.Param, rewrite)
		out.Body = rewritePtr(out.Body, out.Body == nil, rewrite)
		return &out
	case *javaast.MultiCatch:
		out := *v
		out.Alternatives = rewriteSlice(out.Alternatives, rewrite)
		return &out
	case *javaast.Try:
		out := *v
		out.Resources = rewriteSlice(out.Resources, rewrite)
		out.Body = rewritePtr(out.Body, out.Body == nil, rewrite)
		out.Catches = rewriteSlice(out.Catches, rewrite)
		out.Finally = rewritePtr(out.Finally, out.Finally == nil, rewrite)
		return &out
	case *javaast.Synchronized:
		out := *v
		out.Lock = rewrite(out.Lock)
		out.Body = rewritePtr(out.Body, out.Body == nil, rewrite)
		return &out
	case *javaast.Return:
		out := *v
		out.Value = rewrite(out.Value)
		return &out
	case *javaast.Throw:
		out := *v
		out.Value = rewrite(out.Value)
		return &out
	case *javaast.Label:
		out := *v
		out.Statement = rewrite(out.Statement)
		return &out
	case *javaast.Identifier:
		out := *v
		return &out
	case *javaast.Literal:
		out := *v
		return &out
	case *javaast.Binary:
		out := *v
		out.Left = rewrite(out.Left)
		out.Right = rewrite(out.Right)
		return &out
	case *javaast.Unary:
		out := *v
		out.Operand = rewrite(out.Operand)
		return &out
	case *javaast.Assign:
		out := *v
		out.Target = rewrite(out.Target)
		out.Value = rewrite(out.Value)
		return &out
	case *javaast.CompoundAssign:
		out := *v
		out.Target = rewrite(out.Target)
		out.Value = rewrite(out.Value)
		return &out
	case *javaast.Ternary:
		out := *v
		out.Condition = rewrite(out.Condition)
		out.Then = rewrite(out.Then)
		out.Else = rewrite(out.Else)
		return &out
	case *javaast.Instanceof:
		out := *v
		out.Value = rewrite(out.Value)
		out.Type = rewrite(out.Type)
		return &out
	case *javaast.Lambda:
		out := *v
		out.Params = rewriteParameters(out.Params, rewrite)
		out.Body = rewrite(out.Body)
		return &out
	case *javaast.MethodInvocation:
		out := *v
		out.Target = rewrite(out.Target)
		out.TypeArgs = rewriteSlice(out.TypeArgs, rewrite)
		out.Args = rewriteSlice(out.Args, rewrite)
		return &out
	case *javaast.FieldAccess:
		out := *v
		out.Target = rewrite(out.Target)
		return &out
	case *javaast.ArrayAccess:
		out := *v
		out.Array = rewrite(out.Array)
		out.Index = rewrite(out.Index)
		return &out
	case *javaast.NewClass:
		out := *v
		out.EnclosingExpr = rewrite(out.EnclosingExpr)
		out.Type = rewrite(out.Type)
		out.Args = rewriteSlice(out.Args, rewrite)
		out.AnonymousBody = rewriteSlice(out.AnonymousBody, rewrite)
		return &out
	case *javaast.NewArray:
		out := *v
		out.ElementType = rewrite(out.ElementType)
		out.Dimensions = rewriteSlice(out.Dimensions, rewrite)
		out.Initializer = rewriteSlice(out.Initializer, rewrite)
		return &out
	case *javaast.TypeCast:
		out := *v
		out.Type = rewrite(out.Type)
		out.Value = rewrite(out.Value)
		return &out
	case *javaast.Parentheses:
		out := *v
		out.Inner = rewrite(out.Inner)
		return &out
	case *javaast.EnumValue:
		out := *v
		out.Annotations = rewriteSlice(out.Annotations, rewrite)
		out.Args = rewriteSlice(out.Args, rewrite)
		out.AnonymousBody = rewriteSlice(out.AnonymousBody, rewrite)
		return &out
	case *javaast.PrimitiveType:
		out := *v
		return &out
	case *javaast.ArrayType:
		out := *v
		out.Element = rewrite(out.Element)
		return &out
	case *javaast.ParameterizedType:
		out := *v
		out.Raw = rewrite(out.Raw)
		out.Args = rewriteSlice(out.Args, rewrite)
		return &out
	case *javaast.Wildcard:
		out := *v
		out.Extends = rewrite(out.Extends)
		out.Super = rewrite(out.Super)
		return &out
	case *javaast.Break, *javaast.Continue, *javaast.Empty:
		return n
	default:
		return n
	}
}
