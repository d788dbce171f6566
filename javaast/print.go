package javaast

import (
	"strconv"
	"strings"

	"github.com/termfx/javarefactor/javatype"
)

// Print renders n to source text: each node's prefix, its tokens with the
// printer's fixed inner spacing, then its suffix. For a freshly parsed tree
// whose source uses that spacing, Print is the identity. For a transformed
// tree, Print is the identity over unchanged subtrees and yields the
// contracted textual form over replaced subtrees.
func Print(n Node) string {
	var p printer
	p.node(n)
	return p.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) raw(s string) { p.b.WriteString(s) }

// node prints a single node: reified prefix, kind-specific tokens, reified
// suffix. Infer formatting is reified and memoized onto the node.
func (p *printer) node(n Node) {
	if n == nil {
		return
	}
	f := n.Formatting()
	if f.Kind == FormattingInfer {
		f = reify(f, " ", "", "")
		if setter, ok := n.(formatSetter); ok {
			setter.setFormatting(f)
		}
	}
	p.raw(f.Prefix)
	p.tokens(n)
	p.raw(f.Suffix)
}

// list prints each element of ns separated by sep, with no leading/trailing
// separator.
func (p *printer) list(ns []Node, sep string) {
	for i, n := range ns {
		if i > 0 {
			p.raw(sep)
		}
		p.node(n)
	}
}

// parameter prints a formal parameter. Parameter is not itself a Node (it
// has no Kind; it only ever appears nested inside MethodDecl, Lambda, and
// Catch), so it carries its own formatting reification here rather than
// going through node/tokens.
func (p *printer) parameter(param *Parameter) {
	if param == nil {
		return
	}
	f := param.Formatting()
	if f.Kind == FormattingInfer {
		f = reify(f, " ", "", "")
		param.setFormatting(f)
	}
	p.raw(f.Prefix)
	for _, m := range param.Modifiers.Tokens() {
		p.raw(m)
		p.raw(" ")
	}
	p.node(param.Type)
	if param.Varargs {
		p.raw("...")
	}
	p.raw(" ")
	p.raw(param.Name)
	p.raw(f.Suffix)
}

// declarator prints one `name[] [= init]` entry of a VariableDecl. Like
// Parameter, VariableDeclarator has no Kind and is never reached via node.
func (p *printer) declarator(d *VariableDeclarator) {
	if d == nil {
		return
	}
	f := d.Formatting()
	if f.Kind == FormattingInfer {
		f = reify(f, "", "", "")
		d.setFormatting(f)
	}
	p.raw(f.Prefix)
	p.raw(d.Name)
	for range d.ExtraDims {
		p.raw("[]")
	}
	if d.Initializer != nil {
		p.raw(" = ")
		p.node(d.Initializer)
	}
	p.raw(f.Suffix)
}

func (p *printer) tokens(n Node) {
	switch v := n.(type) {
	case *CompilationUnit:
		if v.Package != nil {
			p.node(v.Package)
		}
		for _, im := range v.Imports {
			p.node(im)
		}
		for _, t := range v.Types {
			p.node(t)
		}

	case *PackageDecl:
		for _, a := range v.Annotations {
			p.node(a)
		}
		p.raw("package ")
		p.raw(v.Name)
		p.raw(";")

	case *ImportDecl:
		p.raw("import ")
		if v.Static {
			p.raw("static ")
		}
		p.raw(v.Qualified)
		if v.Star {
			p.raw(".*")
		}
		p.raw(";")

	case *Annotation:
		p.raw("@")
		p.raw(v.Name)
		if len(v.Args) > 0 {
			p.raw("(")
			p.list(v.Args, ", ")
			p.raw(")")
		}

	case *TypeParameter:
		p.raw(v.Name)
		if len(v.Bounds) > 0 {
			p.raw(" extends ")
			p.list(v.Bounds, " & ")
		}

	case *ClassDecl:
		for _, a := range v.Annotations {
			p.node(a)
		}
		for _, m := range v.Modifiers.Tokens() {
			p.raw(m)
			p.raw(" ")
		}
		p.raw(v.ClassKind.keyword())
		p.raw(" ")
		p.raw(v.Name)
		if len(v.TypeParams) > 0 {
			p.raw("<")
			for i, tp := range v.TypeParams {
				if i > 0 {
					p.raw(", ")
				}
				p.node(tp)
			}
			p.raw(">")
		}
		if v.Extends != nil {
			p.raw(" extends ")
			p.node(v.Extends)
		}
		if len(v.Implements) > 0 {
			if v.ClassKind == ClassKindInterface {
				p.raw(" extends ")
			} else {
				p.raw(" implements ")
			}
			p.list(v.Implements, ", ")
		}
		p.raw(" {")
		for _, m := range v.Members {
			p.node(m)
		}
		p.raw("}")

	case *MethodDecl:
		for _, a := range v.Annotations {
			p.node(a)
		}
		for _, m := range v.Modifiers.Tokens() {
			p.raw(m)
			p.raw(" ")
		}
		if len(v.TypeParams) > 0 {
			p.raw("<")
			for i, tp := range v.TypeParams {
				if i > 0 {
					p.raw(", ")
				}
				p.node(tp)
			}
			p.raw("> ")
		}
		if v.ReturnType != nil {
			p.node(v.ReturnType)
			p.raw(" ")
		}
		p.raw(v.Name)
		p.raw("(")
		for i, param := range v.Params {
			if i > 0 {
				p.raw(", ")
			}
			p.parameter(param)
		}
		p.raw(")")
		if len(v.Throws) > 0 {
			p.raw(" throws ")
			p.list(v.Throws, ", ")
		}
		if v.Body != nil {
			p.raw(" ")
			p.node(v.Body)
		} else {
			p.raw(";")
		}

	case *VariableDecl:
		for _, a := range v.Annotations {
			p.node(a)
		}
		for _, m := range v.Modifiers.Tokens() {
			p.raw(m)
			p.raw(" ")
		}
		p.node(v.Type)
		p.raw(" ")
		for i, d := range v.Declarators {
			if i > 0 {
				p.raw(", ")
			}
			p.declarator(d)
		}
		p.raw(";")

	case *Block:
		p.raw("{")
		for _, s := range v.Statements {
			p.node(s)
		}
		p.raw("}")

	case *ArrayAccess:
		p.node(v.Array)
		p.raw("[")
		p.node(v.Index)
		p.raw("]")

	case *ArrayType:
		p.node(v.Element)
		p.raw("[]")

	case *Assign:
		p.node(v.Target)
		p.raw(" = ")
		p.node(v.Value)

	case *CompoundAssign:
		p.node(v.Target)
		p.raw(" ")
		p.raw(v.Op.Token())
		p.raw(" ")
		p.node(v.Value)

	case *Binary:
		p.node(v.Left)
		p.raw(" ")
		p.raw(v.Op.Token())
		p.raw(" ")
		p.node(v.Right)

	case *Break:
		p.raw("break")
		if v.Label != "" {
			p.raw(" ")
			p.raw(v.Label)
		}
		p.raw(";")

	case *Case:
		if v.IsDefault {
			p.raw("default")
		} else {
			p.raw("case ")
			p.list(v.Labels, ", ")
		}
		if v.IsArrow {
			p.raw(" -> ")
		} else {
			p.raw(":")
		}
		for _, s := range v.Statements {
			p.node(s)
		}

	case *Catch:
		p.raw("catch (")
		p.parameter(v.Param)
		p.raw(") ")
		p.node(v.Body)

	case *Continue:
		p.raw("continue")
		if v.Label != "" {
			p.raw(" ")
			p.raw(v.Label)
		}
		p.raw(";")

	case *DoWhile:
		p.raw("do ")
		p.node(v.Body)
		p.raw(" while (")
		p.node(v.Condition)
		p.raw(");")

	case *Empty:
		p.raw(";")

	case *EnumValue:
		for _, a := range v.Annotations {
			p.node(a)
		}
		p.raw(v.Name)
		if len(v.Args) > 0 {
			p.raw("(")
			p.list(v.Args, ", ")
			p.raw(")")
		}
		if v.AnonymousBody != nil {
			p.raw(" {")
			for _, m := range v.AnonymousBody {
				p.node(m)
			}
			p.raw("}")
		}

	case *FieldAccess:
		p.node(v.Target)
		p.raw(".")
		p.raw(v.Name)

	case *ForEach:
		p.raw("for (")
		p.node(v.VarType)
		p.raw(" ")
		p.raw(v.VarName)
		p.raw(" : ")
		p.node(v.Iterable)
		p.raw(") ")
		p.node(v.Body)

	case *For:
		p.raw("for (")
		p.list(v.Init, ", ")
		p.raw("; ")
		p.node(v.Condition)
		p.raw("; ")
		p.list(v.Update, ", ")
		p.raw(") ")
		p.node(v.Body)

	case *Identifier:
		p.raw(v.Name)

	case *If:
		p.raw("if (")
		p.node(v.Condition)
		p.raw(") ")
		p.node(v.Then)
		if v.Else != nil {
			p.raw(" else ")
			p.node(v.Else)
		}

	case *Instanceof:
		p.node(v.Value)
		p.raw(" instanceof ")
		p.node(v.Type)
		if v.Binding != "" {
			p.raw(" ")
			p.raw(v.Binding)
		}

	case *Label:
		p.raw(v.Name)
		p.raw(": ")
		p.node(v.Statement)

	case *Lambda:
		p.raw("(")
		for i, param := range v.Params {
			if i > 0 {
				p.raw(", ")
			}
			p.parameter(param)
		}
		p.raw(") -> ")
		p.node(v.Body)

	case *Literal:
		p.raw(literalText(v))

	case *MethodInvocation:
		if v.Target != nil {
			p.node(v.Target)
			p.raw(".")
		}
		if len(v.TypeArgs) > 0 {
			p.raw("<")
			p.list(v.TypeArgs, ", ")
			p.raw(">")
		}
		p.raw(v.Name)
		p.raw("(")
		p.list(v.Args, ", ")
		p.raw(")")

	case *MultiCatch:
		p.list(v.Alternatives, " | ")

	case *NewArray:
		p.raw("new ")
		p.node(v.ElementType)
		if v.Initializer != nil {
			for range v.Dimensions {
				p.raw("[]")
			}
			for range v.ExtraDims {
				p.raw("[]")
			}
			p.raw(" {")
			p.list(v.Initializer, ", ")
			p.raw("}")
			return
		}
		for _, d := range v.Dimensions {
			p.raw("[")
			p.node(d)
			p.raw("]")
		}
		for range v.ExtraDims {
			p.raw("[]")
		}

	case *NewClass:
		if v.EnclosingExpr != nil {
			p.node(v.EnclosingExpr)
			p.raw(".")
		}
		p.raw("new ")
		p.node(v.Type)
		p.raw("(")
		p.list(v.Args, ", ")
		p.raw(")")
		if v.AnonymousBody != nil {
			p.raw(" {")
			for _, m := range v.AnonymousBody {
				p.node(m)
			}
			p.raw("}")
		}

	case *ParameterizedType:
		p.node(v.Raw)
		p.raw("<")
		p.list(v.Args, ", ")
		p.raw(">")

	case *Parentheses:
		p.raw("(")
		p.node(v.Inner)
		p.raw(")")

	case *PrimitiveType:
		p.raw(v.Tag.String())

	case *Return:
		p.raw("return")
		if v.Value != nil {
			p.raw(" ")
			p.node(v.Value)
		}
		p.raw(";")

	case *Switch:
		p.raw("switch (")
		p.node(v.Selector)
		p.raw(") {")
		for _, c := range v.Cases {
			p.node(c)
		}
		p.raw("}")

	case *Synchronized:
		p.raw("synchronized (")
		p.node(v.Lock)
		p.raw(") ")
		p.node(v.Body)

	case *Ternary:
		p.node(v.Condition)
		p.raw(" ? ")
		p.node(v.Then)
		p.raw(" : ")
		p.node(v.Else)

	case *Throw:
		p.raw("throw ")
		p.node(v.Value)
		p.raw(";")

	case *Try:
		p.raw("try ")
		if len(v.Resources) > 0 {
			p.raw("(")
			p.list(v.Resources, "; ")
			p.raw(") ")
		}
		p.node(v.Body)
		for _, c := range v.Catches {
			p.raw(" ")
			p.node(c)
		}
		if v.Finally != nil {
			p.raw(" finally ")
			p.node(v.Finally)
		}

	case *TypeCast:
		p.raw("(")
		p.node(v.Type)
		p.raw(") ")
		p.node(v.Value)

	case *Unary:
		if v.Op.IsPostfix() {
			p.node(v.Operand)
			p.raw(v.Op.Token())
		} else {
			p.raw(v.Op.Token())
			p.node(v.Operand)
		}

	case *While:
		p.raw("while (")
		p.node(v.Condition)
		p.raw(") ")
		p.node(v.Body)

	case *Wildcard:
		p.raw("?")
		if v.Extends != nil {
			p.raw(" extends ")
			p.node(v.Extends)
		}
		if v.Super != nil {
			p.raw(" super ")
			p.node(v.Super)
		}

	default:
		// Unknown node kind: nothing further to print beyond its
		// formatting. Reaching this indicates a new Node implementation
		// was added without a corresponding print case.
	}
}

// literalText recomputes the source form of a literal from its resolved
// value and type tag.
func literalText(l *Literal) string {
	switch l.Tag {
	case javatype.PrimitiveNone:
		return ""
	case javatype.PrimitiveBoolean:
		if b, ok := l.Value.(bool); ok && b {
			return "true"
		}
		return "false"
	case javatype.PrimitiveChar:
		r, _ := l.Value.(rune)
		return "'" + escapeChar(r) + "'"
	case javatype.PrimitiveString:
		s, _ := l.Value.(string)
		return "\"" + escapeString(s) + "\""
	case javatype.PrimitiveNull:
		return "null"
	case javatype.PrimitiveWildcard:
		return "*"
	default: // numeric tags
		return numericText(l)
	}
}

func numericText(l *Literal) string {
	switch v := l.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10) + l.Suffix
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64) + l.Suffix
	default:
		return ""
	}
}

// escapeChar escapes r for a single-quoted char literal. Two exceptions to
// normal Java escaping apply here: a double-quote re-escapes to a bare `"`
// and a forward slash to a bare `/`.
func escapeChar(r rune) string {
	switch r {
	case '\'':
		return "\\'"
	case '\\':
		return "\\\\"
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	case '\r':
		return "\\r"
	case '"':
		return "\""
	case '/':
		return "/"
	default:
		return string(r)
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

