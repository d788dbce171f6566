package javatype

import "sync"

// classIntern is the global concurrent map keyed by fully qualified name.
// Other type variants hold references to a *Class by this interned handle
// rather than owning their own copy, so identity comparison is valid.
var classIntern sync.Map // map[string]*Class

// Class is a resolved class, interface, enum, or annotation type.
type Class struct {
	fqn        string
	Owner      Owner
	Supertype  *Class
	Interfaces []*Class
	Members    []Type
}

func (*Class) typeMarker() {}

// FQN returns the class's fully qualified name.
func (c *Class) FQN() string { return c.fqn }

// Build interns a Class by fully qualified name: two calls with the same
// name return the identical *Class, so pointer equality doubles as FQN
// equality. Safe for concurrent use.
func Build(fqn string) *Class {
	if v, ok := classIntern.Load(fqn); ok {
		return v.(*Class)
	}
	c := &Class{fqn: fqn}
	actual, _ := classIntern.LoadOrStore(fqn, c)
	return actual.(*Class)
}

// WithSupertype sets the supertype on an interned class and returns it, for
// use by whatever constructs the resolved type graph (outside this
// package's scope: javatype only models the graph, it does not resolve it).
func (c *Class) WithSupertype(super *Class) *Class {
	c.Supertype = super
	return c
}

// WithInterfaces appends implemented/extended interfaces.
func (c *Class) WithInterfaces(ifaces ...*Class) *Class {
	c.Interfaces = append(c.Interfaces, ifaces...)
	return c
}

// Supertypes returns the immediate supertype and interfaces, in that order.
func (c *Class) Supertypes() []*Class {
	out := make([]*Class, 0, 1+len(c.Interfaces))
	if c.Supertype != nil {
		out = append(out, c.Supertype)
	}
	out = append(out, c.Interfaces...)
	return out
}

// Closure returns c and every class/interface reachable through its
// supertype and interface chains, c first.
func (c *Class) Closure() []*Class {
	seen := map[string]bool{c.fqn: true}
	out := []*Class{c}
	queue := c.Supertypes()
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil || seen[cur.fqn] {
			continue
		}
		seen[cur.fqn] = true
		out = append(out, cur)
		queue = append(queue, cur.Supertypes()...)
	}
	return out
}

// Method is a resolved method signature.
type Method struct {
	DeclaringType     *Class
	Name              string
	GenericSignature  string
	ResolvedSignature string
	ParamTypes        []Type
	ReturnType        Type
}

func (*Method) typeMarker() {}

// FQN returns declaring-type-qualified method name, e.g. "a.B#foo".
func (m *Method) FQN() string {
	if m.DeclaringType == nil {
		return m.Name
	}
	return m.DeclaringType.FQN() + "#" + m.Name
}

// Var is a resolved field or local-variable symbol.
type Var struct {
	Name  string
	Owner Owner
	Type  Type
}

func (*Var) typeMarker() {}

// FQN returns the variable's simple name; Vars are not globally interned.
func (v *Var) FQN() string { return v.Name }

func (*Class) ownerMarker() {}
