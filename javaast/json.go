package javaast

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/termfx/javarefactor/javatype"
)

// Package-level serialization support: a tree is rendered as one envelope
// per node, carrying a "kind" discriminator, its reified Formatting, and
// its own fields recursively. This is the wire format an external loader
// produces to hand a pre-parsed, pre-resolved compilation unit to this
// module without going through a parser of its own (this module has no
// Java parser). Fields that cache semantic resolution not re-derivable
// from syntax alone (MethodDecl and MethodInvocation's Resolved method
// binding) are dropped on encode and left nil on decode, exactly as they
// would be on a tree that has not been resolved yet.

// baseHolder is satisfied by the pointer type of every node kind (via
// Base's promoted methods) and by Parameter/VariableDeclarator, which
// carry their own Formatting despite having no Kind.
type baseHolder interface {
	Formatting() Formatting
	setBase(Base)
}

func (b *Base) setBase(nb Base) { *b = nb }

// typeSetter is satisfied by every typedBase-embedding node, letting the
// decoder restore a resolved type without reaching into an unexported
// field.
type typeSetter interface {
	setResolvedType(javatype.Type)
}

func (t *typedBase) setResolvedType(ty javatype.Type) { t.Type = ty }

var (
	nodeInterfaceType = reflect.TypeOf((*Node)(nil)).Elem()
	baseHolderType    = reflect.TypeOf((*baseHolder)(nil)).Elem()
)

// nodeKindFactories maps a wire "kind" string to a zero-value constructor.
// Keys match Kind.String() for real node kinds; Parameter and
// VariableDeclarator have no Kind, so they're keyed by their Go type name.
var nodeKindFactories = map[string]func() any{
	"CompilationUnit":    func() any { return &CompilationUnit{} },
	"Package":            func() any { return &PackageDecl{} },
	"Import":             func() any { return &ImportDecl{} },
	"ClassDecl":          func() any { return &ClassDecl{} },
	"MethodDecl":         func() any { return &MethodDecl{} },
	"VariableDecl":       func() any { return &VariableDecl{} },
	"Block":              func() any { return &Block{} },
	"Annotation":         func() any { return &Annotation{} },
	"ArrayAccess":        func() any { return &ArrayAccess{} },
	"ArrayType":          func() any { return &ArrayType{} },
	"Assign":             func() any { return &Assign{} },
	"CompoundAssign":     func() any { return &CompoundAssign{} },
	"Binary":             func() any { return &Binary{} },
	"Break":              func() any { return &Break{} },
	"Case":               func() any { return &Case{} },
	"Catch":              func() any { return &Catch{} },
	"Continue":           func() any { return &Continue{} },
	"DoWhile":            func() any { return &DoWhile{} },
	"Empty":              func() any { return &Empty{} },
	"EnumValue":          func() any { return &EnumValue{} },
	"FieldAccess":        func() any { return &FieldAccess{} },
	"ForEach":            func() any { return &ForEach{} },
	"For":                func() any { return &For{} },
	"Identifier":         func() any { return &Identifier{} },
	"If":                 func() any { return &If{} },
	"Instanceof":         func() any { return &Instanceof{} },
	"Label":              func() any { return &Label{} },
	"Lambda":             func() any { return &Lambda{} },
	"Literal":            func() any { return &Literal{} },
	"MethodInvocation":   func() any { return &MethodInvocation{} },
	"MultiCatch":         func() any { return &MultiCatch{} },
	"NewArray":           func() any { return &NewArray{} },
	"NewClass":           func() any { return &NewClass{} },
	"ParameterizedType":  func() any { return &ParameterizedType{} },
	"Parentheses":        func() any { return &Parentheses{} },
	"PrimitiveType":      func() any { return &PrimitiveType{} },
	"Return":             func() any { return &Return{} },
	"Switch":             func() any { return &Switch{} },
	"Synchronized":       func() any { return &Synchronized{} },
	"Ternary":            func() any { return &Ternary{} },
	"Throw":              func() any { return &Throw{} },
	"Try":                func() any { return &Try{} },
	"TypeCast":           func() any { return &TypeCast{} },
	"TypeParameter":      func() any { return &TypeParameter{} },
	"Unary":              func() any { return &Unary{} },
	"While":              func() any { return &While{} },
	"Wildcard":           func() any { return &Wildcard{} },
	"Parameter":          func() any { return &Parameter{} },
	"VariableDeclarator": func() any { return &VariableDeclarator{} },
}

// MarshalNode renders n as the node-envelope wire format described above.
func MarshalNode(n Node) ([]byte, error) {
	v, err := encodeValue(reflect.ValueOf(n))
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// MarshalCompilationUnit renders cu in the same wire format as MarshalNode;
// it is the counterpart of UnmarshalCompilationUnit.
func MarshalCompilationUnit(cu *CompilationUnit) ([]byte, error) {
	return MarshalNode(cu)
}

// UnmarshalNode parses data produced by MarshalNode.
func UnmarshalNode(data []byte) (Node, error) {
	return decodeNode(json.RawMessage(data))
}

// UnmarshalCompilationUnit is the usual entry point for a CLI or test that
// loads one pre-parsed compilation unit from disk.
func UnmarshalCompilationUnit(data []byte) (*CompilationUnit, error) {
	n, err := UnmarshalNode(data)
	if err != nil {
		return nil, err
	}
	cu, ok := n.(*CompilationUnit)
	if !ok {
		return nil, fmt.Errorf("javaast: decoded root is %s, not CompilationUnit", n.Kind())
	}
	return cu, nil
}

func isWrappableType(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && t.Implements(baseHolderType)
}

func encodeValue(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		if isWrappableType(rv.Type()) {
			return encodeWrapped(rv)
		}
		return encodeValue(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem())
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := encodeValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return rv.Interface(), nil
	}
}

func encodeWrapped(rv reflect.Value) (any, error) {
	holder := rv.Interface().(baseHolder)
	fields, err := encodeStruct(rv.Elem())
	if err != nil {
		return nil, err
	}

	kind := rv.Type().Elem().Name()
	if n, ok := rv.Interface().(Node); ok {
		kind = n.Kind().String()
	}

	m := map[string]any{
		"kind":       kind,
		"formatting": holder.Formatting(),
		"fields":     fields,
	}
	if t, ok := rv.Interface().(Typed); ok {
		if rt := t.ResolvedType(); rt != nil {
			m["resolvedType"] = rt.FQN()
		}
	}
	return m, nil
}

func encodeStruct(rv reflect.Value) (map[string]any, error) {
	t := rv.Type()
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || f.PkgPath != "" || f.Name == "Resolved" {
			continue
		}
		val, err := encodeValue(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("javaast: encode field %s.%s: %w", t.Name(), f.Name, err)
		}
		out[f.Name] = val
	}
	return out, nil
}

type wireEnvelope struct {
	Kind         string                     `json:"kind"`
	Formatting   Formatting                 `json:"formatting"`
	Fields       map[string]json.RawMessage `json:"fields"`
	ResolvedType string                     `json:"resolvedType"`
}

func decodeNode(raw json.RawMessage) (Node, error) {
	v, err := decodeWrapped(raw)
	if err != nil || v == nil {
		return nil, err
	}
	n, ok := v.(Node)
	if !ok {
		return nil, fmt.Errorf("javaast: %T does not implement Node", v)
	}
	return n, nil
}

func decodeWrapped(raw json.RawMessage) (any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env wireEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	factory, ok := nodeKindFactories[env.Kind]
	if !ok {
		return nil, fmt.Errorf("javaast: unknown node kind %q", env.Kind)
	}

	instance := factory()
	if bh, ok := instance.(baseHolder); ok {
		bh.setBase(NewBase(env.Formatting))
	}

	rv := reflect.ValueOf(instance).Elem()
	if err := decodeStructFields(rv, env.Fields); err != nil {
		return nil, err
	}

	if env.ResolvedType != "" {
		if ts, ok := instance.(typeSetter); ok {
			ts.setResolvedType(javatype.Build(env.ResolvedType))
		}
	}
	if lit, ok := instance.(*Literal); ok {
		fixupLiteralValue(lit)
	}
	return instance, nil
}

func decodeStructFields(rv reflect.Value, raw map[string]json.RawMessage) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || f.PkgPath != "" || f.Name == "Resolved" {
			continue
		}
		data, ok := raw[f.Name]
		if !ok {
			continue
		}
		if err := decodeValue(rv.Field(i), data); err != nil {
			return fmt.Errorf("javaast: decode field %s.%s: %w", t.Name(), f.Name, err)
		}
	}
	return nil
}

func decodeValue(fv reflect.Value, raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	t := fv.Type()

	switch {
	case t == nodeInterfaceType:
		n, err := decodeNode(raw)
		if err != nil {
			return err
		}
		if n != nil {
			fv.Set(reflect.ValueOf(n))
		}
		return nil

	case t.Kind() == reflect.Ptr && isWrappableType(t):
		v, err := decodeWrapped(raw)
		if err != nil {
			return err
		}
		if v != nil {
			fv.Set(reflect.ValueOf(v).Convert(t))
		}
		return nil

	case t.Kind() == reflect.Interface:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v != nil {
			fv.Set(reflect.ValueOf(v))
		}
		return nil

	case t.Kind() == reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		out := reflect.MakeSlice(t, len(items), len(items))
		for i, item := range items {
			if err := decodeValue(out.Index(i), item); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil

	default:
		return json.Unmarshal(raw, fv.Addr().Interface())
	}
}

// fixupLiteralValue restores Value's concrete Go type from Tag: the
// generic decoder above lands every JSON number in a float64, but
// literalText type-switches on int64/float64/rune/bool/string.
func fixupLiteralValue(l *Literal) {
	f, isFloat := l.Value.(float64)
	if !isFloat {
		return
	}
	switch l.Tag {
	case javatype.PrimitiveChar:
		l.Value = rune(int64(f))
	case javatype.PrimitiveByte, javatype.PrimitiveShort, javatype.PrimitiveInt, javatype.PrimitiveLong:
		l.Value = int64(f)
	case javatype.PrimitiveFloat, javatype.PrimitiveDouble:
		l.Value = f
	}
}
