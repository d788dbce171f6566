package refactors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/javatype"
	"github.com/termfx/javarefactor/refactor"
	"github.com/termfx/javarefactor/refactors"
	"github.com/termfx/javarefactor/visitor"
)

// typedIdentifier builds an Identifier whose Base and resolved Type must be
// set after construction, since both live on javaast's unexported typedBase
// and so cannot be named in a composite literal from outside that package.
func typedIdentifier(name string, t javatype.Type) *javaast.Identifier {
	id := &javaast.Identifier{Name: name}
	id.Base = javaast.NewBase(javaast.None())
	id.Type = t
	return id
}

func TestChangeTypeRewritesArrayArgumentAndFlipsImport(t *testing.T) {
	classA1 := javatype.Build("a.A1")

	declType := typedIdentifier("A1", classA1)
	arrType := &javaast.ArrayType{Element: declType}
	arrType.Base = javaast.NewBase(javaast.None())

	newElemType := typedIdentifier("A1", classA1)
	sizeLit := &javaast.Literal{Tag: javatype.PrimitiveInt, Value: int64(0)}
	sizeLit.Base = javaast.NewBase(javaast.None())
	newArr := &javaast.NewArray{ElementType: newElemType, Dimensions: []javaast.Node{sizeLit}}
	newArr.Base = javaast.NewBase(javaast.None())

	declarator := &javaast.VariableDeclarator{Base: javaast.NewBase(javaast.None()), Name: "a", Initializer: newArr}
	varDecl := &javaast.VariableDecl{
		Base:        javaast.NewBase(javaast.None()),
		Type:        arrType,
		Declarators: []*javaast.VariableDeclarator{declarator},
	}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C", Members: []javaast.Node{varDecl}}
	imp := &javaast.ImportDecl{Base: javaast.NewBase(javaast.None()), Qualified: "a.A1"}
	cu := &javaast.CompilationUnit{
		Base:    javaast.NewBase(javaast.None()),
		Imports: []*javaast.ImportDecl{imp},
		Types:   []*javaast.ClassDecl{class},
	}

	source := javaast.Print(cu)
	require.Equal(t, "import a.A1;class C {A1[] a = new A1[0];}", source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)

	tx.Visit(refactors.ChangeType("a.A1", "a.A2"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.Len(t, result.Fixes, 3)

	fixed := result.Fixed.(*javaast.CompilationUnit)
	require.Len(t, fixed.Imports, 1)
	require.Equal(t, "a.A2", fixed.Imports[0].Qualified)
	require.Equal(t, " import a.A2;class C {A2[] a = new A2[0];}", javaast.Print(result.Fixed))
}

func TestChangeTypePreservesQualifiedStyle(t *testing.T) {
	classA1 := javatype.Build("a.A1")
	id := typedIdentifier("a.A1", classA1)

	declarator := &javaast.VariableDeclarator{Base: javaast.NewBase(javaast.None()), Name: "v"}
	varDecl := &javaast.VariableDecl{Base: javaast.NewBase(javaast.None()), Type: id, Declarators: []*javaast.VariableDeclarator{declarator}}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C", Members: []javaast.Node{varDecl}}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}

	source := javaast.Print(cu)
	require.Equal(t, "class C {a.A1 v;}", source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.ChangeType("a.A1", "a.A2"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.Equal(t, " import a.A2;class C {a.A2 v;}", javaast.Print(result.Fixed))
}

func TestChangeTypeNoOpWhenTypeNotReferenced(t *testing.T) {
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C"}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}
	source := javaast.Print(cu)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.ChangeType("a.A1", "a.A2"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.False(t, result.Changed)
	require.Empty(t, result.Fixes)
	require.Empty(t, result.Fixed.(*javaast.CompilationUnit).Imports)
}

func TestChangeMethodNameRenamesCallTargetOnly(t *testing.T) {
	classB := javatype.Build("a.B")
	typeB := typedIdentifier("B", classB)

	newB := &javaast.NewClass{Type: typeB}
	newB.Base = javaast.NewBase(javaast.None())

	arg := &javaast.Literal{Tag: javatype.PrimitiveString, Value: "boo"}
	arg.Base = javaast.NewBase(javaast.None())

	singleArg := &javatype.Method{
		DeclaringType: classB,
		Name:          "singleArg",
		ParamTypes:    []javatype.Type{javatype.Build("java.lang.String")},
	}
	inv := &javaast.MethodInvocation{Target: newB, Name: "singleArg", Args: []javaast.Node{arg}, Resolved: singleArg}
	inv.Base = javaast.NewBase(javaast.Reified("", ";"))

	body := &javaast.Block{Base: javaast.NewBase(javaast.None()), Statements: []javaast.Node{inv}}
	method := &javaast.MethodDecl{Base: javaast.NewBase(javaast.None()), Name: "run", Body: body}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "A", Members: []javaast.Node{method}}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}

	source := javaast.Print(cu)
	require.Equal(t, `class A {run() {new B().singleArg("boo");}}`, source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.ChangeMethodName(inv.ID(), "bar"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.Len(t, result.Fixes, 1)
	require.Equal(t, `class A {run() {new B().bar("boo");}}`, javaast.Print(result.Fixed))
}

func TestChangeLiteralPreservesNumericSuffix(t *testing.T) {
	lit := &javaast.Literal{Tag: javatype.PrimitiveLong, Value: int64(3), Suffix: "L"}
	lit.Base = javaast.NewBase(javaast.None())

	ptype := &javaast.PrimitiveType{Tag: javatype.PrimitiveLong}
	ptype.Base = javaast.NewBase(javaast.None())

	declarator := &javaast.VariableDeclarator{Base: javaast.NewBase(javaast.None()), Name: "x", Initializer: lit}
	varDecl := &javaast.VariableDecl{Base: javaast.NewBase(javaast.None()), Type: ptype, Declarators: []*javaast.VariableDeclarator{declarator}}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C", Members: []javaast.Node{varDecl}}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}

	source := javaast.Print(cu)
	require.Equal(t, "class C {long x = 3L;}", source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.ChangeLiteral(class.ID(), func(v any) any { return v.(int64) + 4 }))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.Equal(t, "class C {long x = 7L;}", javaast.Print(result.Fixed))
}

func TestChangeLiteralRespectsScope(t *testing.T) {
	inScope := &javaast.Literal{Tag: javatype.PrimitiveInt, Value: int64(1)}
	inScope.Base = javaast.NewBase(javaast.None())
	outOfScope := &javaast.Literal{Tag: javatype.PrimitiveInt, Value: int64(1)}
	outOfScope.Base = javaast.NewBase(javaast.None())

	scoped := &javaast.Return{Base: javaast.NewBase(javaast.None()), Value: inScope}
	method1 := &javaast.MethodDecl{
		Base: javaast.NewBase(javaast.None()), Name: "m1",
		Body: &javaast.Block{Base: javaast.NewBase(javaast.None()), Statements: []javaast.Node{scoped}},
	}
	method2 := &javaast.MethodDecl{
		Base: javaast.NewBase(javaast.None()), Name: "m2",
		Body: &javaast.Block{Base: javaast.NewBase(javaast.None()), Statements: []javaast.Node{
			&javaast.Return{Base: javaast.NewBase(javaast.None()), Value: outOfScope},
		}},
	}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C", Members: []javaast.Node{method1, method2}}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}
	source := javaast.Print(cu)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.ChangeLiteral(method1.ID(), func(v any) any { return v.(int64) + 9 }))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.Len(t, result.Fixes, 1)
	require.Equal(t, inScope.ID(), result.Fixes[0].Target)
}

func TestRemoveImportCollapsesStarImportOnceDown(t *testing.T) {
	classA1 := javatype.Build("a.A1")
	classA2 := javatype.Build("a.A2")

	fieldA1 := &javaast.VariableDecl{
		Base: javaast.NewBase(javaast.None()), IsFieldOfCU: true,
		Type:        typedIdentifier("A1", classA1),
		Declarators: []*javaast.VariableDeclarator{{Base: javaast.NewBase(javaast.None()), Name: "x"}},
	}
	fieldA2 := &javaast.VariableDecl{
		Base: javaast.NewBase(javaast.None()), IsFieldOfCU: true,
		Type:        typedIdentifier("A2", classA2),
		Declarators: []*javaast.VariableDeclarator{{Base: javaast.NewBase(javaast.None()), Name: "y"}},
	}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C", Members: []javaast.Node{fieldA1, fieldA2}}
	starImp := &javaast.ImportDecl{Base: javaast.NewBase(javaast.None()), Qualified: "a", Star: true}
	cu := &javaast.CompilationUnit{
		Base:    javaast.NewBase(javaast.None()),
		Imports: []*javaast.ImportDecl{starImp},
		Types:   []*javaast.ClassDecl{class},
	}

	source := javaast.Print(cu)
	require.Equal(t, "import a.*;class C {A1 x;A2 y;}", source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)

	// RemoveImport with a class FQN (not the bare package) never touches a
	// star import of that package.
	tx.Visit(refactors.RemoveImport("a.B"))

	removeA2References := visitor.New(visitor.Hooks{
		javaast.KindVariableDecl: func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			vd := n.(*javaast.VariableDecl)
			if id, ok := vd.Type.(*javaast.Identifier); ok && id.ResolvedType() != nil && id.ResolvedType().FQN() == "a.A2" {
				return nil
			}
			return n
		},
	})
	tx.Visit(removeA2References)

	tx.Visit(refactors.RemoveImport("a"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.Equal(t, "import a.A1;class C {A1 x;}", javaast.Print(result.Fixed))

	fixed := result.Fixed.(*javaast.CompilationUnit)
	require.Len(t, fixed.Imports, 1)
	require.False(t, fixed.Imports[0].Star)
	require.Equal(t, "a.A1", fixed.Imports[0].Qualified)
}

func TestAddImportAddsWhenMissing(t *testing.T) {
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C"}
	cu := &javaast.CompilationUnit{Base: javaast.NewBase(javaast.None()), Types: []*javaast.ClassDecl{class}}
	source := javaast.Print(cu)
	require.Equal(t, "class C {}", source)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.AddImport("a.C"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.True(t, result.Changed)
	require.Equal(t, " import a.C;class C {}", javaast.Print(result.Fixed))
}

func TestAddImportNoOpWhenAlreadyPresent(t *testing.T) {
	imp := &javaast.ImportDecl{Base: javaast.NewBase(javaast.None()), Qualified: "a.C"}
	class := &javaast.ClassDecl{Base: javaast.NewBase(javaast.None()), Name: "C"}
	cu := &javaast.CompilationUnit{
		Base:    javaast.NewBase(javaast.None()),
		Imports: []*javaast.ImportDecl{imp},
		Types:   []*javaast.ClassDecl{class},
	}
	source := javaast.Print(cu)

	tx, err := refactor.New(cu, source)
	require.NoError(t, err)
	tx.Visit(refactors.AddImport("a.C"))

	result, err := tx.Fix()
	require.NoError(t, err)
	require.False(t, result.Changed)
	require.Empty(t, result.Fixes)
}
