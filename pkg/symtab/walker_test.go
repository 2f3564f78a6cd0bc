package symtab_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/symbols"
	"github.com/stackb/java-symtab/pkg/symtab"
	"github.com/stackb/java-symtab/pkg/symtab/mocks"
	"github.com/stackb/java-symtab/pkg/testutil"
)

func TestBuildStaticImportAndDeclaredMethod(t *testing.T) {
	foo := symbols.NewClass("com.example", "Foo", symbols.Public)
	foo.AddMethod("emptyList", symbols.Public)
	td := &ast.TypeDecl{Symbol: foo}
	unit := &ast.CompilationUnit{
		Package: "com.example",
		Imports: imports(true, "java.util.Collections.*"),
		Types:   []*ast.TypeDecl{td},
	}

	tables := symtab.NewSession(nil, newClassPath(t), symtab.NewCollector(nil)).Build(unit)
	body, ok := tables.At(td)
	if !ok {
		t.Fatal("no table for the class body")
	}

	want := []string{
		"ENCLOSING_TYPE_MEMBER method Foo.emptyList()",
		"IMPORT_ON_DEMAND method Collections.emptyList()",
	}
	if diff := cmp.Diff(want, explain(body.Methods().Explain("emptyList"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := body.LookupMethod("emptyList"); len(got) != 2 {
		t.Errorf("want 2 candidates, got %v", got)
	}
}

func TestBuildSameFileShadowsSingleImport(t *testing.T) {
	c := symbols.NewClass("com.example", "C", symbols.Public)
	unit := &ast.CompilationUnit{
		Package: "com.example",
		Imports: imports(false, "a.b.C"),
		Types:   []*ast.TypeDecl{{Symbol: c}},
	}

	tables := symtab.NewSession(nil, newClassPath(t), symtab.NewCollector(nil)).Build(unit)

	want := []string{"SAME_FILE class com.example.C"}
	if diff := cmp.Diff(want, explain(tables.Unit.Types().Explain("C"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got, ok := tables.Unit.Types().ResolveFirst("C"); !ok || got != symbols.TypeDeclSymbol(c) {
		t.Errorf("want the same-file class, got %v", got)
	}
}

func TestBuildDeclaredFieldHidesInheritedField(t *testing.T) {
	base := symbols.NewClass("com.example", "Base", symbols.Public)
	base.AddField("x", symbols.Protected)
	sub := symbols.NewClass("com.example", "Sub", symbols.Public)
	sub.Super = base
	x := sub.AddField("x", symbols.Private)

	td := &ast.TypeDecl{Symbol: sub}
	unit := &ast.CompilationUnit{
		Package: "com.example",
		Types:   []*ast.TypeDecl{{Symbol: base}, td},
	}

	tables := symtab.NewSession(nil, newClassPath(t), symtab.NewCollector(nil)).Build(unit)
	body, _ := tables.At(td)

	got := body.LookupVariable("x")
	if len(got) != 1 || got[0] != symbols.VariableSymbol(x) {
		t.Errorf("want only Sub.x, got %v", got)
	}
}

func TestBuildUnresolvedImport(t *testing.T) {
	missing := ast.NewImport("nonexistent.Foo", false)
	missing.Position = ast.Position{File: "Bar.java", Line: 3, Col: 1}
	list := ast.NewImport("java.util.List", false)
	list.Position = ast.Position{File: "Bar.java", Line: 4, Col: 1}

	bar := symbols.NewClass("com.example", "Bar", symbols.Public)
	bar.AddField("items", symbols.Private)
	td := &ast.TypeDecl{Symbol: bar}
	unit := &ast.CompilationUnit{
		Position: ast.Position{File: "Bar.java", Line: 1, Col: 1},
		Package:  "com.example",
		Imports:  []*ast.ImportDecl{missing, list},
		Types:    []*ast.TypeDecl{td},
	}

	reporter := mocks.NewReporter(t)
	reporter.On("Report", missing, symtab.CannotResolveSymbol, "nonexistent.Foo").Once()

	tables := symtab.NewSession(nil, newClassPath(t), reporter).Build(unit)

	foo := tables.Unit.LookupType("Foo")
	if len(foo) != 1 {
		t.Fatalf("want the unresolved placeholder, got %v", foo)
	}
	if c, ok := foo[0].(*symbols.ClassSymbol); !ok || !c.Unresolved || c.Name != "nonexistent.Foo" {
		t.Errorf("want unresolved nonexistent.Foo, got %v", foo[0])
	}
	if diff := cmp.Diff([]string{"SINGLE_IMPORT interface java.util.List"}, explain(tables.Unit.Types().Explain("List"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	body, ok := tables.At(td)
	if !ok {
		t.Fatal("no table for the class body")
	}
	if diff := cmp.Diff([]string{"ENCLOSING_TYPE_MEMBER field Bar.items"}, explain(body.Variables().Explain("items"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	reporter.AssertNumberOfCalls(t, "Report", 1)
}

func TestBuildTables(t *testing.T) {
	foo := symbols.NewClass("p", "Foo", symbols.Public)
	foo.AddTypeParam("T")
	foo.AddField("p", symbols.Private)
	foo.AddField("count", symbols.Private)
	run := foo.AddMethod("run", symbols.Public, "int")
	run.Formals = []*symbols.LocalSymbol{symbols.NewFormal("p")}
	run.AddTypeParam("U")

	first := &ast.ExprStmt{Text: "count++;"}
	x := &ast.LocalVarDecl{Vars: []*symbols.LocalSymbol{symbols.NewLocal("x")}}
	local := &ast.LocalClassDecl{Type: &ast.TypeDecl{Symbol: &symbols.ClassSymbol{Name: "L"}}}
	y := &ast.LocalVarDecl{Vars: []*symbols.LocalSymbol{symbols.NewLocal("y")}}
	last := &ast.ExprStmt{Text: "y += x;"}
	inner := &ast.Block{Statements: []ast.Statement{y, last}}
	md := &ast.MethodDecl{
		Symbol: run,
		Body:   &ast.Block{Statements: []ast.Statement{first, x, local, inner}},
	}
	td := &ast.TypeDecl{Symbol: foo, Methods: []*ast.MethodDecl{md}}
	unit := &ast.CompilationUnit{Package: "p", Types: []*ast.TypeDecl{td}}

	config := symtab.DefaultConfig()
	config.Logger = testutil.NewTestLogger(t)
	tables := symtab.NewSession(config, newClassPath(t), symtab.NewCollector(nil)).Build(unit)

	at := func(node ast.Node) *symtab.Table {
		table, ok := tables.At(node)
		if !ok {
			t.Fatalf("no table at %T", node)
		}
		return table
	}

	for name, tc := range map[string]struct {
		got  []string
		want []string
	}{
		"formal shadows field": {
			got:  explain(at(first).Variables().Explain("p")),
			want: []string{"FORMAL_PARAM formal p"},
		},
		"field in method body": {
			got:  explain(at(first).Variables().Explain("count")),
			want: []string{"ENCLOSING_TYPE_MEMBER field Foo.count"},
		},
		"local not yet declared": {
			got: explain(at(first).Variables().Explain("x")),
		},
		"local of the enclosing block": {
			got:  explain(at(last).Variables().Explain("x")),
			want: []string{"LOCAL local x"},
		},
		"local of the nested block": {
			got:  explain(at(last).Variables().Explain("y")),
			want: []string{"LOCAL local y"},
		},
		"local class": {
			got:  explain(at(last).Types().Explain("L")),
			want: []string{"LOCAL class L"},
		},
		"method type parameter": {
			got:  explain(at(md).Types().Explain("U")),
			want: []string{"TYPE_PARAM tparam U"},
		},
		"class type parameter": {
			got:  explain(at(md).Types().Explain("T")),
			want: []string{"TYPE_PARAM tparam T"},
		},
		"platform type": {
			got:  explain(at(last).Types().Explain("String")),
			want: []string{"JAVA_LANG class java.lang.String"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	if got := tables.Len(); got != 11 {
		t.Errorf("want 11 tables, got %d", got)
	}
	if _, ok := tables.At(local.Type); !ok {
		t.Error("want a table for the local class body")
	}
}

func TestBuildRecordCompactCtor(t *testing.T) {
	point := symbols.NewClass("p", "Point", symbols.Public)
	point.Kind = symbols.Record
	point.AddField("x", symbols.Private|symbols.Final)
	ctor := point.AddCtor(symbols.Public)
	ctor.AddFormal("x", "int")

	md := &ast.MethodDecl{Symbol: ctor, CompactCtor: true, Body: &ast.Block{}}
	td := &ast.TypeDecl{Symbol: point, Methods: []*ast.MethodDecl{md}}
	unit := &ast.CompilationUnit{Package: "p", Types: []*ast.TypeDecl{td}}

	tables := symtab.NewSession(nil, newClassPath(t), symtab.NewCollector(nil)).Build(unit)
	scope, ok := tables.At(md.Body)
	if !ok {
		t.Fatal("no table for the constructor body")
	}
	if diff := cmp.Diff([]string{"FORMAL_PARAM formal x"}, explain(scope.Variables().Explain("x"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func ExampleTable_String() {
	session := symtab.NewSession(nil, classpath.New(), symtab.NewCollector(nil))
	f := session.NewFactory("com.example")

	table := f.JavaLang(symtab.Empty())
	table = f.BodyDeclaration(table, []*symbols.LocalSymbol{symbols.NewFormal("args")}, nil)
	table = f.LocalVars(table, symbols.NewLocal("i"))

	fmt.Println(table)
	// output:
	// types=[JAVA_LANG] vars=[LOCAL+ FORMAL_PARAM] methods=[]
}
