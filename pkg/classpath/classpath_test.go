package classpath

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/java-symtab/pkg/index"
	"github.com/stackb/java-symtab/pkg/symbols"
	"github.com/stackb/java-symtab/pkg/testutil"
)

func jdk() *index.ClassPathSpec {
	return &index.ClassPathSpec{
		Label: "jdk",
		Classes: []*index.ClassSpec{
			{Name: "java.lang.Object", Modifiers: []string{"public"}, Methods: []*index.MemberSpec{
				{Name: "toString", Modifiers: []string{"public"}},
			}},
			{Name: "java.lang.String", Modifiers: []string{"public", "final"}},
			{Name: "java.util.Collection", Kind: "interface", Modifiers: []string{"public"}},
			{Name: "java.util.List", Kind: "interface", Modifiers: []string{"public"}, Interfaces: []string{"java.util.Collection"}, TypeParams: []string{"E"}},
			{Name: "java.util.Map", Kind: "interface", Modifiers: []string{"public"}, Classes: []*index.ClassSpec{
				{Name: "Entry", Kind: "interface", Methods: []*index.MemberSpec{{Name: "getKey"}}},
			}},
			{Name: "java.util.Collections", Modifiers: []string{"public"},
				Fields: []*index.MemberSpec{
					{Name: "EMPTY_LIST", Modifiers: []string{"public", "static", "final"}},
				},
				Methods: []*index.MemberSpec{
					{Name: "emptyList", Modifiers: []string{"public", "static"}},
					{Name: "sort", Modifiers: []string{"public", "static"}, Params: []string{"java.util.List"}},
				},
			},
			{Name: "java.util.Hidden", Super: "java.util.Missing"},
		},
	}
}

func mustNew(t *testing.T, specs ...*index.ClassPathSpec) *ClassPath {
	cp := New()
	for _, spec := range specs {
		if err := cp.AddSpec(spec); err != nil {
			t.Fatal(err)
		}
	}
	return cp
}

func TestResolveClass(t *testing.T) {
	cp := mustNew(t, jdk())

	for name, tc := range map[string]struct {
		fqcn      string
		want      string
		wantFound bool
	}{
		"top-level class": {
			fqcn:      "java.lang.String",
			want:      "class java.lang.String",
			wantFound: true,
		},
		"interface": {
			fqcn:      "java.util.List",
			want:      "interface java.util.List",
			wantFound: true,
		},
		"member class by canonical name": {
			fqcn:      "java.util.Map.Entry",
			want:      "interface java.util.Map.Entry",
			wantFound: true,
		},
		"package is not a class": {
			fqcn: "java.util",
		},
		"unknown class": {
			fqcn: "java.util.ArrayList",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, found := cp.ResolveClass(tc.fqcn)
			if found != tc.wantFound {
				t.Fatalf("found: want %v, got %v", tc.wantFound, found)
			}
			if !found {
				return
			}
			if diff := cmp.Diff(tc.want, got.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveClassLoadsOnce(t *testing.T) {
	cp := mustNew(t, jdk())

	a, _ := cp.ResolveClass("java.util.Collections")
	b, _ := cp.ResolveClass("java.util.Collections")
	if a != b {
		t.Error("want the same symbol on each lookup")
	}
}

func TestResolveClassLinksSupertypes(t *testing.T) {
	cp := mustNew(t, jdk())

	str, _ := cp.ResolveClass("java.lang.String")
	object, _ := cp.ResolveClass("java.lang.Object")
	if str.Super != object {
		t.Errorf("want String to extend Object, got %v", str.Super)
	}
	if object.Super != nil {
		t.Errorf("want Object without superclass, got %v", object.Super)
	}

	list, _ := cp.ResolveClass("java.util.List")
	if list.Super != nil {
		t.Errorf("interfaces have no superclass, got %v", list.Super)
	}
	var ifaces []string
	for _, i := range list.Interfaces {
		ifaces = append(ifaces, i.String())
	}
	if diff := cmp.Diff([]string{"interface java.util.Collection"}, ifaces); diff != "" {
		t.Errorf("interfaces (-want +got):\n%s", diff)
	}

	hidden, _ := cp.ResolveClass("java.util.Hidden")
	if hidden.Super == nil || !hidden.Super.Unresolved {
		t.Errorf("want an unresolved placeholder superclass, got %v", hidden.Super)
	}
}

func TestResolveClassMembers(t *testing.T) {
	cp := mustNew(t, jdk())

	entry, _ := cp.ResolveClass("java.util.Map.Entry")
	m, _ := cp.ResolveClass("java.util.Map")
	if entry.Enclosing != m {
		t.Errorf("want Entry enclosed by Map, got %v", entry.Enclosing)
	}
	if !entry.Flags.IsStatic() || !entry.Flags.IsPublic() {
		t.Errorf("member types of interfaces are public static, got %v", entry.Flags)
	}
	if len(entry.Methods) != 1 || !entry.Methods[0].Flags.IsPublic() {
		t.Errorf("interface methods are public, got %v", entry.Methods)
	}

	colls, _ := cp.ResolveClass("java.util.Collections")
	var got []string
	for _, f := range colls.Fields {
		got = append(got, fmt.Sprintf("%v %v", f.Flags, f))
	}
	for _, meth := range colls.Methods {
		got = append(got, fmt.Sprintf("%v %v", meth.Flags, meth))
	}
	want := []string{
		"public static final field Collections.EMPTY_LIST",
		"public static method Collections.emptyList()",
		"public static method Collections.sort(java.util.List)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolveClassInPackage(t *testing.T) {
	cp := mustNew(t, jdk())

	if c, ok := cp.ResolveClassInPackage("java.util", "List"); !ok || c.Name != "java.util.List" {
		t.Errorf("want java.util.List, got %v", c)
	}
	if _, ok := cp.ResolveClassInPackage("java.util", "Entry"); ok {
		t.Error("member classes are not package members")
	}
	if _, ok := cp.ResolveClassInPackage("java.util.Map", "Entry"); ok {
		t.Error("a class is not a package")
	}
}

func TestTypesInPackage(t *testing.T) {
	cp := mustNew(t, jdk())

	var got []string
	for _, c := range cp.TypesInPackage("java.util") {
		got = append(got, c.Name)
	}
	want := []string{
		"java.util.Collection",
		"java.util.List",
		"java.util.Map",
		"java.util.Collections",
		"java.util.Hidden",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := cp.TypesInPackage("java.nothing"); len(got) != 0 {
		t.Errorf("want no types, got %v", got)
	}
}

func TestAddClass(t *testing.T) {
	cp := mustNew(t, jdk())

	foo := symbols.NewClass("com.example", "Foo", symbols.Public)
	inner := foo.AddClass("Inner", 0)
	if err := cp.AddClass(foo); err != nil {
		t.Fatal(err)
	}

	if got, ok := cp.ResolveClass("com.example.Foo"); !ok || got != foo {
		t.Errorf("want source class, got %v", got)
	}
	if got, ok := cp.ResolveClass("com.example.Foo.Inner"); !ok || got != inner {
		t.Errorf("want member of source class, got %v", got)
	}
	if err := cp.AddClass(foo); err == nil {
		t.Error("want duplicate error")
	}
}

func TestAddSpecErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		spec    *index.ClassPathSpec
		wantErr error
	}{
		"unknown kind": {
			spec: &index.ClassPathSpec{Classes: []*index.ClassSpec{
				{Name: "a.B", Kind: "struct"},
			}},
			wantErr: errors.New(`a.B: unknown class kind "struct"`),
		},
		"unknown modifier": {
			spec: &index.ClassPathSpec{Classes: []*index.ClassSpec{
				{Name: "a.B", Modifiers: []string{"sealed"}},
			}},
			wantErr: errors.New(`a.B: unknown modifier "sealed"`),
		},
		"unknown member modifier": {
			spec: &index.ClassPathSpec{Classes: []*index.ClassSpec{
				{Name: "a.B", Methods: []*index.MemberSpec{{Name: "m", Modifiers: []string{"native"}}}},
			}},
			wantErr: errors.New(`a.B: m: unknown modifier "native"`),
		},
		"empty name segment": {
			spec: &index.ClassPathSpec{Classes: []*index.ClassSpec{
				{Name: "a..B"},
			}},
			wantErr: errors.New(`invalid class name "a..B"`),
		},
		"duplicate": {
			spec: &index.ClassPathSpec{Classes: []*index.ClassSpec{
				{Name: "a.B"},
				{Name: "a.B"},
			}},
			wantErr: errors.New("duplicate class: a.B"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := New().AddSpec(tc.spec)
			testutil.ExpectError(t, tc.wantErr, err)
		})
	}
}

func TestMustResolveClass(t *testing.T) {
	cp := mustNew(t, jdk())

	if _, err := cp.MustResolveClass("java.util.List"); err != nil {
		t.Fatal(err)
	}
	_, err := cp.MustResolveClass("java.util.Vector")
	if !errors.Is(err, ErrClassNotFound) {
		t.Errorf("want ErrClassNotFound, got %v", err)
	}
}

func TestCyclicHierarchyTerminates(t *testing.T) {
	cp := mustNew(t, &index.ClassPathSpec{Classes: []*index.ClassSpec{
		{Name: "a.A", Super: "a.B"},
		{Name: "a.B", Super: "a.A"},
	}})

	a, _ := cp.ResolveClass("a.A")
	b, _ := cp.ResolveClass("a.B")
	if a.Super != b || b.Super != a {
		t.Errorf("want A and B linked to each other, got %v and %v", a.Super, b.Super)
	}
}

func TestLoad(t *testing.T) {
	_, filenames, cleanup := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{
			Path: "jdk.yaml",
			Content: `
label: jdk
classes:
  - name: java.lang.Object
    modifiers: [public]
`,
		},
		{
			Path:    "guava.json",
			Content: `{"label":"guava","classes":[{"name":"com.google.common.collect.ImmutableList","kind":"class","modifiers":["public","abstract"]}]}`,
		},
	})
	defer cleanup()

	cp, err := Load(filenames...)
	if err != nil {
		t.Fatal(err)
	}
	list, ok := cp.ResolveClass("com.google.common.collect.ImmutableList")
	if !ok {
		t.Fatal("want ImmutableList")
	}
	if list.Super == nil || list.Super.Name != "java.lang.Object" {
		t.Errorf("want Object superclass, got %v", list.Super)
	}
}

type result struct {
	Segment string
	Path    int
}

func TestImportSegmenter(t *testing.T) {
	for name, tc := range map[string]struct {
		want []result
	}{
		"degenerate": {
			want: []result{
				{Segment: "degenerate", Path: -1},
			},
		},
		"a.b.c": {
			want: []result{
				{Segment: "a", Path: 2},
				{Segment: "b", Path: 4},
				{Segment: "c", Path: -1},
			},
		},
		"a.": {
			want: []result{
				{Segment: "a", Path: 2},
			},
		},
		"": {},
		"java.util.Map.Entry": {
			want: []result{
				{Segment: "java", Path: 5},
				{Segment: "util", Path: 10},
				{Segment: "Map", Path: 14},
				{Segment: "Entry", Path: -1},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var got []result
			for part, i := importSegmenter(name, 0); part != ""; part, i = importSegmenter(name, i) {
				got = append(got, result{part, i})
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
