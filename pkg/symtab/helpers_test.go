package symtab_test

import (
	"fmt"
	"testing"

	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/index"
	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symtab"
)

var testClassPath = &index.ClassPathSpec{
	Label: "test",
	Classes: []*index.ClassSpec{
		{Name: "java.lang.Object", Modifiers: []string{"public"}, Methods: []*index.MemberSpec{
			{Name: "hashCode", Modifiers: []string{"public"}},
		}},
		{Name: "java.lang.String", Modifiers: []string{"public", "final"}},
		{Name: "java.util.List", Kind: "interface", Modifiers: []string{"public"}, TypeParams: []string{"E"}},
		{Name: "java.util.Collections", Modifiers: []string{"public"},
			Fields: []*index.MemberSpec{
				{Name: "EMPTY_LIST", Modifiers: []string{"public", "static", "final"}},
				{Name: "seed", Modifiers: []string{"private", "static"}},
			},
			Methods: []*index.MemberSpec{
				{Name: "emptyList", Modifiers: []string{"public", "static"}},
				{Name: "sort", Modifiers: []string{"public", "static"}, Params: []string{"java.util.List"}},
				{Name: "sort", Modifiers: []string{"public", "static"}, Params: []string{"java.util.List", "java.util.Comparator"}},
				{Name: "rangeCheck", Modifiers: []string{"private", "static"}},
			},
			Classes: []*index.ClassSpec{
				{Name: "EmptyIterator", Modifiers: []string{"private", "static"}},
				{Name: "UnmodifiableList", Modifiers: []string{"public", "static"}},
			},
		},
		{Name: "java.util.PackagePrivate"},
		{Name: "java.awt.List", Modifiers: []string{"public"}},
		{Name: "a.b.C", Modifiers: []string{"public"}},
	},
}

func newClassPath(t *testing.T) *classpath.ClassPath {
	cp := classpath.New()
	if err := cp.AddSpec(testClassPath); err != nil {
		t.Fatal(err)
	}
	return cp
}

// explain flattens the layers contributing to a lookup as "TAG symbol".
func explain[S fmt.Stringer](matches []shadow.Match[S, symtab.ScopeInfo]) []string {
	var got []string
	for _, m := range matches {
		for _, sym := range m.Symbols {
			got = append(got, fmt.Sprintf("%v %v", m.Tag, sym))
		}
	}
	return got
}
