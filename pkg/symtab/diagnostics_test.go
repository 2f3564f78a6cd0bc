package symtab_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/symtab"
	"github.com/stackb/java-symtab/pkg/symtab/mocks"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := symtab.NewLogReporter(zerolog.New(&buf))

	imp := ast.NewImport("a.B", false)
	imp.Position = ast.Position{File: "Foo.java", Line: 3, Col: 8}
	reporter.Report(imp, symtab.CannotResolveSymbol, "a.B")

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"level":   "warn",
		"kind":    "CANNOT_RESOLVE_SYMBOL",
		"file":    "Foo.java",
		"line":    float64(3),
		"col":     float64(8),
		"message": "cannot resolve symbol a.B",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCollector(t *testing.T) {
	imp := ast.NewImport("a.B", false)
	imp.Position = ast.Position{File: "Foo.java", Line: 3, Col: 8}

	next := mocks.NewReporter(t)
	next.On("Report", imp, symtab.CannotResolveSymbol, "a.B").Once()

	collector := symtab.NewCollector(next)
	collector.Report(imp, symtab.CannotResolveSymbol, "a.B")

	want := []symtab.Diagnostic{{
		Pos:     ast.Position{File: "Foo.java", Line: 3, Col: 8},
		Kind:    symtab.CannotResolveSymbol,
		Message: "cannot resolve symbol a.B",
	}}
	got := collector.Diagnostics()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("Foo.java:3:8: cannot resolve symbol a.B", got[0].String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
