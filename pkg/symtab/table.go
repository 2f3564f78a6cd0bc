package symtab

import (
	"fmt"

	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symbols"
)

type (
	// TypeChain is the shadow chain of the Types namespace.
	TypeChain = shadow.Chain[symbols.TypeDeclSymbol, ScopeInfo]
	// VarChain is the shadow chain of the Variables namespace.
	VarChain = shadow.Chain[symbols.VariableSymbol, ScopeInfo]
	// MethodChain is the shadow chain of the Methods namespace.
	MethodChain = shadow.Chain[*symbols.MethodSymbol, ScopeInfo]
)

// Table is the name resolution context at one position of a compilation
// unit.  A table is immutable; nested scopes get new tables that share the
// chains of their parent.
type Table struct {
	types   *TypeChain
	vars    *VarChain
	methods *MethodChain
}

// Empty returns a table in which nothing is visible.
func Empty() *Table {
	return &Table{
		types:   shadow.Root[symbols.TypeDeclSymbol, ScopeInfo](),
		vars:    shadow.Root[symbols.VariableSymbol, ScopeInfo](),
		methods: shadow.Root[*symbols.MethodSymbol, ScopeInfo](),
	}
}

// buildTable returns parent itself when no chain changed.
func buildTable(parent *Table, vars *VarChain, methods *MethodChain, types *TypeChain) *Table {
	if vars == parent.vars && methods == parent.methods && types == parent.types {
		return parent
	}
	return &Table{types: types, vars: vars, methods: methods}
}

func withTypes(parent *Table, types *TypeChain) *Table {
	return buildTable(parent, parent.vars, parent.methods, types)
}

func withVars(parent *Table, vars *VarChain) *Table {
	return buildTable(parent, vars, parent.methods, parent.types)
}

// Types returns the chain of the Types namespace.
func (t *Table) Types() *TypeChain { return t.types }

// Variables returns the chain of the Variables namespace.
func (t *Table) Variables() *VarChain { return t.vars }

// Methods returns the chain of the Methods namespace.
func (t *Table) Methods() *MethodChain { return t.methods }

// LookupType returns the candidate types for a simple name, innermost first.
func (t *Table) LookupType(name string) []symbols.TypeDeclSymbol {
	return t.types.Resolve(name)
}

// LookupVariable returns the candidate variables for a simple name,
// innermost first.
func (t *Table) LookupVariable(name string) []symbols.VariableSymbol {
	return t.vars.Resolve(name)
}

// LookupMethod returns the candidate methods for a simple name.  Overloads
// from declared and inherited methods are reported together.
func (t *Table) LookupMethod(name string) []*symbols.MethodSymbol {
	return t.methods.Resolve(name)
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("types=%v vars=%v methods=%v", t.types, t.vars, t.methods)
}
