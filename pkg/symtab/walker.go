package symtab

import (
	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/symbols"
)

// UnitTables records the table in effect at each scope-introducing node of a
// compilation unit.
type UnitTables struct {
	// Unit is the table of the compilation unit: platform types, imports,
	// same-package and same-file types.
	Unit   *Table
	tables map[ast.Node]*Table
}

// At returns the table attached to the node.  Type declarations map to their
// body scope, methods to their formal scope, local declarations to the scope
// that includes them, and other statements to the scope they are in.
func (u *UnitTables) At(node ast.Node) (*Table, bool) {
	t, ok := u.tables[node]
	return t, ok
}

// Len returns the number of nodes with an attached table.
func (u *UnitTables) Len() int {
	return len(u.tables)
}

// Build walks a compilation unit top-down and builds the table of every
// scope in it.
func (s *Session) Build(unit *ast.CompilationUnit) *UnitTables {
	w := &walker{
		f:      s.NewFactory(unit.Package),
		tables: make(map[ast.Node]*Table),
	}

	var singles, onDemand []*ast.ImportDecl
	for _, imp := range unit.Imports {
		if imp.OnDemand {
			onDemand = append(onDemand, imp)
		} else {
			singles = append(singles, imp)
		}
	}
	decls := make([]*symbols.ClassSymbol, len(unit.Types))
	for i, td := range unit.Types {
		decls[i] = td.Symbol
	}

	top := Empty()
	top = w.f.JavaLang(top)
	top = w.f.ImportsOnDemand(top, onDemand)
	top = w.f.SamePackage(top)
	top = w.f.SingleImports(top, singles)
	top = w.f.TypesInFile(top, decls)
	w.tables[unit] = top

	for _, td := range unit.Types {
		w.typeDecl(top, td)
	}

	w.f.logger.Debug().
		Str("file", unit.File).
		Int("scopes", len(w.tables)).
		Msg("built unit tables")

	return &UnitTables{Unit: top, tables: w.tables}
}

type walker struct {
	f      *Factory
	tables map[ast.Node]*Table
}

func (w *walker) typeDecl(parent *Table, td *ast.TypeDecl) {
	header := w.f.TypeHeader(parent, td.Symbol)
	body := w.f.TypeBody(header, td.Symbol)
	w.tables[td] = body

	for _, nested := range td.Types {
		w.typeDecl(body, nested)
	}
	for _, init := range td.Initializers {
		w.block(w.f.BodyDeclaration(body, nil, nil), init)
	}
	for _, md := range td.Methods {
		var scope *Table
		if md.CompactCtor {
			scope = w.f.RecordCtor(body, md.Symbol)
		} else {
			scope = w.f.BodyDeclaration(body, md.Symbol.Formals, md.Symbol.TypeParams)
		}
		w.tables[md] = scope
		if md.Body != nil {
			w.block(scope, md.Body)
		}
	}
}

func (w *walker) block(parent *Table, block *ast.Block) {
	w.tables[block] = parent
	top := parent
	for _, stmt := range block.Statements {
		switch st := stmt.(type) {
		case *ast.LocalVarDecl:
			top = w.f.LocalVars(top, st.Vars...)
			w.tables[st] = top
		case *ast.LocalClassDecl:
			top = w.f.LocalType(top, st.Type.Symbol)
			w.tables[st] = top
			w.typeDecl(top, st.Type)
		case *ast.Block:
			w.block(top, st)
		case *ast.ExprStmt:
			w.tables[st] = top
		}
	}
}
