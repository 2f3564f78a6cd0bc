package ast

import "strings"

// ImportDecl is an import declaration.
type ImportDecl struct {
	Position
	// Name is the imported name without any trailing ".*", e.g.
	// "java.util.List" or "java.util" for "java.util.*".
	Name string
	// Static marks "import static".
	Static bool
	// OnDemand marks imports ending with ".*".
	OnDemand bool
}

// NewImport creates an import declaration from its source text, e.g.
// NewImport("java.util.*", false).
func NewImport(text string, static bool) *ImportDecl {
	onDemand := strings.HasSuffix(text, ".*")
	return &ImportDecl{
		Name:     strings.TrimSuffix(text, ".*"),
		Static:   static,
		OnDemand: onDemand,
	}
}

// ImportedName returns the canonical name of what is imported.  For an
// on-demand import this is the package or type whose members are imported.
func (d *ImportDecl) ImportedName() string {
	return d.Name
}

// ImportedSimpleName returns the last segment of a single import, "" for an
// on-demand import.
func (d *ImportDecl) ImportedSimpleName() string {
	if d.OnDemand {
		return ""
	}
	if i := strings.LastIndexByte(d.Name, '.'); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

// PackageName returns the package or type the import names members of.
func (d *ImportDecl) PackageName() string {
	if d.OnDemand {
		return d.Name
	}
	if i := strings.LastIndexByte(d.Name, '.'); i >= 0 {
		return d.Name[:i]
	}
	return ""
}

// String renders the declaration as source.
func (d *ImportDecl) String() string {
	var b strings.Builder
	b.WriteString("import ")
	if d.Static {
		b.WriteString("static ")
	}
	b.WriteString(d.Name)
	if d.OnDemand {
		b.WriteString(".*")
	}
	b.WriteByte(';')
	return b.String()
}
