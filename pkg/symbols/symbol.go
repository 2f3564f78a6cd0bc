package symbols

import "fmt"

// Symbol is a declared name in one namespace.  Symbols are immutable once the
// declaration that introduces them has been processed.
type Symbol interface {
	fmt.Stringer

	// SimpleName is the name under which the symbol is looked up.
	SimpleName() string
	// Namespace is the namespace the symbol lives in.
	Namespace() Namespace
	// EnclosingClass is the class that declares the symbol, or nil for top
	// level classes, formal parameters and local variables.
	EnclosingClass() *ClassSymbol
	// Modifiers is the declared modifier set.
	Modifiers() Modifiers
}

// TypeDeclSymbol is a symbol of the Types namespace: a class or a type
// parameter.
type TypeDeclSymbol interface {
	Symbol
	typeDecl()
}

// VariableSymbol is a symbol of the Variables namespace: a field, a formal
// parameter or a local variable.
type VariableSymbol interface {
	Symbol
	variable()
}

// PackageOf returns the package a symbol is declared in.  Locals and formals
// have no package and return "".
func PackageOf(sym Symbol) string {
	if c, ok := sym.(*ClassSymbol); ok {
		return c.Package
	}
	if owner := sym.EnclosingClass(); owner != nil {
		return owner.Package
	}
	return ""
}

// IsAccessibleIn reports whether the symbol may be referenced (and
// imported) from code in the given package: it must be public, or not
// private and declared in that same package.
func IsAccessibleIn(pkg string, sym Symbol) bool {
	mods := sym.Modifiers()
	if mods.IsPublic() {
		return true
	}
	return !mods.IsPrivate() && PackageOf(sym) == pkg
}
