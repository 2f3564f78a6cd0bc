package symbols

// ClassResolver loads class descriptions by name.  Implementations are
// expected to cache what they load; the scope engine calls them
// synchronously and may call them many times for the same name.
type ClassResolver interface {
	// ResolveClass loads a class by canonical name, e.g. "java.util.Map" or
	// "java.util.Map.Entry".
	ResolveClass(fqcn string) (*ClassSymbol, bool)
	// ResolveClassInPackage loads the top-level class with the given simple
	// name in the given package.
	ResolveClassInPackage(pkg, simpleName string) (*ClassSymbol, bool)
	// TypesInPackage lists the top-level classes of a package.  This can be
	// expensive and is never called while building scopes.
	TypesInPackage(pkg string) []*ClassSymbol
}
