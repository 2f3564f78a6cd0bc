package symtab

import (
	"log"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symbols"
)

// Factory builds the tables of one compilation unit.  Every builder takes the
// enclosing table and returns the table of the nested scope, which is the
// enclosing table itself when the construct declares nothing.
type Factory struct {
	*Session
	thisPackage string
	logger      zerolog.Logger
}

// ThisPackage returns the package of the compilation unit.
func (f *Factory) ThisPackage() string {
	return f.thisPackage
}

// loadClassReportFailure loads a class, reporting a diagnostic at loc when it
// cannot be found.
func (f *Factory) loadClassReportFailure(loc ast.Node, fqcn string) (*symbols.ClassSymbol, bool) {
	c, ok := f.classes.ResolveClass(fqcn)
	if !ok {
		f.reporter.Report(loc, CannotResolveSymbol, fqcn)
	}
	return c, ok
}

// findClassCannotFail loads a class, standing in an unresolved placeholder
// (and reporting a diagnostic) when it cannot be found.
func (f *Factory) findClassCannotFail(loc ast.Node, fqcn string) *symbols.ClassSymbol {
	if c, ok := f.loadClassReportFailure(loc, fqcn); ok {
		return c
	}
	return symbols.NewUnresolvedClass(fqcn)
}

func (f *Factory) canBeImported(member symbols.Symbol) bool {
	return symbols.IsAccessibleIn(f.thisPackage, member)
}

// JavaLang makes the types of the platform package visible.  Types are
// loaded one name at a time, on first lookup.
func (f *Factory) JavaLang(parent *Table) *Table {
	return f.typesInPackage(parent, f.config.PlatformPackage, JavaLang)
}

// SamePackage makes the types of the unit's own package visible.
func (f *Factory) SamePackage(parent *Table) *Table {
	return f.typesInPackage(parent, f.thisPackage, SamePackage)
}

func (f *Factory) typesInPackage(parent *Table, pkg string, tag ScopeInfo) *Table {
	if !isValidPackageName(pkg) {
		log.Panicf("not a package name: %q", pkg)
	}
	return withTypes(parent, f.types.AugmentWithCache(parent.types, shadow.Shadow, tag, nil, packageResolver(f.classes, pkg)))
}

// ImportsOnDemand builds the scope of "import p.*" and "import static T.*"
// declarations.  Static imports are loaded eagerly; imported packages are
// only probed when a name is looked up and missed in every inner scope.
// Passing a single import is a programming error and panics.
func (f *Factory) ImportsOnDemand(parent *Table, imports []*ast.ImportDecl) *Table {
	if len(imports) == 0 {
		return parent
	}

	importedTypes := f.types.NewResolverBuilder()
	importedFields := f.vars.NewResolverBuilder()
	importedMethods := f.methods.NewResolverBuilder()
	var lazyPackages []string
	seen := make(map[string]bool)

	for _, imp := range imports {
		if !imp.OnDemand {
			log.Panicf("expected import on demand: %v", imp)
		}
		if !imp.Static {
			// "import p.*": deferred until a name is missed
			if pkg := imp.PackageName(); !seen[pkg] {
				seen[pkg] = true
				lazyPackages = append(lazyPackages, pkg)
			}
			continue
		}

		container, ok := f.loadClassReportFailure(imp, imp.ImportedName())
		if !ok {
			continue
		}
		for _, m := range container.Methods {
			if m.Flags.IsStatic() && f.canBeImported(m) {
				importedMethods.Append(m)
			}
		}
		for _, fld := range container.Fields {
			if fld.Flags.IsStatic() && f.canBeImported(fld) {
				importedFields.Append(fld)
			}
		}
		for _, t := range container.Classes {
			if t.Flags.IsStatic() && f.canBeImported(t) {
				importedTypes.Append(t)
			}
		}
	}

	f.logger.Debug().
		Int("imports", len(imports)).
		Strs("packages", lazyPackages).
		Msg("import on demand scope")

	vars := f.vars.ShadowBuilt(parent.vars, ImportOnDemand, importedFields)
	methods := f.methods.ShadowBuilt(parent.methods, ImportOnDemand, importedMethods)
	var types *TypeChain
	if len(lazyPackages) == 0 {
		types = f.types.ShadowBuilt(parent.types, ImportOnDemand, importedTypes)
	} else {
		types = f.types.AugmentWithCache(
			parent.types,
			shadow.Shadow,
			ImportOnDemand,
			importedTypes.MutableMap(),
			importedOnDemand(f.classes, f.thisPackage, lazyPackages),
		)
	}
	return buildTable(parent, vars, methods, types)
}

// SingleImports builds the scope of single-type and single-static imports.
// A single-type import that cannot be loaded still contributes an unresolved
// placeholder.  Passing an import on demand is a programming error and
// panics.
func (f *Factory) SingleImports(parent *Table, imports []*ast.ImportDecl) *Table {
	if len(imports) == 0 {
		return parent
	}

	importedTypes := f.types.NewResolverBuilder()
	importedFields := f.vars.NewResolverBuilder()
	importedMethods := f.methods.NewResolverBuilder()

	for _, imp := range imports {
		if imp.OnDemand {
			log.Panicf("expected single import: %v", imp)
		}

		if !imp.Static {
			importedTypes.Append(f.findClassCannotFail(imp, imp.ImportedName()))
			continue
		}

		// types, fields or methods having the same name
		simpleName := imp.ImportedSimpleName()
		className := imp.PackageName()
		if className == "" {
			log.Panicf("static import without a containing type: %v", imp)
		}
		container, ok := f.loadClassReportFailure(imp, className)
		if !ok {
			continue
		}
		for _, m := range container.Methods {
			if m.Name == simpleName && m.Flags.IsStatic() && f.canBeImported(m) {
				importedMethods.Append(m)
			}
		}
		if fld, ok := container.DeclaredField(simpleName); ok && fld.Flags.IsStatic() && f.canBeImported(fld) {
			importedFields.Append(fld)
		}
		if t, ok := container.DeclaredClass(simpleName); ok && t.Flags.IsStatic() && f.canBeImported(t) {
			importedTypes.Append(t)
		}
	}

	f.logger.Debug().Int("imports", len(imports)).Msg("single import scope")

	return buildTable(
		parent,
		f.vars.ShadowBuilt(parent.vars, SingleImport, importedFields),
		f.methods.ShadowBuilt(parent.methods, SingleImport, importedMethods),
		f.types.ShadowBuilt(parent.types, SingleImport, importedTypes),
	)
}

// TypesInFile makes the top-level types of the compilation unit visible.
func (f *Factory) TypesInFile(parent *Table, decls []*symbols.ClassSymbol) *Table {
	return withTypes(parent, f.types.AugmentSymbols(parent.types, shadow.Shadow, SameFile, typeDecls(decls)...))
}

// SelfType makes the name of a class visible inside itself.
func (f *Factory) SelfType(parent *Table, sym *symbols.ClassSymbol) *Table {
	return withTypes(parent, f.types.AugmentSymbols(parent.types, shadow.Shadow, EnclosingTypeMember, sym))
}

// TypeHeader makes the type parameters of a class visible in its header
// (extends and implements clauses, bounds).
func (f *Factory) TypeHeader(parent *Table, sym *symbols.ClassSymbol) *Table {
	return withTypes(parent, f.types.AugmentSymbols(parent.types, shadow.Shadow, TypeParam, typeDecls(sym.TypeParams)...))
}

// TypeBody builds the scope of a class body.  Types and fields are layered,
// innermost first: type parameters, declared member types (or fields),
// inherited member types (or fields), and the class name itself.  Declared
// and inherited methods share one rank so that every overload is visible.
func (f *Factory) TypeBody(parent *Table, sym *symbols.ClassSymbol) *Table {
	inheritedTypes, inheritedFields := f.inheritedMembers(sym)

	types := parent.types
	// self name
	types = f.types.AugmentSymbols(types, shadow.Shadow, EnclosingType, sym)
	// inherited classes, which shadow the enclosing type
	types = f.types.Shadow(types, Inherited, inheritedTypes)
	// member types declared here
	types = f.types.AugmentSymbols(types, shadow.Shadow, EnclosingTypeMember, typeDecls(sym.Classes)...)
	// type parameters
	types = f.types.AugmentSymbols(types, shadow.Shadow, TypeParam, typeDecls(sym.TypeParams)...)

	fields := parent.vars
	fields = f.vars.Shadow(fields, Inherited, inheritedFields)
	fields = f.vars.AugmentSymbols(fields, shadow.Shadow, EnclosingTypeMember, variables(sym.Fields)...)

	methods := parent.methods
	// a barrier ...
	methods = f.methods.AugmentWithCache(methods, shadow.Shadow, Inherited, nil, inheritedMethods(sym))
	// ... merged with the declared methods; the two layers only differ by tag
	methods = f.methods.AugmentWithCache(methods, shadow.Merge, EnclosingTypeMember, nil, declaredMethods(sym))

	f.logger.Debug().Str("class", sym.Name).Msg("type body scope")

	return buildTable(parent, fields, methods, types)
}

// BodyDeclaration builds the scope of a method or constructor: formal
// parameters shadow fields and method type parameters shadow types.
func (f *Factory) BodyDeclaration(parent *Table, formals []*symbols.LocalSymbol, tparams []*symbols.TypeParamSymbol) *Table {
	return buildTable(
		parent,
		f.vars.AugmentSymbols(parent.vars, shadow.Shadow, FormalParam, variables(formals)...),
		parent.methods,
		f.types.AugmentSymbols(parent.types, shadow.Shadow, TypeParam, typeDecls(tparams)...),
	)
}

// RecordCtor builds the scope of a compact record constructor, whose formal
// parameters are the implicit record components.
func (f *Factory) RecordCtor(parent *Table, ctor *symbols.MethodSymbol) *Table {
	return withVars(parent, f.vars.AugmentSymbols(parent.vars, shadow.Shadow, FormalParam, variables(ctor.Formals)...))
}

// LocalVars declares local variables.  They are merged with the variables
// visible in the table, so that a redeclared local is reported together with
// the local it conflicts with.
func (f *Factory) LocalVars(parent *Table, vars ...*symbols.LocalSymbol) *Table {
	return withVars(parent, f.vars.AugmentSymbols(parent.vars, shadow.Merge, Local, variables(vars)...))
}

// LocalType declares a local class.  Whether it merges with or shadows the
// types already visible is decided by Config.LocalTypes.
func (f *Factory) LocalType(parent *Table, sym *symbols.ClassSymbol) *Table {
	mode := shadow.Merge
	if f.config.LocalTypes == LocalTypesShadow {
		mode = shadow.Shadow
	}
	return withTypes(parent, f.types.AugmentSymbols(parent.types, mode, Local, sym))
}

func isValidPackageName(pkg string) bool {
	if pkg == "" {
		return true
	}
	for _, part := range strings.Split(pkg, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			if !(r == '_' || r == '$' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r > 0x7f || i > 0 && '0' <= r && r <= '9') {
				return false
			}
		}
	}
	return true
}
