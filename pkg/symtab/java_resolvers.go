package symtab

import (
	"strings"

	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symbols"
)

// packageResolver resolves simple names to the top-level types of a package.
// It queries the class resolver one name at a time and never enumerates the
// package.
func packageResolver(classes symbols.ClassResolver, pkg string) shadow.NameResolver[symbols.TypeDeclSymbol] {
	return shadow.ResolverFunc[symbols.TypeDeclSymbol](func(simpleName string) []symbols.TypeDeclSymbol {
		if c, ok := classes.ResolveClassInPackage(pkg, simpleName); ok {
			return []symbols.TypeDeclSymbol{c}
		}
		return nil
	})
}

// importedOnDemand resolves simple names against the packages (or types)
// named by "import p.*" declarations, in import order.  Every accessible
// match is returned so that an ambiguous name shows all its candidates.
func importedOnDemand(classes symbols.ClassResolver, thisPackage string, packages []string) shadow.NameResolver[symbols.TypeDeclSymbol] {
	return shadow.ResolverFunc[symbols.TypeDeclSymbol](func(simpleName string) []symbols.TypeDeclSymbol {
		var found []symbols.TypeDeclSymbol
		for _, pkg := range packages {
			// pkg may name a type, so resolve by canonical name
			c, ok := classes.ResolveClass(pkg + "." + simpleName)
			if !ok {
				continue
			}
			if symbols.IsAccessibleIn(thisPackage, c) {
				found = append(found, c)
			}
		}
		return found
	})
}

// inheritedMembers computes the member types and fields a class inherits.
// Supertypes are searched breadth first, the superclass before the
// interfaces, and the first inheritable declaration of a name wins.  Members
// that are not inherited (private, or package private across packages) hide
// nothing.
func (s *Session) inheritedMembers(c *symbols.ClassSymbol) (shadow.NameResolver[symbols.TypeDeclSymbol], shadow.NameResolver[symbols.VariableSymbol]) {
	types := s.types.NewResolverBuilder()
	fields := s.vars.NewResolverBuilder()
	seenTypes := make(map[string]bool)
	seenFields := make(map[string]bool)

	walkSupertypes(c, func(super *symbols.ClassSymbol) {
		for _, f := range super.Fields {
			if seenFields[f.Name] || !isInheritedBy(c, f) {
				continue
			}
			seenFields[f.Name] = true
			fields.Append(f)
		}
		for _, t := range super.Classes {
			name := t.SimpleName()
			if seenTypes[name] || !isInheritedBy(c, t) {
				continue
			}
			seenTypes[name] = true
			types.Append(t)
		}
	})

	return types.Build(), fields.Build()
}

// declaredMethods resolves the methods a class declares.
func declaredMethods(c *symbols.ClassSymbol) shadow.NameResolver[*symbols.MethodSymbol] {
	return shadow.ResolverFunc[*symbols.MethodSymbol](func(name string) []*symbols.MethodSymbol {
		var found []*symbols.MethodSymbol
		for _, m := range c.Methods {
			if m.Name == name {
				found = append(found, m)
			}
		}
		return found
	})
}

// inheritedMethods resolves the methods a class inherits: every overload of
// a supertype that is inheritable and not overridden by a method declared
// nearer (in the class itself or a nearer supertype).  Static interface
// methods are never inherited.
func inheritedMethods(c *symbols.ClassSymbol) shadow.NameResolver[*symbols.MethodSymbol] {
	return shadow.ResolverFunc[*symbols.MethodSymbol](func(name string) []*symbols.MethodSymbol {
		overridden := make(map[string]bool)
		for _, m := range c.Methods {
			if m.Name == name {
				overridden[paramKey(m)] = true
			}
		}
		var found []*symbols.MethodSymbol
		walkSupertypes(c, func(super *symbols.ClassSymbol) {
			for _, m := range super.Methods {
				if m.Name != name || !isInheritedBy(c, m) {
					continue
				}
				if super.IsInterface() && m.Flags.IsStatic() {
					continue
				}
				key := paramKey(m)
				if overridden[key] {
					continue
				}
				overridden[key] = true
				found = append(found, m)
			}
		})
		return found
	})
}

// walkSupertypes visits every supertype of c once, breadth first, the
// superclass before the interfaces at each level.  Unresolved supertypes have
// no members and are skipped.
func walkSupertypes(c *symbols.ClassSymbol, visit func(*symbols.ClassSymbol)) {
	seen := map[*symbols.ClassSymbol]bool{c: true}
	queue := c.Supertypes()
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil || seen[next] {
			continue
		}
		seen[next] = true
		if next.Unresolved {
			continue
		}
		visit(next)
		queue = append(queue, next.Supertypes()...)
	}
}

// isInheritedBy reports whether a member of a supertype is inherited by c:
// it must not be private, and a package-private member only crosses into
// subclasses of the same package.
func isInheritedBy(c *symbols.ClassSymbol, member symbols.Symbol) bool {
	mods := member.Modifiers()
	switch {
	case mods.IsPrivate():
		return false
	case mods.IsPublic(), mods.Has(symbols.Protected):
		return true
	}
	owner := member.EnclosingClass()
	if owner != nil && owner.IsInterface() {
		// interface members are implicitly public
		return true
	}
	return symbols.PackageOf(member) == c.Package
}

func paramKey(m *symbols.MethodSymbol) string {
	return strings.Join(m.ParamTypes, ",")
}
