// Package classpath provides an in-memory implementation of
// symbols.ClassResolver backed by classpath descriptions.
package classpath

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dghubble/trie"

	"github.com/stackb/java-symtab/pkg/index"
	"github.com/stackb/java-symtab/pkg/symbols"
)

const objectClassName = "java.lang.Object"

// ErrClassNotFound is returned when a class is not on the classpath.
var ErrClassNotFound = fmt.Errorf("class not found")

// entry is what the trie stores for a canonical name.
type entry struct {
	spec *index.ClassSpec
	// pkg is the package of the class.
	pkg string
	// enclosing is the canonical name of the enclosing class, "" for
	// top-level classes.
	enclosing string
	// symbol is set once the class has been loaded, or up front for classes
	// added as symbols.
	symbol *symbols.ClassSymbol
}

// ClassPath implements symbols.ClassResolver.  Classes are registered as
// specs and turned into symbols on first use; every class is loaded once.
// A ClassPath is safe for concurrent use.
type ClassPath struct {
	mu       sync.Mutex
	classes  *trie.PathTrie
	packages map[string][]string
}

// New creates an empty ClassPath.
func New() *ClassPath {
	return &ClassPath{
		classes: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: importSegmenter,
		}),
		packages: make(map[string][]string),
	}
}

// Load creates a ClassPath from description files.
func Load(filenames ...string) (*ClassPath, error) {
	cp := New()
	for _, filename := range filenames {
		spec, err := index.ReadClassPathSpec(filename)
		if err != nil {
			return nil, err
		}
		if err := cp.AddSpec(spec); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	return cp, nil
}

// AddSpec registers the classes of a classpath description.  It is an error
// to register the same canonical name twice.
func (cp *ClassPath) AddSpec(spec *index.ClassPathSpec) error {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	for _, cs := range spec.Classes {
		pkg := cs.Package
		if pkg == "" {
			if i := strings.LastIndexByte(cs.Name, '.'); i > 0 {
				pkg = cs.Name[:i]
			}
		}
		if err := cp.put(cs.Name, &entry{spec: cs, pkg: pkg}); err != nil {
			return err
		}
	}
	return nil
}

// AddClass registers an already built class symbol, typically a class
// declared in the sources under analysis, and its member classes.
func (cp *ClassPath) AddClass(sym *symbols.ClassSymbol) error {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.putSymbol(sym, "")
}

func (cp *ClassPath) putSymbol(sym *symbols.ClassSymbol, enclosing string) error {
	if err := cp.put(sym.Name, &entry{pkg: sym.Package, enclosing: enclosing, symbol: sym}); err != nil {
		return err
	}
	for _, nested := range sym.Classes {
		if err := cp.putSymbol(nested, sym.Name); err != nil {
			return err
		}
	}
	return nil
}

func (cp *ClassPath) put(name string, e *entry) error {
	if !isValidClassName(name) {
		return fmt.Errorf("invalid class name %q", name)
	}
	if e.spec != nil {
		if err := validate(e.spec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if !cp.classes.Put(name, e) {
		return fmt.Errorf("duplicate class: %s", name)
	}
	if e.enclosing == "" {
		cp.packages[e.pkg] = append(cp.packages[e.pkg], name)
	}
	if e.spec != nil {
		for _, nested := range e.spec.Classes {
			if err := cp.put(name+"."+nested.Name, &entry{spec: nested, pkg: e.pkg, enclosing: name}); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveClass implements part of the symbols.ClassResolver interface.
func (cp *ClassPath) ResolveClass(fqcn string) (*symbols.ClassSymbol, bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.load(fqcn)
}

// ResolveClassInPackage implements part of the symbols.ClassResolver
// interface.
func (cp *ClassPath) ResolveClassInPackage(pkg, simpleName string) (*symbols.ClassSymbol, bool) {
	name := simpleName
	if pkg != "" {
		name = pkg + "." + simpleName
	}
	cp.mu.Lock()
	defer cp.mu.Unlock()
	e, ok := cp.get(name)
	if !ok || e.enclosing != "" || e.pkg != pkg {
		return nil, false
	}
	return cp.load(name)
}

// TypesInPackage implements part of the symbols.ClassResolver interface.
func (cp *ClassPath) TypesInPackage(pkg string) []*symbols.ClassSymbol {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	var classes []*symbols.ClassSymbol
	for _, name := range cp.packages[pkg] {
		if c, ok := cp.load(name); ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// MustResolveClass is like ResolveClass but returns ErrClassNotFound.
func (cp *ClassPath) MustResolveClass(fqcn string) (*symbols.ClassSymbol, error) {
	if c, ok := cp.ResolveClass(fqcn); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, fqcn)
}

func (cp *ClassPath) get(name string) (*entry, bool) {
	v := cp.classes.Get(name)
	if v == nil {
		return nil, false
	}
	return v.(*entry), true
}

// load must be called with the lock held.
func (cp *ClassPath) load(name string) (*symbols.ClassSymbol, bool) {
	e, ok := cp.get(name)
	if !ok {
		return nil, false
	}
	if e.symbol != nil {
		return e.symbol, true
	}
	if e.enclosing != "" {
		// member classes are built with their enclosing class
		if _, ok := cp.load(e.enclosing); !ok || e.symbol == nil {
			return nil, false
		}
		return e.symbol, true
	}
	cp.build(name, e, nil)
	return e.symbol, true
}

// build turns a spec into a symbol, recursively for member classes.  The
// symbol is recorded before supertypes are linked so that cyclic
// hierarchies terminate.
func (cp *ClassPath) build(name string, e *entry, enclosing *symbols.ClassSymbol) {
	spec := e.spec
	flags, _ := symbols.ParseModifiers(spec.Modifiers...)
	kind, _ := symbols.ParseClassKind(spec.Kind)
	if enclosing != nil && kind != symbols.Class {
		// member interfaces, enums and records are implicitly static
		flags |= symbols.Static
	}
	if enclosing != nil && enclosing.IsInterface() {
		flags |= symbols.Public | symbols.Static
	}
	c := &symbols.ClassSymbol{
		Name:      name,
		Package:   e.pkg,
		Kind:      kind,
		Flags:     flags,
		Enclosing: enclosing,
	}
	e.symbol = c

	for _, tp := range spec.TypeParams {
		c.AddTypeParam(tp)
	}
	for _, fs := range spec.Fields {
		mods, _ := symbols.ParseModifiers(fs.Modifiers...)
		if c.IsInterface() {
			mods |= symbols.Public | symbols.Static | symbols.Final
		}
		c.AddField(fs.Name, mods)
	}
	for _, ms := range spec.Methods {
		mods, _ := symbols.ParseModifiers(ms.Modifiers...)
		if c.IsInterface() && !mods.IsPrivate() {
			mods |= symbols.Public
		}
		c.AddMethod(ms.Name, mods, ms.Params...)
	}
	for _, nested := range spec.Classes {
		nestedName := name + "." + nested.Name
		ne, ok := cp.get(nestedName)
		if !ok {
			continue
		}
		cp.build(nestedName, ne, c)
		c.Classes = append(c.Classes, ne.symbol)
	}

	switch {
	case spec.Super != "":
		c.Super = cp.loadOrPlaceholder(spec.Super)
	case kind == symbols.Class && name != objectClassName:
		if object, ok := cp.load(objectClassName); ok {
			c.Super = object
		}
	}
	for _, iface := range spec.Interfaces {
		c.Interfaces = append(c.Interfaces, cp.loadOrPlaceholder(iface))
	}
}

func (cp *ClassPath) loadOrPlaceholder(name string) *symbols.ClassSymbol {
	if c, ok := cp.load(name); ok {
		return c
	}
	return symbols.NewUnresolvedClass(name)
}

func validate(spec *index.ClassSpec) error {
	if _, err := symbols.ParseClassKind(spec.Kind); err != nil {
		return err
	}
	if _, err := symbols.ParseModifiers(spec.Modifiers...); err != nil {
		return err
	}
	for _, m := range append(append([]*index.MemberSpec(nil), spec.Fields...), spec.Methods...) {
		if _, err := symbols.ParseModifiers(m.Modifiers...); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
	}
	return nil
}

// importSegmenter segments dotted names.  For example, "a.b.c" -> ("a", 2),
// ("b", 4), ("c", -1) in successive calls.  It does not allocate.
func importSegmenter(path string, start int) (segment string, next int) {
	if start < 0 || start >= len(path) {
		return "", -1
	}
	end := strings.IndexByte(path[start:], '.')
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end], start + end + 1
}

func isValidClassName(name string) bool {
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
