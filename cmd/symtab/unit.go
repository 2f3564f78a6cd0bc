package main

import (
	"fmt"
	"strings"

	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/index"
	"github.com/stackb/java-symtab/pkg/symbols"
)

// newCompilationUnit turns a unit description into declaration nodes.  The
// declared classes are added to the classpath so that same-package lookups
// and supertypes declared in the unit resolve to them.
func newCompilationUnit(spec *index.UnitSpec, cp *classpath.ClassPath) (*ast.CompilationUnit, error) {
	pos := ast.Position{File: spec.File, Line: 1, Col: 1}
	unit := &ast.CompilationUnit{
		Position: pos,
		Package:  spec.Package,
	}

	for i, text := range spec.Imports {
		static := false
		if rest, ok := strings.CutPrefix(text, "static "); ok {
			static = true
			text = rest
		}
		imp := ast.NewImport(strings.TrimSpace(text), static)
		// one import per line, after the package declaration
		imp.Position = ast.Position{File: spec.File, Line: i + 3, Col: 1}
		unit.Imports = append(unit.Imports, imp)
	}

	b := &unitBuilder{file: spec.File, pkg: spec.Package}
	for _, cs := range spec.Types {
		td, err := b.typeDecl(nil, cs)
		if err != nil {
			return nil, err
		}
		unit.Types = append(unit.Types, td)
		if err := cp.AddClass(td.Symbol); err != nil {
			return nil, err
		}
	}

	// supertypes are linked once every declared class is known
	for _, link := range b.links {
		switch {
		case link.spec.Super != "":
			link.sym.Super = resolveSupertype(cp, link.sym, link.spec.Super)
		case link.sym.Kind == symbols.Class:
			if object, ok := cp.ResolveClass("java.lang.Object"); ok {
				link.sym.Super = object
			}
		}
		for _, iface := range link.spec.Interfaces {
			link.sym.Interfaces = append(link.sym.Interfaces, resolveSupertype(cp, link.sym, iface))
		}
	}

	return unit, nil
}

type supertypeLink struct {
	sym  *symbols.ClassSymbol
	spec *index.ClassSpec
}

type unitBuilder struct {
	file  string
	pkg   string
	links []supertypeLink
}

func (b *unitBuilder) typeDecl(enclosing *symbols.ClassSymbol, cs *index.ClassSpec) (*ast.TypeDecl, error) {
	kind, err := symbols.ParseClassKind(cs.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cs.Name, err)
	}
	flags, err := symbols.ParseModifiers(cs.Modifiers...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cs.Name, err)
	}

	var sym *symbols.ClassSymbol
	if enclosing == nil {
		sym = symbols.NewClass(b.pkg, cs.Name, flags)
	} else {
		sym = enclosing.AddClass(cs.Name, flags)
	}
	sym.Kind = kind
	b.links = append(b.links, supertypeLink{sym: sym, spec: cs})

	td := &ast.TypeDecl{
		Position: ast.Position{File: b.file},
		Symbol:   sym,
	}
	for _, tp := range cs.TypeParams {
		sym.AddTypeParam(tp)
	}
	for _, fs := range cs.Fields {
		mods, err := symbols.ParseModifiers(fs.Modifiers...)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", cs.Name, fs.Name, err)
		}
		sym.AddField(fs.Name, mods)
	}
	for _, ms := range cs.Methods {
		md, err := b.methodDecl(sym, ms)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", cs.Name, ms.Name, err)
		}
		td.Methods = append(td.Methods, md)
	}
	for _, nested := range cs.Classes {
		ntd, err := b.typeDecl(sym, nested)
		if err != nil {
			return nil, err
		}
		td.Types = append(td.Types, ntd)
	}
	return td, nil
}

func (b *unitBuilder) methodDecl(class *symbols.ClassSymbol, ms *index.MemberSpec) (*ast.MethodDecl, error) {
	mods, err := symbols.ParseModifiers(ms.Modifiers...)
	if err != nil {
		return nil, err
	}
	if len(ms.Formals) > 0 && len(ms.Formals) != len(ms.Params) {
		return nil, fmt.Errorf("%d formals for %d params", len(ms.Formals), len(ms.Params))
	}

	m := class.AddMethod(ms.Name, mods)
	for i, typ := range ms.Params {
		name := fmt.Sprintf("arg%d", i)
		if len(ms.Formals) > 0 {
			name = ms.Formals[i]
		}
		m.AddFormal(name, typ)
	}

	pos := ast.Position{File: b.file}
	md := &ast.MethodDecl{Position: pos, Symbol: m}
	if mods.Has(symbols.Abstract) {
		return md, nil
	}
	body := &ast.Block{Position: pos}
	for _, local := range ms.Locals {
		body.Statements = append(body.Statements, &ast.LocalVarDecl{
			Position: pos,
			Vars:     []*symbols.LocalSymbol{symbols.NewLocal(local)},
		})
	}
	// lookups at the end of the body see every local
	body.Statements = append(body.Statements, &ast.ExprStmt{Position: pos})
	md.Body = body
	return md, nil
}

func resolveSupertype(cp *classpath.ClassPath, sym *symbols.ClassSymbol, name string) *symbols.ClassSymbol {
	if c, ok := cp.ResolveClass(name); ok {
		return c
	}
	if sym.Package != "" {
		if c, ok := cp.ResolveClassInPackage(sym.Package, name); ok {
			return c
		}
	}
	return symbols.NewUnresolvedClass(name)
}
