package symbols

import (
	"fmt"
	"strings"
)

// ClassKind distinguishes the flavours of type declaration.
type ClassKind int

const (
	Class ClassKind = iota
	Interface
	Enum
	Record
	Annotation
)

func (k ClassKind) String() string {
	switch k {
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Record:
		return "record"
	case Annotation:
		return "@interface"
	default:
		return "class"
	}
}

// ParseClassKind parses the kind names used in classpath descriptions:
// class (or ""), interface, enum, record and annotation.
func ParseClassKind(kind string) (ClassKind, error) {
	switch kind {
	case "", "class":
		return Class, nil
	case "interface":
		return Interface, nil
	case "enum":
		return Enum, nil
	case "record":
		return Record, nil
	case "annotation":
		return Annotation, nil
	default:
		return 0, fmt.Errorf("unknown class kind %q", kind)
	}
}

// ClassSymbol describes a class, interface, enum, record or annotation type,
// either loaded from the classpath or declared in the analyzed source.
type ClassSymbol struct {
	// Name is the canonical name, e.g. "java.util.Map.Entry".
	Name string
	// Package is the package name, "" for the default package.
	Package string
	// Kind is the declaration flavour.
	Kind ClassKind
	// Flags is the declared modifier set.
	Flags Modifiers
	// Enclosing is the declaring class of a member type.
	Enclosing *ClassSymbol
	// Super is the direct superclass, nil for java.lang.Object and
	// interfaces.
	Super *ClassSymbol
	// Interfaces are the directly implemented or extended interfaces.
	Interfaces []*ClassSymbol
	// TypeParams are the declared type parameters.
	TypeParams []*TypeParamSymbol
	// Fields are the declared fields.
	Fields []*FieldSymbol
	// Methods are the declared methods, constructors excluded.
	Methods []*MethodSymbol
	// Ctors are the declared constructors.
	Ctors []*MethodSymbol
	// Classes are the declared member types.
	Classes []*ClassSymbol
	// Unresolved is set on placeholders standing in for classes that could
	// not be loaded.
	Unresolved bool
}

// NewClass creates a top-level class symbol.
func NewClass(pkg, simpleName string, flags Modifiers) *ClassSymbol {
	name := simpleName
	if pkg != "" {
		name = pkg + "." + simpleName
	}
	return &ClassSymbol{Name: name, Package: pkg, Flags: flags}
}

// NewUnresolvedClass creates the placeholder for a class that could not be
// loaded.  The package is guessed from the name.
func NewUnresolvedClass(fqcn string) *ClassSymbol {
	pkg := ""
	if i := strings.LastIndexByte(fqcn, '.'); i > 0 {
		pkg = fqcn[:i]
	}
	return &ClassSymbol{
		Name:       fqcn,
		Package:    pkg,
		Flags:      Public,
		Unresolved: true,
	}
}

func (c *ClassSymbol) typeDecl() {}

// SimpleName implements part of the Symbol interface.
func (c *ClassSymbol) SimpleName() string {
	return simpleNameOf(c.Name)
}

// Namespace implements part of the Symbol interface.
func (c *ClassSymbol) Namespace() Namespace { return Types }

// EnclosingClass implements part of the Symbol interface.
func (c *ClassSymbol) EnclosingClass() *ClassSymbol { return c.Enclosing }

// Modifiers implements part of the Symbol interface.
func (c *ClassSymbol) Modifiers() Modifiers { return c.Flags }

// IsInterface reports whether the class is an interface or annotation type.
func (c *ClassSymbol) IsInterface() bool {
	return c.Kind == Interface || c.Kind == Annotation
}

// String implements fmt.Stringer.
func (c *ClassSymbol) String() string {
	if c.Unresolved {
		return fmt.Sprintf("unresolved %s", c.Name)
	}
	return fmt.Sprintf("%v %s", c.Kind, c.Name)
}

// AddClass declares a member type.
func (c *ClassSymbol) AddClass(simpleName string, flags Modifiers) *ClassSymbol {
	nested := &ClassSymbol{
		Name:      c.Name + "." + simpleName,
		Package:   c.Package,
		Flags:     flags,
		Enclosing: c,
	}
	c.Classes = append(c.Classes, nested)
	return nested
}

// AddField declares a field.
func (c *ClassSymbol) AddField(name string, flags Modifiers) *FieldSymbol {
	f := &FieldSymbol{Name: name, Flags: flags, Class: c}
	c.Fields = append(c.Fields, f)
	return f
}

// AddMethod declares a method taking parameters of the given (erased) types.
func (c *ClassSymbol) AddMethod(name string, flags Modifiers, paramTypes ...string) *MethodSymbol {
	m := &MethodSymbol{Name: name, Flags: flags, Class: c, ParamTypes: paramTypes}
	c.Methods = append(c.Methods, m)
	return m
}

// AddCtor declares a constructor.
func (c *ClassSymbol) AddCtor(flags Modifiers, paramTypes ...string) *MethodSymbol {
	m := &MethodSymbol{Name: c.SimpleName(), Flags: flags, Class: c, ParamTypes: paramTypes, Ctor: true}
	c.Ctors = append(c.Ctors, m)
	return m
}

// AddTypeParam declares a class type parameter.
func (c *ClassSymbol) AddTypeParam(name string) *TypeParamSymbol {
	tp := &TypeParamSymbol{Name: name, Class: c}
	c.TypeParams = append(c.TypeParams, tp)
	return tp
}

// DeclaredField returns the field with the given name, if declared here.
func (c *ClassSymbol) DeclaredField(name string) (*FieldSymbol, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// DeclaredClass returns the member type with the given simple name, if
// declared here.
func (c *ClassSymbol) DeclaredClass(simpleName string) (*ClassSymbol, bool) {
	for _, t := range c.Classes {
		if t.SimpleName() == simpleName {
			return t, true
		}
	}
	return nil, false
}

// Supertypes returns the direct superclass (if any) followed by the direct
// interfaces.
func (c *ClassSymbol) Supertypes() []*ClassSymbol {
	supers := make([]*ClassSymbol, 0, len(c.Interfaces)+1)
	if c.Super != nil {
		supers = append(supers, c.Super)
	}
	return append(supers, c.Interfaces...)
}

func simpleNameOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
