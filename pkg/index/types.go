package index

// ClassPathSpec describes the classes available to an analysis, usually
// extracted from jars or from already parsed sources.
type ClassPathSpec struct {
	// Label names where the classes come from, for diagnostics.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Classes is the list of top-level classes.
	Classes []*ClassSpec `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// ClassSpec describes one class.  Top-level classes are named by canonical
// name ("java.util.List"); member classes, listed under their enclosing
// class, by simple name ("Entry").
type ClassSpec struct {
	// Name is the canonical name (top-level) or simple name (member).
	Name string `json:"name" yaml:"name"`
	// Package is the package of a top-level class.  When empty it is the
	// canonical name minus its last segment.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Kind is one of class, interface, enum, record, annotation.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Modifiers are source keywords, e.g. ["public", "static"].
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	// Super is the canonical name of the superclass.
	Super string `json:"super,omitempty" yaml:"super,omitempty"`
	// Interfaces are the canonical names of the direct interfaces.
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	// TypeParams are the names of the type parameters.
	TypeParams []string `json:"typeParams,omitempty" yaml:"typeParams,omitempty"`
	// Fields are the declared fields.
	Fields []*MemberSpec `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Methods are the declared methods.
	Methods []*MemberSpec `json:"methods,omitempty" yaml:"methods,omitempty"`
	// Classes are the declared member classes.
	Classes []*ClassSpec `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// MemberSpec describes a field or a method.
type MemberSpec struct {
	Name      string   `json:"name" yaml:"name"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	// Params are the erased parameter types of a method.
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	// Formals are the parameter names of a method declared in a unit,
	// parallel to Params.
	Formals []string `json:"formals,omitempty" yaml:"formals,omitempty"`
	// Locals are the local variables declared in the body of a method
	// declared in a unit, in declaration order.
	Locals []string `json:"locals,omitempty" yaml:"locals,omitempty"`
}

// UnitSpec describes the declarations of one compilation unit.
type UnitSpec struct {
	// File is the source filename.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Package is the declared package.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Imports are import declarations as written without the keyword and
	// semicolon, e.g. "java.util.*" or "static java.util.Collections.*".
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	// Types are the top-level types declared in the file.  Names are simple
	// names.
	Types []*ClassSpec `json:"types,omitempty" yaml:"types,omitempty"`
}
