package symbols

import (
	"fmt"
	"strings"
)

// FieldSymbol is a field declared in a class.
type FieldSymbol struct {
	Name  string
	Flags Modifiers
	Class *ClassSymbol
}

func (f *FieldSymbol) variable()                    {}
func (f *FieldSymbol) SimpleName() string           { return f.Name }
func (f *FieldSymbol) Namespace() Namespace         { return Variables }
func (f *FieldSymbol) EnclosingClass() *ClassSymbol { return f.Class }
func (f *FieldSymbol) Modifiers() Modifiers         { return f.Flags }

func (f *FieldSymbol) String() string {
	return fmt.Sprintf("field %s.%s", f.Class.SimpleName(), f.Name)
}

// LocalSymbol is a formal parameter or a local variable.  It has no
// enclosing class.
type LocalSymbol struct {
	Name   string
	Flags  Modifiers
	Formal bool
}

// NewFormal creates a formal parameter symbol.
func NewFormal(name string) *LocalSymbol {
	return &LocalSymbol{Name: name, Formal: true}
}

// NewLocal creates a local variable symbol.
func NewLocal(name string) *LocalSymbol {
	return &LocalSymbol{Name: name}
}

func (l *LocalSymbol) variable()                    {}
func (l *LocalSymbol) SimpleName() string           { return l.Name }
func (l *LocalSymbol) Namespace() Namespace         { return Variables }
func (l *LocalSymbol) EnclosingClass() *ClassSymbol { return nil }
func (l *LocalSymbol) Modifiers() Modifiers         { return l.Flags }

func (l *LocalSymbol) String() string {
	if l.Formal {
		return "formal " + l.Name
	}
	return "local " + l.Name
}

// TypeParamSymbol is a type parameter of a class or a method.
type TypeParamSymbol struct {
	Name string
	// Class is set for class type parameters.
	Class *ClassSymbol
	// Method is set for method type parameters.
	Method *MethodSymbol
}

// NewTypeParam creates a type parameter that is not attached to a class.
func NewTypeParam(name string) *TypeParamSymbol {
	return &TypeParamSymbol{Name: name}
}

func (tp *TypeParamSymbol) typeDecl()            {}
func (tp *TypeParamSymbol) SimpleName() string   { return tp.Name }
func (tp *TypeParamSymbol) Namespace() Namespace { return Types }
func (tp *TypeParamSymbol) Modifiers() Modifiers { return 0 }

func (tp *TypeParamSymbol) EnclosingClass() *ClassSymbol {
	if tp.Method != nil {
		return tp.Method.Class
	}
	return tp.Class
}

func (tp *TypeParamSymbol) String() string {
	return "tparam " + tp.Name
}

// MethodSymbol is a method or a constructor.
type MethodSymbol struct {
	Name  string
	Flags Modifiers
	Class *ClassSymbol
	// ParamTypes are the erased parameter type names; two methods with the
	// same name and parameter types override one another.
	ParamTypes []string
	// Formals are the formal parameters, when known (source declarations).
	Formals []*LocalSymbol
	// TypeParams are the method type parameters.
	TypeParams []*TypeParamSymbol
	// Ctor is set for constructors.
	Ctor bool
}

func (m *MethodSymbol) SimpleName() string           { return m.Name }
func (m *MethodSymbol) Namespace() Namespace         { return Methods }
func (m *MethodSymbol) EnclosingClass() *ClassSymbol { return m.Class }
func (m *MethodSymbol) Modifiers() Modifiers         { return m.Flags }

// AddFormal appends a formal parameter of the given type.
func (m *MethodSymbol) AddFormal(name, typ string) *LocalSymbol {
	f := NewFormal(name)
	m.Formals = append(m.Formals, f)
	m.ParamTypes = append(m.ParamTypes, typ)
	return f
}

// AddTypeParam declares a method type parameter.
func (m *MethodSymbol) AddTypeParam(name string) *TypeParamSymbol {
	tp := &TypeParamSymbol{Name: name, Method: m}
	m.TypeParams = append(m.TypeParams, tp)
	return tp
}

// Signature returns the name and erased parameter types, e.g.
// "max(int,int)".
func (m *MethodSymbol) Signature() string {
	return m.Name + "(" + strings.Join(m.ParamTypes, ",") + ")"
}

func (m *MethodSymbol) String() string {
	if m.Ctor {
		return "ctor " + m.Class.SimpleName() + "." + m.Signature()
	}
	return "method " + m.Class.SimpleName() + "." + m.Signature()
}
