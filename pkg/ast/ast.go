// Package ast holds the declaration nodes that scope building consumes. The
// nodes are produced by the parser and already carry the symbols of the
// declarations they introduce.
package ast

import (
	"fmt"

	"github.com/stackb/java-symtab/pkg/symbols"
)

// Position locates a node in its source file.  Lines and columns are
// 1-based.
type Position struct {
	File string
	Line int
	Col  int
}

// Pos implements the Node interface.
func (p Position) Pos() Position { return p }

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Node is anything that can be the location of a diagnostic.
type Node interface {
	Pos() Position
}

// CompilationUnit is one source file.
type CompilationUnit struct {
	Position
	// Package is the declared package, "" for the default package.
	Package string
	Imports []*ImportDecl
	Types   []*TypeDecl
}

// TypeDecl is a class, interface, enum, record or annotation declaration.
type TypeDecl struct {
	Position
	Symbol       *symbols.ClassSymbol
	Methods      []*MethodDecl
	Initializers []*Block
	Types        []*TypeDecl
}

// MethodDecl is a method or constructor declaration.
type MethodDecl struct {
	Position
	Symbol *symbols.MethodSymbol
	// CompactCtor marks the compact canonical constructor of a record, whose
	// formals are implicit.
	CompactCtor bool
	// Body is nil for abstract and native methods.
	Body *Block
}

// Statement is a statement of a method body.
type Statement interface {
	Node
	stmt()
}

// Block is a braced list of statements.
type Block struct {
	Position
	Statements []Statement
}

// LocalVarDecl declares one or more local variables.
type LocalVarDecl struct {
	Position
	Vars []*symbols.LocalSymbol
}

// LocalClassDecl declares a class inside a block.
type LocalClassDecl struct {
	Position
	Type *TypeDecl
}

// ExprStmt is any other statement.  Its only role for scoping is to mark a
// position at which names are looked up.
type ExprStmt struct {
	Position
	Text string
}

func (*Block) stmt()          {}
func (*LocalVarDecl) stmt()   {}
func (*LocalClassDecl) stmt() {}
func (*ExprStmt) stmt()       {}
