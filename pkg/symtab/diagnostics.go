package symtab

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stackb/java-symtab/pkg/ast"
)

// DiagnosticKind classifies the problems found while building scopes.
type DiagnosticKind int

const (
	// CannotResolveSymbol is reported when an imported type or package
	// member cannot be loaded.
	CannotResolveSymbol DiagnosticKind = iota
)

// String implements fmt.Stringer.
func (k DiagnosticKind) String() string {
	switch k {
	case CannotResolveSymbol:
		return "CANNOT_RESOLVE_SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Format returns the message template of the kind.
func (k DiagnosticKind) Format() string {
	switch k {
	case CannotResolveSymbol:
		return "cannot resolve symbol %s"
	default:
		return "%v"
	}
}

// Reporter receives diagnostics.  Reporting never interrupts scope building.
type Reporter interface {
	Report(loc ast.Node, kind DiagnosticKind, args ...interface{})
}

// Diagnostic is a reported problem.
type Diagnostic struct {
	Pos     ast.Position
	Kind    DiagnosticKind
	Message string
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s", d.Pos, d.Message)
}

// LogReporter writes diagnostics as warnings to a zerolog logger.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report implements the Reporter interface.
func (r *LogReporter) Report(loc ast.Node, kind DiagnosticKind, args ...interface{}) {
	pos := loc.Pos()
	r.logger.Warn().
		Str("kind", kind.String()).
		Str("file", pos.File).
		Int("line", pos.Line).
		Int("col", pos.Col).
		Msgf(kind.Format(), args...)
}

// Collector keeps the diagnostics it receives and forwards them to an
// optional next reporter.
type Collector struct {
	next Reporter

	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewCollector creates a Collector.  next may be nil.
func NewCollector(next Reporter) *Collector {
	return &Collector{next: next}
}

// Report implements the Reporter interface.
func (c *Collector) Report(loc ast.Node, kind DiagnosticKind, args ...interface{}) {
	c.mu.Lock()
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Pos:     loc.Pos(),
		Kind:    kind,
		Message: fmt.Sprintf(kind.Format(), args...),
	})
	c.mu.Unlock()
	if c.next != nil {
		c.next.Report(loc, kind, args...)
	}
}

// Diagnostics returns a copy of what was reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}
