package symtab

import (
	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symbols"
)

// Session holds what every table of an analysis session shares: the
// configuration, the class loader, the diagnostics sink and the chain
// builders of the three namespaces.
type Session struct {
	config   *Config
	classes  symbols.ClassResolver
	reporter Reporter

	types   *shadow.Builder[symbols.TypeDeclSymbol, ScopeInfo]
	vars    *shadow.Builder[symbols.VariableSymbol, ScopeInfo]
	methods *shadow.Builder[*symbols.MethodSymbol, ScopeInfo]
}

// NewSession creates a session.  A nil config means DefaultConfig().
func NewSession(config *Config, classes symbols.ClassResolver, reporter Reporter) *Session {
	if config == nil {
		config = DefaultConfig()
	}
	return &Session{
		config:   config,
		classes:  classes,
		reporter: reporter,
		types:    shadow.NewBuilder[symbols.TypeDeclSymbol, ScopeInfo](symbolName[symbols.TypeDeclSymbol]),
		vars:     shadow.NewBuilder[symbols.VariableSymbol, ScopeInfo](symbolName[symbols.VariableSymbol]),
		methods:  shadow.NewBuilder[*symbols.MethodSymbol, ScopeInfo](symbolName[*symbols.MethodSymbol]),
	}
}

// Config returns the session configuration.
func (s *Session) Config() *Config {
	return s.config
}

// NewFactory returns the scope builders for a compilation unit of the given
// package.
func (s *Session) NewFactory(thisPackage string) *Factory {
	return &Factory{
		Session:     s,
		thisPackage: thisPackage,
		logger:      s.config.Logger.With().Str("package", thisPackage).Logger(),
	}
}

func symbolName[S symbols.Symbol](sym S) string {
	return sym.SimpleName()
}

func typeDecls[T symbols.TypeDeclSymbol](in []T) []symbols.TypeDeclSymbol {
	out := make([]symbols.TypeDeclSymbol, len(in))
	for i, t := range in {
		out[i] = t
	}
	return out
}

func variables[T symbols.VariableSymbol](in []T) []symbols.VariableSymbol {
	out := make([]symbols.VariableSymbol, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
