package symtab

import "github.com/rs/zerolog"

// LocalTypePolicy says how a local class declaration combines with the types
// already visible in its block.
type LocalTypePolicy int

const (
	// LocalTypesConflict merges a local class into the types visible in the
	// block, so that a same-named local class is reported with it.
	LocalTypesConflict LocalTypePolicy = iota
	// LocalTypesShadow makes a local class hide same-named types.
	LocalTypesShadow
)

// String implements fmt.Stringer.
func (p LocalTypePolicy) String() string {
	if p == LocalTypesShadow {
		return "shadow"
	}
	return "conflict"
}

// Config is the configuration shared by every table of an analysis
// session.
type Config struct {
	// PlatformPackage is the package whose types are implicitly imported.
	PlatformPackage string
	// LocalTypes is the policy for local class declarations.
	LocalTypes LocalTypePolicy
	// Logger receives debug traces of scope construction.
	Logger zerolog.Logger
}

// DefaultConfig returns the configuration for plain java sources.
func DefaultConfig() *Config {
	return &Config{
		PlatformPackage: "java.lang",
		LocalTypes:      LocalTypesConflict,
		Logger:          zerolog.Nop(),
	}
}
