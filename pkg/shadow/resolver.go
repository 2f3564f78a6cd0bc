package shadow

// NameResolver resolves simple names to the symbols one layer declares.
type NameResolver[S any] interface {
	// Resolve returns the symbols named name, in declaration order.  The
	// returned slice must not be modified.
	Resolve(name string) []S
	// IsDefinitelyEmpty reports whether Resolve returns nothing for every
	// name.  Lazy resolvers answer false.
	IsDefinitelyEmpty() bool
}

type emptyResolver[S any] struct{}

func (emptyResolver[S]) Resolve(string) []S      { return nil }
func (emptyResolver[S]) IsDefinitelyEmpty() bool { return true }

// Empty returns a resolver that never finds anything.
func Empty[S any]() NameResolver[S] {
	return emptyResolver[S]{}
}

// MapResolver is an eager resolver backed by a precomputed mapping.
type MapResolver[S any] map[string][]S

// Resolve implements part of the NameResolver interface.
func (m MapResolver[S]) Resolve(name string) []S {
	return m[name]
}

// IsDefinitelyEmpty implements part of the NameResolver interface.
func (m MapResolver[S]) IsDefinitelyEmpty() bool {
	return len(m) == 0
}

type singletonResolver[S any] struct {
	name string
	syms []S
}

func (r *singletonResolver[S]) Resolve(name string) []S {
	if name == r.name {
		return r.syms
	}
	return nil
}

func (r *singletonResolver[S]) IsDefinitelyEmpty() bool { return false }

// Singleton returns a resolver that knows exactly one symbol.
func Singleton[S any](name string, sym S) NameResolver[S] {
	return &singletonResolver[S]{name: name, syms: []S{sym}}
}

// ResolverFunc adapts a function to the NameResolver interface.  It is
// never considered empty.
type ResolverFunc[S any] func(name string) []S

// Resolve implements part of the NameResolver interface.
func (f ResolverFunc[S]) Resolve(name string) []S {
	return f(name)
}

// IsDefinitelyEmpty implements part of the NameResolver interface.
func (f ResolverFunc[S]) IsDefinitelyEmpty() bool {
	return false
}
