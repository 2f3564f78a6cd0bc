package shadow

// Builder links layers into chains of one symbol type.  A Builder holds no
// state besides its configuration and can be shared by every table built in
// an analysis session.
type Builder[S, I any] struct {
	nameOf func(S) string
}

// NewBuilder creates a builder that groups symbols by the given name
// function.
func NewBuilder[S, I any](nameOf func(S) string) *Builder[S, I] {
	return &Builder[S, I]{nameOf: nameOf}
}

// Shadow links a barrier layer.  It returns parent itself when the layer
// could never change a lookup.
func (b *Builder[S, I]) Shadow(parent *Chain[S, I], tag I, resolver NameResolver[S]) *Chain[S, I] {
	return b.Augment(parent, Shadow, tag, resolver)
}

// Augment links a layer with the given mode.  It returns parent itself when
// the layer could never change a lookup.
func (b *Builder[S, I]) Augment(parent *Chain[S, I], mode Mode, tag I, resolver NameResolver[S]) *Chain[S, I] {
	if prunable(resolver) {
		return parent
	}
	return link(parent, mode, tag, resolver)
}

// AugmentSymbols links a layer holding the given symbols.
func (b *Builder[S, I]) AugmentSymbols(parent *Chain[S, I], mode Mode, tag I, syms ...S) *Chain[S, I] {
	return b.Augment(parent, mode, tag, b.GroupByName(syms...))
}

// ShadowBuilt links a barrier layer holding what the resolver builder
// collected.
func (b *Builder[S, I]) ShadowBuilt(parent *Chain[S, I], tag I, rb *ResolverBuilder[S]) *Chain[S, I] {
	return b.Shadow(parent, tag, rb.Build())
}

// AugmentWithCache links a lazy layer.  Lookups are answered from the seed
// map first; a miss calls the fallback once per name and caches the result.
// The layer takes ownership of the seed map.  Lazy layers are never pruned.
func (b *Builder[S, I]) AugmentWithCache(parent *Chain[S, I], mode Mode, tag I, seed map[string][]S, fallback NameResolver[S]) *Chain[S, I] {
	return link(parent, mode, tag, NameResolver[S](NewCachingResolver(seed, fallback)))
}

// GroupByName indexes the symbols by name, keeping declaration order among
// symbols with the same name.
func (b *Builder[S, I]) GroupByName(syms ...S) NameResolver[S] {
	switch len(syms) {
	case 0:
		return Empty[S]()
	case 1:
		return Singleton(b.nameOf(syms[0]), syms[0])
	}
	rb := b.NewResolverBuilder()
	for _, sym := range syms {
		rb.Append(sym)
	}
	return rb.Build()
}

// NewResolverBuilder returns an empty, mutable group of symbols.
func (b *Builder[S, I]) NewResolverBuilder() *ResolverBuilder[S] {
	return &ResolverBuilder[S]{
		nameOf:  b.nameOf,
		symbols: make(map[string][]S),
	}
}

// ResolverBuilder accumulates symbols while a scope is being built.
type ResolverBuilder[S any] struct {
	nameOf  func(S) string
	symbols map[string][]S
}

// Append adds a symbol after any other symbol of the same name.
func (rb *ResolverBuilder[S]) Append(sym S) *ResolverBuilder[S] {
	name := rb.nameOf(sym)
	rb.symbols[name] = append(rb.symbols[name], sym)
	return rb
}

// IsEmpty reports whether nothing was appended.
func (rb *ResolverBuilder[S]) IsEmpty() bool {
	return len(rb.symbols) == 0
}

// MutableMap exposes the underlying map, typically to seed a caching layer.
// The builder must not be used afterwards.
func (rb *ResolverBuilder[S]) MutableMap() map[string][]S {
	return rb.symbols
}

// Build returns an eager resolver over the appended symbols.
func (rb *ResolverBuilder[S]) Build() NameResolver[S] {
	if rb.IsEmpty() {
		return Empty[S]()
	}
	return MapResolver[S](rb.symbols)
}
