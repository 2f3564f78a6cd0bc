package shadow

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingResolver memoizes a lazy resolver per name.  The first lookup of a
// name that is not in the cache calls the fallback, and the result (even an
// empty one) is kept for the lifetime of the resolver.
//
// Concurrent first lookups of the same name call the fallback once and all
// observe the same result.
type CachingResolver[S any] struct {
	mu       sync.RWMutex
	cache    map[string][]S
	fallback NameResolver[S]
	inflight singleflight.Group
}

// NewCachingResolver creates a caching resolver.  The seed map provides
// entries that are known up front; the resolver takes ownership of it.  A nil
// fallback never finds anything.
func NewCachingResolver[S any](seed map[string][]S, fallback NameResolver[S]) *CachingResolver[S] {
	if seed == nil {
		seed = make(map[string][]S)
	}
	if fallback == nil {
		fallback = Empty[S]()
	}
	return &CachingResolver[S]{
		cache:    seed,
		fallback: fallback,
	}
}

// Resolve implements part of the NameResolver interface.
func (r *CachingResolver[S]) Resolve(name string) []S {
	if syms, ok := r.cached(name); ok {
		return syms
	}
	v, _, _ := r.inflight.Do(name, func() (interface{}, error) {
		if syms, ok := r.cached(name); ok {
			return syms, nil
		}
		syms := r.fallback.Resolve(name)
		r.mu.Lock()
		r.cache[name] = syms
		r.mu.Unlock()
		return syms, nil
	})
	return v.([]S)
}

// IsDefinitelyEmpty implements part of the NameResolver interface.
func (r *CachingResolver[S]) IsDefinitelyEmpty() bool {
	return false
}

func (r *CachingResolver[S]) cached(name string) ([]S, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syms, ok := r.cache[name]
	return syms, ok
}
