package shadow

import (
	"fmt"
	"strings"
)

// Mode says how a layer combines with the layers below it.
type Mode int

const (
	// Shadow makes the layer an opaque barrier: if it finds a name, outer
	// layers are not consulted.
	Shadow Mode = iota
	// Merge fuses the layer with the layer below it: its matches come first
	// and the search continues outward.
	Merge
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Merge {
		return "merge"
	}
	return "shadow"
}

// Chain is one layer of a shadow chain, together with every layer below it.
// The zero value is not usable; start from Root.
type Chain[S, I any] struct {
	parent   *Chain[S, I]
	mode     Mode
	tag      I
	resolver NameResolver[S]
}

// Match is the contribution of one layer to a lookup.
type Match[S, I any] struct {
	Tag     I
	Symbols []S
}

// Root returns the outermost, empty chain.
func Root[S, I any]() *Chain[S, I] {
	return &Chain[S, I]{resolver: Empty[S]()}
}

// link is the single construction routine for layers.
func link[S, I any](parent *Chain[S, I], mode Mode, tag I, resolver NameResolver[S]) *Chain[S, I] {
	if parent == nil {
		panic("shadow: nil parent chain")
	}
	return &Chain[S, I]{
		parent:   parent,
		mode:     mode,
		tag:      tag,
		resolver: resolver,
	}
}

// prunable reports whether linking a layer can be skipped without changing
// any lookup, now or once more layers are linked on top.  A layer that never
// finds anything neither stops a search nor contributes to it, whatever its
// mode.
func prunable[S any](resolver NameResolver[S]) bool {
	return resolver.IsDefinitelyEmpty()
}

// Parent returns the next outer layer, nil for the root.
func (c *Chain[S, I]) Parent() *Chain[S, I] { return c.parent }

// IsRoot reports whether this is the outermost, empty layer.
func (c *Chain[S, I]) IsRoot() bool { return c.parent == nil }

// Mode returns the mode of the head layer.
func (c *Chain[S, I]) Mode() Mode { return c.mode }

// Tag returns the scope tag of the head layer.
func (c *Chain[S, I]) Tag() I { return c.tag }

// ResolveHere looks the name up in the head layer only.
func (c *Chain[S, I]) ResolveHere(name string) []S {
	return c.resolver.Resolve(name)
}

// Resolve returns the candidates for the name, innermost first.  The search
// stops at the first Shadow layer that finds it; Merge layers add their
// matches and let the search continue.  The returned slice must not be
// modified.
func (c *Chain[S, I]) Resolve(name string) []S {
	var result []S
	for n := c; n != nil; n = n.parent {
		found := n.resolver.Resolve(name)
		if len(found) == 0 {
			continue
		}
		if n.mode == Shadow {
			if result == nil {
				return found
			}
			return append(result, found...)
		}
		result = append(result, found...)
	}
	return result
}

// ResolveFirst returns the innermost candidate for the name.
func (c *Chain[S, I]) ResolveFirst(name string) (S, bool) {
	for n := c; n != nil; n = n.parent {
		if found := n.resolver.Resolve(name); len(found) > 0 {
			return found[0], true
		}
	}
	var zero S
	return zero, false
}

// Explain returns the same candidates as Resolve, grouped by the layer that
// contributed them.
func (c *Chain[S, I]) Explain(name string) []Match[S, I] {
	var matches []Match[S, I]
	for n := c; n != nil; n = n.parent {
		found := n.resolver.Resolve(name)
		if len(found) == 0 {
			continue
		}
		matches = append(matches, Match[S, I]{Tag: n.tag, Symbols: found})
		if n.mode == Shadow {
			break
		}
	}
	return matches
}

// Depth returns the number of layers above the root.
func (c *Chain[S, I]) Depth() int {
	depth := 0
	for n := c; n.parent != nil; n = n.parent {
		depth++
	}
	return depth
}

// String renders the layers innermost first, e.g. "[LOCAL+ FORMAL_PARAM]".
// Merge layers carry a trailing '+'.
func (c *Chain[S, I]) String() string {
	var parts []string
	for n := c; n.parent != nil; n = n.parent {
		s := fmt.Sprint(n.tag)
		if n.mode == Merge {
			s += "+"
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
