// Package shadow implements persistent chains of name resolvers.
//
// A Chain is a singly linked list of layers, innermost first. Each layer
// pairs a NameResolver with a scope tag and a Mode. Looking a name up walks
// the chain from the head: a Shadow layer that finds the name ends the
// search and hides every outer layer, while the matches of a Merge layer
// are reported together with whatever the layers below it find.
//
// Chains are never mutated once linked. Building a nested scope links new
// layers in front of the parent chain and shares the whole tail. The only
// mutable state is the per-name memo of a CachingResolver, which is safe
// for concurrent use.
package shadow
