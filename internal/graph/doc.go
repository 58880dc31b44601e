// Package graph provides the immutable in-memory type graph built from a
// validated schema.
//
// Key types:
//   - Kind: a base kind or node kind with its base, buildability, and
//     collection element
//   - Edge: a declared convertible-to relationship
//   - TypeGraph: lookup by name, declaration-ordered listings, and the
//     reverse "element of which collections" index
//
// The graph applies no policy: closure, implication, and the special
// treatment of SyntaxCollection live in the resolver.
package graph
