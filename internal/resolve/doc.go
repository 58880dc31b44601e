// Package resolve computes convertibility conformances over the type graph.
//
// Resolution pipeline per node kind:
//  1. Closure: walk the base chain, collection element-hood, and
//     convertible-to edge chains to collect every category the kind can be
//     expressed as ("all").
//  2. Subtraction: categories already guaranteed by the base type or by
//     interface inheritance are "implied" and must never be redeclared.
//  3. Bridging: each remaining "declared" category is paired with the bridge
//     (element wrap, identity, parameter wrap, base delegation) that
//     realizes it.
//
// The graph is read-only during resolution, so kinds resolve independently;
// Config.Parallel fans resolution out over an errgroup. Cyclic base or
// conversion chains abort the run with CyclicTypeGraphError; two conversion
// paths landing on one category abort with AmbiguousCategoryError.
package resolve
