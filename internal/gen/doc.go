// Package gen provides deterministic emission of the synthesized
// declarations as Go source.
//
// Ordering is the single point where the resolver's set-valued results are
// linearized: base-kind interfaces sorted by name, then per-node
// declarations in schema order, method lists sorted within each block.
// Rendering uses text/template; the result is run through
// golang.org/x/tools/imports so regenerated output is byte-for-byte stable.
package gen
