package graph

import (
	"slices"

	"builder-generator/internal/common"
	"builder-generator/internal/schema"
)

// KindClass distinguishes abstract base kinds from concrete node kinds.
type KindClass int

const (
	ClassBaseKind KindClass = iota
	ClassNode
)

// String returns a human-readable class name.
func (c KindClass) String() string {
	switch c {
	case ClassBaseKind:
		return "base_kind"
	case ClassNode:
		return "node"
	default:
		return common.UnknownStr
	}
}

// Kind describes a single type in the graph.
type Kind struct {
	// Name uniquely identifies the kind.
	Name string
	// Base is the parent kind name, empty for roots.
	Base string
	// Class tells whether this is a base kind or a node kind.
	Class KindClass
	// Buildable marks kinds with a generated builder representation.
	Buildable bool
	// Collection marks syntax-collection nodes.
	Collection bool
	// Element is the element type name of a collection node.
	Element string
}

// IsBaseKind returns true for abstract base kinds.
func (k *Kind) IsBaseKind() bool {
	return k.Class == ClassBaseKind
}

// IsSyntaxCollection returns true for the reserved SyntaxCollection base kind.
func (k *Kind) IsSyntaxCollection() bool {
	return k.Class == ClassBaseKind && k.Name == schema.SyntaxCollectionName
}

// Edge is a declared convertible-to relationship.
type Edge struct {
	// Source is the node the conversion starts from.
	Source string
	// Target is the wrapper type being constructed.
	Target string
	// Param is the single constructor parameter name.
	Param string
}

// TypeGraph holds the full type universe of one generation run. It is
// constructed once by Build and never mutated afterwards.
type TypeGraph struct {
	baseKinds []string
	nodes     []string
	kinds     map[string]*Kind
	edges     map[string][]Edge
	elementOf map[string][]string
}

// BaseKinds returns base kind names in schema declaration order.
func (g *TypeGraph) BaseKinds() []string {
	return slices.Clone(g.baseKinds)
}

// Nodes returns node kind names in schema declaration order.
func (g *TypeGraph) Nodes() []string {
	return slices.Clone(g.nodes)
}

// Kind returns the kind with the given name, or nil if unknown.
func (g *TypeGraph) Kind(name string) *Kind {
	return g.kinds[name]
}

// Edges returns the declared convertible-to edges starting at the given
// kind, in schema declaration order.
func (g *TypeGraph) Edges(source string) []Edge {
	return slices.Clone(g.edges[source])
}

// CollectionsOf returns the collection nodes whose declared element type is
// exactly the given name, in schema declaration order. Eligibility through
// base chains is the resolver's business.
func (g *TypeGraph) CollectionsOf(element string) []string {
	return slices.Clone(g.elementOf[element])
}

// Collections returns all collection node names in declaration order.
func (g *TypeGraph) Collections() []string {
	var out []string

	for _, name := range g.nodes {
		if g.kinds[name].Collection {
			out = append(out, name)
		}
	}

	return out
}
