package schema

// SyntaxCollectionName is the reserved base kind under which collection
// nodes sit. It never produces a convertibility category of its own;
// collections derive their expressibility from their element type.
const SyntaxCollectionName = "SyntaxCollection"

// ElementCategorySuffix is appended to a collection node's name to form its
// element category name. Kind names that would collide with a derived
// category name are rejected during validation.
const ElementCategorySuffix = "Element"

// Schema is the root document describing the syntax-node type universe.
type Schema struct {
	// Version of the schema format.
	Version string `yaml:"version"`
	// BaseKinds lists the abstract syntax categories in declaration order.
	BaseKinds []BaseKind `yaml:"base_kinds"`
	// Nodes lists the concrete and collection node kinds in declaration order.
	Nodes []Node `yaml:"nodes"`
	// Conversions lists the declared convertible-to edges.
	Conversions []Conversion `yaml:"conversions"`
}

// BaseKind declares an abstract syntax category.
type BaseKind struct {
	// Name of the category (unique across base kinds and nodes).
	Name string `yaml:"name"`
	// Base is the parent base kind, empty for roots.
	Base string `yaml:"base,omitempty"`
}

// Node declares a concrete or collection node kind.
type Node struct {
	// Name of the node kind (unique across base kinds and nodes).
	Name string `yaml:"name"`
	// Base is the node's base kind or base node, empty for roots.
	Base string `yaml:"base,omitempty"`
	// Buildable marks nodes that get a generated builder representation.
	Buildable bool `yaml:"buildable,omitempty"`
	// Collection marks syntax-collection nodes.
	Collection bool `yaml:"collection,omitempty"`
	// Element names the element type of a collection node.
	Element string `yaml:"element,omitempty"`
}

// Conversion declares that the target wrapper type can be constructed from
// the source type via a single non-defaulted parameter.
type Conversion struct {
	// Source is the concrete node the conversion starts from.
	Source string `yaml:"source"`
	// Target is the wrapper type being constructed.
	Target string `yaml:"target"`
	// Param is the name of the single constructor parameter.
	Param string `yaml:"param"`
}
