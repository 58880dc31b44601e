package resolve

//go:generate go tool stringer -type=BridgeKind -output=bridgekind_string.go

// BridgeKind describes how a declared conformance is realized.
type BridgeKind int

const (
	// BridgeBase wraps the value as its base kind's buildable form.
	BridgeBase BridgeKind = iota
	// BridgeElement wraps the value as the sole element of a collection.
	BridgeElement
	// BridgeSelf returns the value unchanged (a collection is trivially
	// expressible as its own element category's result).
	BridgeSelf
	// BridgeConvert wraps the value through a chain of labeled constructor
	// parameters recorded on convertible-to edges.
	BridgeConvert
)

// WrapStep is one hop of a conversion chain: construct Target with the
// value under the Param label.
type WrapStep struct {
	Target string
	Param  string
}

// Bridge pairs a declared category with the construction realizing it.
type Bridge struct {
	Kind BridgeKind
	// Base is the base kind being wrapped to (BridgeBase).
	Base string
	// Collection is the wrapping collection node (BridgeElement).
	Collection string
	// Steps is the innermost-first wrapper chain (BridgeConvert).
	Steps []WrapStep
}
