package synth

import "builder-generator/internal/resolve"

// MethodSig is the single required method of a category interface.
type MethodSig struct {
	Name   string
	Result string
}

// InterfaceDecl is one generated convertibility interface.
type InterfaceDecl struct {
	// Category the interface is generated for.
	Category resolve.Category
	// Name of the interface.
	Name string
	// Embeds lists the embedded supertype interfaces (non-implied only).
	Embeds []string
	// Method is the required factory.
	Method MethodSig
}

// FactoryMethod is one bridging method in a conformance block.
type FactoryMethod struct {
	// Name of the method.
	Name string
	// Result type produced.
	Result string
	// Bridge describes the body.
	Bridge resolve.Bridge
	// Satisfies names the interface this method satisfies; empty for the
	// base-delegation convenience factory.
	Satisfies string
}

// ConformanceDecl is the block of factory methods declared on one node.
type ConformanceDecl struct {
	// TypeName is the node's builder type.
	TypeName string
	// Methods in synthesis order; the emission orderer sorts them.
	Methods []FactoryMethod
}

// DeclarationSet is the synthesizer's output, still unordered with respect
// to emission.
type DeclarationSet struct {
	Interfaces   []InterfaceDecl
	Conformances []ConformanceDecl
}
