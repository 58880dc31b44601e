package synth

import (
	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
)

// Synthesizer assembles declarations from a resolution.
type Synthesizer struct {
	graph *graph.TypeGraph
}

// NewSynthesizer creates a Synthesizer over the given graph.
func NewSynthesizer(g *graph.TypeGraph) *Synthesizer {
	return &Synthesizer{graph: g}
}

// Synthesize produces the declaration set for a resolution: one interface
// per category, one conformance block per buildable node with bridging
// methods for its declared categories.
func (s *Synthesizer) Synthesize(res *resolve.Resolution) *DeclarationSet {
	set := &DeclarationSet{}

	for _, ci := range res.Categories {
		set.Interfaces = append(set.Interfaces, s.synthesizeInterface(ci))
	}

	for i := range res.Kinds {
		if decl, ok := s.synthesizeConformance(&res.Kinds[i]); ok {
			set.Conformances = append(set.Conformances, decl)
		}
	}

	return set
}

func (s *Synthesizer) synthesizeInterface(ci resolve.CategoryInfo) InterfaceDecl {
	embeds := make([]string, 0, len(ci.Inherits))
	for _, sup := range ci.Inherits {
		embeds = append(embeds, InterfaceName(sup))
	}

	return InterfaceDecl{
		Category: ci.Category,
		Name:     InterfaceName(ci.Category),
		Embeds:   embeds,
		Method: MethodSig{
			Name:   FactoryName(ci.Category),
			Result: FactoryResult(ci.Category),
		},
	}
}

// synthesizeConformance builds the method block for one node. Dedup on
// category name happened in the resolver, so the block is conflict-free by
// construction.
func (s *Synthesizer) synthesizeConformance(kc *resolve.KindConformance) (ConformanceDecl, bool) {
	k := s.graph.Kind(kc.Kind)
	if k == nil || !k.Buildable {
		return ConformanceDecl{}, false
	}

	decl := ConformanceDecl{TypeName: kc.Kind}

	for _, cat := range kc.Set.Declared.Sorted() {
		bridge, ok := kc.Bridges[cat.Name]
		if !ok {
			continue
		}

		decl.Methods = append(decl.Methods, FactoryMethod{
			Name:      FactoryName(cat),
			Result:    FactoryResult(cat),
			Bridge:    bridge,
			Satisfies: InterfaceName(cat),
		})
	}

	if m, ok := s.delegationMethod(k); ok {
		decl.Methods = append(decl.Methods, m)
	}

	if len(decl.Methods) == 0 {
		return ConformanceDecl{}, false
	}

	return decl, true
}

// delegationMethod emits the factory delegating to a concrete base node's
// builder. Base kinds are covered by declared categories, and collection
// bases (anything under SyntaxCollection) get no delegation at all.
func (s *Synthesizer) delegationMethod(k *graph.Kind) (FactoryMethod, bool) {
	if k.Base == "" {
		return FactoryMethod{}, false
	}

	base := s.graph.Kind(k.Base)
	if base == nil || base.IsBaseKind() || base.Collection || !base.Buildable {
		return FactoryMethod{}, false
	}

	return FactoryMethod{
		Name:   DelegationName(k.Base),
		Result: k.Base,
		Bridge: resolve.Bridge{Kind: resolve.BridgeBase, Base: k.Base},
	}, true
}
