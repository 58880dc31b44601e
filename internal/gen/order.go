package gen

import (
	"sort"

	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
	"builder-generator/internal/synth"
)

// Decl is one ordered declaration: exactly one of the fields is set.
type Decl struct {
	Interface   *synth.InterfaceDecl
	Conformance *synth.ConformanceDecl
}

// Order imposes the emission total order: base-kind interfaces sorted by
// name ascending, then node declarations (a collection's element interface,
// then the node's conformance block) in schema declaration order.
//
// Embedded interface lists and method lists are sorted here too; nothing
// downstream may reorder.
func Order(set *synth.DeclarationSet, g *graph.TypeGraph) []Decl {
	interfaces := make(map[string]*synth.InterfaceDecl, len(set.Interfaces))

	var baseNames []string

	for i := range set.Interfaces {
		decl := &set.Interfaces[i]
		sort.Strings(decl.Embeds)
		interfaces[decl.Category.Origin] = decl

		if decl.Category.Kind == resolve.CategoryBase {
			baseNames = append(baseNames, decl.Category.Origin)
		}
	}

	conformances := make(map[string]*synth.ConformanceDecl, len(set.Conformances))

	for i := range set.Conformances {
		decl := &set.Conformances[i]
		sort.Slice(decl.Methods, func(a, b int) bool { return decl.Methods[a].Name < decl.Methods[b].Name })
		conformances[decl.TypeName] = decl
	}

	sort.Strings(baseNames)

	out := make([]Decl, 0, len(set.Interfaces)+len(set.Conformances))

	for _, name := range baseNames {
		out = append(out, Decl{Interface: interfaces[name]})
	}

	for _, name := range g.Nodes() {
		k := g.Kind(name)

		if k.Collection {
			if decl, ok := interfaces[name]; ok {
				out = append(out, Decl{Interface: decl})
			}
		}

		if decl, ok := conformances[name]; ok {
			out = append(out, Decl{Conformance: decl})
		}
	}

	return out
}
