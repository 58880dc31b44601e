package graph

import "builder-generator/internal/schema"

// Build constructs a TypeGraph from a validated schema. It assumes the
// schema already passed schema.Validate; dangling references are not
// re-checked here.
func Build(s *schema.Schema) *TypeGraph {
	g := &TypeGraph{
		kinds:     make(map[string]*Kind, len(s.BaseKinds)+len(s.Nodes)),
		edges:     make(map[string][]Edge, len(s.Conversions)),
		elementOf: make(map[string][]string),
	}

	for i := range s.BaseKinds {
		bk := &s.BaseKinds[i]
		g.baseKinds = append(g.baseKinds, bk.Name)
		g.kinds[bk.Name] = &Kind{
			Name:  bk.Name,
			Base:  bk.Base,
			Class: ClassBaseKind,
		}
	}

	for i := range s.Nodes {
		n := &s.Nodes[i]
		g.nodes = append(g.nodes, n.Name)
		g.kinds[n.Name] = &Kind{
			Name:       n.Name,
			Base:       n.Base,
			Class:      ClassNode,
			Buildable:  n.Buildable,
			Collection: n.Collection,
			Element:    n.Element,
		}

		if n.Collection && n.Element != "" {
			g.elementOf[n.Element] = append(g.elementOf[n.Element], n.Name)
		}
	}

	for i := range s.Conversions {
		c := &s.Conversions[i]
		g.edges[c.Source] = append(g.edges[c.Source], Edge{
			Source: c.Source,
			Target: c.Target,
			Param:  c.Param,
		})
	}

	return g
}
