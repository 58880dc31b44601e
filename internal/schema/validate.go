package schema

import (
	"fmt"

	"builder-generator/internal/diagnostic"
)

// Validate performs structural validation of a schema. It reports the
// malformed-schema surface only: dangling references, duplicate names, and
// shape errors. Cycle and ambiguity detection happen during resolution,
// which needs the closure machinery anyway.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	baseKinds := make(map[string]*BaseKind, len(s.BaseKinds))
	nodes := make(map[string]*Node, len(s.Nodes))

	validateNames(s, res, baseKinds, nodes)
	validateBaseRefs(s, res, baseKinds, nodes)
	validateCollections(s, res, baseKinds, nodes)
	validateCategoryNames(s, res, baseKinds, nodes)
	validateConversions(s, res, baseKinds, nodes)

	return res
}

// validateNames checks name uniqueness across base kinds and nodes.
func validateNames(s *Schema, res *diagnostic.Diagnostics, baseKinds map[string]*BaseKind, nodes map[string]*Node) {
	for i := range s.BaseKinds {
		bk := &s.BaseKinds[i]
		if bk.Name == "" {
			res.AddError("empty_kind_name", "base kind with empty name", "", "")
			continue
		}

		if _, ok := baseKinds[bk.Name]; ok {
			res.AddError("duplicate_kind", fmt.Sprintf("duplicate base kind %q", bk.Name), bk.Name, "")
			continue
		}

		baseKinds[bk.Name] = bk
	}

	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Name == "" {
			res.AddError("empty_kind_name", "node with empty name", "", "")
			continue
		}

		if _, ok := baseKinds[n.Name]; ok {
			res.AddError("duplicate_kind", fmt.Sprintf("node %q collides with a base kind", n.Name), n.Name, "")
			continue
		}

		if _, ok := nodes[n.Name]; ok {
			res.AddError("duplicate_kind", fmt.Sprintf("duplicate node %q", n.Name), n.Name, "")
			continue
		}

		nodes[n.Name] = n
	}
}

// validateBaseRefs checks that base references resolve, and that base kinds
// only derive from base kinds.
func validateBaseRefs(s *Schema, res *diagnostic.Diagnostics, baseKinds map[string]*BaseKind, nodes map[string]*Node) {
	for i := range s.BaseKinds {
		bk := &s.BaseKinds[i]
		if bk.Base == "" {
			continue
		}

		if _, ok := baseKinds[bk.Base]; !ok {
			if _, isNode := nodes[bk.Base]; isNode {
				res.AddError("base_not_base_kind",
					fmt.Sprintf("base kind %q derives from node %q; base kinds may only derive from base kinds", bk.Name, bk.Base),
					bk.Name, "")
			} else {
				res.AddError("base_not_found", fmt.Sprintf("base kind %q references unknown base %q", bk.Name, bk.Base), bk.Name, "")
			}
		}
	}

	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Base == "" {
			continue
		}

		_, isBase := baseKinds[n.Base]
		_, isNode := nodes[n.Base]

		if !isBase && !isNode {
			res.AddError("base_not_found", fmt.Sprintf("node %q references unknown base %q", n.Name, n.Base), n.Name, "")
		}
	}
}

// validateCollections checks the collection/element pairing.
func validateCollections(s *Schema, res *diagnostic.Diagnostics, baseKinds map[string]*BaseKind, nodes map[string]*Node) {
	for i := range s.Nodes {
		n := &s.Nodes[i]

		switch {
		case n.Collection && n.Element == "":
			res.AddError("collection_without_element", fmt.Sprintf("collection %q has no element type", n.Name), n.Name, "")

		case !n.Collection && n.Element != "":
			res.AddError("element_on_non_collection", fmt.Sprintf("node %q declares an element type but is not a collection", n.Name), n.Name, "")
		}

		if n.Element == "" {
			continue
		}

		_, isBase := baseKinds[n.Element]
		_, isNode := nodes[n.Element]

		if !isBase && !isNode {
			res.AddError("element_not_found", fmt.Sprintf("collection %q references unknown element type %q", n.Name, n.Element), n.Name, "")
		}

		if n.Element == SyntaxCollectionName {
			res.AddError("element_is_syntax_collection",
				fmt.Sprintf("collection %q uses %s as its element type", n.Name, SyntaxCollectionName), n.Name, "")
		}
	}
}

// validateCategoryNames rejects kind names that collide with the element
// category derived for a collection. Category names are the dedup identity
// downstream; two categories sharing one name would emit two interfaces with
// the same type name.
func validateCategoryNames(s *Schema, res *diagnostic.Diagnostics, baseKinds map[string]*BaseKind, nodes map[string]*Node) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if !n.Collection {
			continue
		}

		derived := n.Name + ElementCategorySuffix

		_, isBase := baseKinds[derived]
		_, isNode := nodes[derived]

		if isBase || isNode {
			res.AddError("category_name_collision",
				fmt.Sprintf("kind %q collides with the element category of collection %q", derived, n.Name),
				derived, derived)
		}
	}
}

// validateConversions checks convertible-to edges: sources must be concrete
// nodes, targets must own a convertibility category, params must be named.
func validateConversions(s *Schema, res *diagnostic.Diagnostics, baseKinds map[string]*BaseKind, nodes map[string]*Node) {
	seen := make(map[Conversion]struct{}, len(s.Conversions))

	sources := make(map[string]struct{}, len(s.Conversions))
	for i := range s.Conversions {
		sources[s.Conversions[i].Source] = struct{}{}
	}

	for i := range s.Conversions {
		c := &s.Conversions[i]
		edge := fmt.Sprintf("%s->%s", c.Source, c.Target)

		if _, ok := seen[*c]; ok {
			res.AddWarning("duplicate_conversion", "conversion declared twice", c.Source, edge)
			continue
		}

		seen[*c] = struct{}{}

		if _, ok := nodes[c.Source]; !ok {
			if _, isBase := baseKinds[c.Source]; isBase {
				res.AddError("conversion_source_is_base_kind",
					fmt.Sprintf("conversion source %q is a base kind; sources must be concrete nodes", c.Source), c.Source, edge)
			} else {
				res.AddError("conversion_source_not_found", fmt.Sprintf("conversion source %q not found", c.Source), c.Source, edge)
			}
		}

		if c.Param == "" {
			res.AddError("conversion_param_empty", "conversion has no parameter name", c.Source, edge)
		}

		validateConversionTarget(res, c, edge, baseKinds, nodes, sources)
	}
}

func validateConversionTarget(
	res *diagnostic.Diagnostics,
	c *Conversion,
	edge string,
	baseKinds map[string]*BaseKind,
	nodes map[string]*Node,
	sources map[string]struct{},
) {
	if c.Target == SyntaxCollectionName {
		res.AddError("conversion_target_unexpressible",
			fmt.Sprintf("%s produces no convertibility category", SyntaxCollectionName), c.Source, edge)
		return
	}

	if _, ok := baseKinds[c.Target]; ok {
		return
	}

	n, ok := nodes[c.Target]
	if !ok {
		res.AddError("conversion_target_not_found", fmt.Sprintf("conversion target %q not found", c.Target), c.Source, edge)
		return
	}

	// A concrete node target is only usable if the chain can continue:
	// either it is a collection (owns an element category) or it has its
	// own outgoing conversions for the closure to follow.
	if _, chains := sources[c.Target]; !n.Collection && !chains {
		res.AddError("conversion_target_unexpressible",
			fmt.Sprintf("conversion target %q owns no category and has no outgoing conversions", c.Target), c.Source, edge)
	}
}
