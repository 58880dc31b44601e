package resolve

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/graph"
	"builder-generator/internal/schema"
)

// Config holds configuration for the resolution process.
type Config struct {
	// Parallel resolves node kinds concurrently. The graph is read-only and
	// no kind's result depends on another's, so this only changes wall time;
	// output order is restored by the emission orderer.
	Parallel bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{Parallel: false}
}

// Resolver computes conformance sets over an immutable type graph.
type Resolver struct {
	graph  *graph.TypeGraph
	config Config

	// byOrigin maps a base kind or collection node name to its category.
	byOrigin map[string]Category
	// inherits maps a category name to its direct supertype category names.
	inherits map[string][]string
	// catOrder lists category names deterministically: base categories in
	// base-kind declaration order, then element categories in node order.
	catOrder []string
}

// NewResolver creates a Resolver and indexes the graph's categories.
func NewResolver(g *graph.TypeGraph, config Config) *Resolver {
	r := &Resolver{
		graph:    g,
		config:   config,
		byOrigin: make(map[string]Category),
		inherits: make(map[string][]string),
	}
	r.indexCategories()

	return r
}

// indexCategories precomputes the category universe and the inheritance
// relation between categories. Cyclic chains are truncated here; they are
// re-walked and reported as errors during resolution.
func (r *Resolver) indexCategories() {
	for _, name := range r.graph.BaseKinds() {
		if name == "" || r.graph.Kind(name).IsSyntaxCollection() {
			continue
		}

		c := Category{Name: name, Kind: CategoryBase, Origin: name}
		r.byOrigin[name] = c
		r.catOrder = append(r.catOrder, c.Name)
	}

	collections := r.graph.Collections()
	for _, name := range collections {
		c := Category{Name: name + schema.ElementCategorySuffix, Kind: CategoryElement, Origin: name}
		r.byOrigin[name] = c
		r.catOrder = append(r.catOrder, c.Name)
	}

	// Base category inheritance: the nearest ancestor base kind owning a
	// category. SyntaxCollection owns none and is skipped over.
	for _, name := range r.graph.BaseKinds() {
		cat, ok := r.byOrigin[name]
		if !ok || cat.Kind != CategoryBase {
			continue
		}

		anc, _ := r.ancestorNames(name)
		for _, a := range anc {
			parent, ok := r.byOrigin[a]
			if ok && parent.Kind == CategoryBase {
				r.inherits[cat.Name] = []string{parent.Name}
				break
			}
		}
	}

	// Element category inheritance: C's element category inherits C2's when
	// every eligible element of C is eligible for C2, i.e. C2's element type
	// is a strict ancestor of C's element type.
	for _, name := range collections {
		cat := r.byOrigin[name]
		elem := r.graph.Kind(name).Element
		anc, _ := r.ancestorNames(elem)

		for _, other := range collections {
			if other == name {
				continue
			}

			if slices.Contains(anc, r.graph.Kind(other).Element) {
				r.inherits[cat.Name] = append(r.inherits[cat.Name], r.byOrigin[other].Name)
			}
		}
	}
}

// ancestorNames returns the strict ancestor chain of a kind, nearest first,
// walking both node and base-kind parents. A repeated name aborts with
// CyclicTypeGraphError.
func (r *Resolver) ancestorNames(name string) ([]string, error) {
	k := r.graph.Kind(name)
	if k == nil {
		return nil, nil
	}

	var anc []string

	path := []string{name}

	for cur := k.Base; cur != ""; {
		if slices.Contains(path, cur) {
			return nil, &CyclicTypeGraphError{Path: append(path, cur)}
		}

		path = append(path, cur)
		anc = append(anc, cur)

		next := r.graph.Kind(cur)
		if next == nil {
			break
		}

		cur = next.Base
	}

	return anc, nil
}

// inheritanceClosure returns every category transitively granted by
// declaring the given category.
func (r *Resolver) inheritanceClosure(catName string) CategorySet {
	out := NewCategorySet()

	var walk func(name string)
	walk = func(name string) {
		for _, sup := range r.inherits[name] {
			if out.Contains(sup) {
				continue
			}

			for _, c := range r.byOrigin {
				if c.Name == sup {
					out.Add(c)
					break
				}
			}

			walk(sup)
		}
	}
	walk(catName)

	return out
}

// allOfBaseKind returns the categories a base kind's chain passes through,
// excluding the base kind's own category.
func (r *Resolver) allOfBaseKind(name string) (CategorySet, error) {
	anc, err := r.ancestorNames(name)
	if err != nil {
		return nil, err
	}

	out := NewCategorySet()

	for _, a := range anc {
		if cat, ok := r.byOrigin[a]; ok && cat.Kind == CategoryBase {
			out.Add(cat)
		}
	}

	return out, nil
}

// KindConformance is the full resolution result for one kind.
type KindConformance struct {
	// Kind is the resolved kind's name.
	Kind string
	// Set holds the all/implied/declared categories.
	Set ConformanceSet
	// Bridges maps each declared category name to its realization.
	Bridges map[string]Bridge
}

// Resolve computes the conformance set for a single kind.
//
// For a base kind the result is its ancestor categories, all implied: a base
// category's supertypes are granted by interface inheritance, never by
// per-kind declarations.
func (r *Resolver) Resolve(name string) (*KindConformance, error) {
	k := r.graph.Kind(name)
	if k == nil {
		return nil, fmt.Errorf("unknown kind %q", name)
	}

	if k.IsBaseKind() {
		all, err := r.allOfBaseKind(name)
		if err != nil {
			return nil, err
		}

		return &KindConformance{
			Kind:    name,
			Set:     ConformanceSet{All: all, Implied: all.Clone(), Declared: NewCategorySet()},
			Bridges: map[string]Bridge{},
		}, nil
	}

	return r.resolveNode(k)
}

// resolveNode computes the closure of a concrete node kind and subtracts the
// implied categories.
func (r *Resolver) resolveNode(k *graph.Kind) (*KindConformance, error) {
	all := NewCategorySet()
	bridges := make(map[string]Bridge)

	chain, err := r.collectBaseChain(k, all, bridges)
	if err != nil {
		return nil, err
	}

	r.collectElementhood(k, chain, all, bridges)

	if err := r.collectEdges(k.Name, all, bridges); err != nil {
		return nil, err
	}

	implied, err := r.impliedSet(k, all)
	if err != nil {
		return nil, err
	}

	// Interface inheritance grants ride along in the closure: anything an
	// included category transitively inherits is reachable, and implied.
	all.Union(implied)

	declared := all.Subtract(implied)

	for name := range bridges {
		if !declared.Contains(name) {
			delete(bridges, name)
		}
	}

	return &KindConformance{
		Kind:    k.Name,
		Set:     ConformanceSet{All: all, Implied: implied, Declared: declared},
		Bridges: bridges,
	}, nil
}

// collectBaseChain adds the categories contributed by the transitive base
// chain and returns the ancestor names.
func (r *Resolver) collectBaseChain(k *graph.Kind, all CategorySet, bridges map[string]Bridge) ([]string, error) {
	chain, err := r.ancestorNames(k.Name)
	if err != nil {
		return nil, err
	}

	for _, a := range chain {
		ak := r.graph.Kind(a)
		if ak == nil {
			continue
		}

		if ak.IsBaseKind() {
			if cat, ok := r.byOrigin[a]; ok && cat.Kind == CategoryBase {
				all.Add(cat)
				setBridge(bridges, cat.Name, Bridge{Kind: BridgeBase, Base: a})
			}

			continue
		}

		// Concrete ancestors pass their edge reach and collection identity
		// down the chain; both arrive implied, so no bridges here.
		if ak.Collection {
			all.Add(r.byOrigin[a])
		}

		hits, err := r.edgeClosure(a)
		if err != nil {
			return nil, err
		}

		for _, h := range hits {
			all.Add(h.cat)
		}
	}

	return chain, nil
}

// collectElementhood adds the element category of every collection the kind
// can fill, plus the kind's own element category if it is a collection.
// Eligibility is exact-name elementhood of the kind or any ancestor, looked
// up through the graph's reverse element index.
func (r *Resolver) collectElementhood(k *graph.Kind, chain []string, all CategorySet, bridges map[string]Bridge) {
	names := append([]string{k.Name}, chain...)

	for _, name := range names {
		for _, c := range r.graph.CollectionsOf(name) {
			if c == k.Name {
				continue
			}

			cat := r.byOrigin[c]
			all.Add(cat)
			setBridge(bridges, cat.Name, Bridge{Kind: BridgeElement, Collection: c})
		}
	}

	if k.Collection {
		cat := r.byOrigin[k.Name]
		all.Add(cat)
		setBridge(bridges, cat.Name, Bridge{Kind: BridgeSelf})
	}
}

// collectEdges adds categories reachable through convertible-to chains.
func (r *Resolver) collectEdges(name string, all CategorySet, bridges map[string]Bridge) error {
	hits, err := r.edgeClosure(name)
	if err != nil {
		return err
	}

	for _, h := range hits {
		all.Add(h.cat)
		setBridge(bridges, h.cat.Name, Bridge{Kind: BridgeConvert, Steps: h.steps})
	}

	return nil
}

// impliedSet computes the categories the kind gets for free: everything the
// base type already resolves to, plus everything interface inheritance
// grants through the categories in all.
func (r *Resolver) impliedSet(k *graph.Kind, all CategorySet) (CategorySet, error) {
	implied := NewCategorySet()

	if k.Base != "" {
		bk := r.graph.Kind(k.Base)

		switch {
		case bk == nil:
			return nil, fmt.Errorf("kind %q references unknown base %q", k.Name, k.Base)

		case bk.IsBaseKind():
			s, err := r.allOfBaseKind(k.Base)
			if err != nil {
				return nil, err
			}

			implied.Union(s)

		default:
			parent, err := r.resolveNode(bk)
			if err != nil {
				return nil, err
			}

			implied.Union(parent.Set.All)
		}
	}

	for _, cat := range all.Sorted() {
		implied.Union(r.inheritanceClosure(cat.Name))
	}

	return implied, nil
}

// edgeHit is one category reached through a conversion chain.
type edgeHit struct {
	cat   Category
	steps []WrapStep
}

// edgeClosure walks convertible-to chains depth-first in declaration order.
// Two distinct paths to one category are ambiguous; revisiting a kind on
// the current path is a cycle.
func (r *Resolver) edgeClosure(name string) ([]edgeHit, error) {
	var hits []edgeHit

	index := make(map[string]int)

	var walk func(cur string, steps []WrapStep, visited []string) error
	walk = func(cur string, steps []WrapStep, visited []string) error {
		for _, e := range r.graph.Edges(cur) {
			if slices.Contains(visited, e.Target) {
				return &CyclicTypeGraphError{Path: append(slices.Clone(visited), e.Target)}
			}

			next := append(slices.Clone(steps), WrapStep{Target: e.Target, Param: e.Param})

			if cat, ok := r.byOrigin[e.Target]; ok {
				if i, dup := index[cat.Name]; dup {
					if !slices.Equal(hits[i].steps, next) {
						return &AmbiguousCategoryError{
							Source:   name,
							Category: cat.Name,
							Paths:    [][]WrapStep{hits[i].steps, next},
						}
					}
				} else {
					index[cat.Name] = len(hits)
					hits = append(hits, edgeHit{cat: cat, steps: next})
				}
			}

			if err := walk(e.Target, next, append(slices.Clone(visited), e.Target)); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(name, nil, []string{name}); err != nil {
		return nil, err
	}

	return hits, nil
}

// setBridge records a bridge for a category unless one is already present.
// Sources are processed in precedence order (base, element, self, convert),
// so the first writer wins.
func setBridge(bridges map[string]Bridge, cat string, b Bridge) {
	if _, ok := bridges[cat]; !ok {
		bridges[cat] = b
	}
}

// CategoryInfo describes one category for synthesis: the category itself and
// its direct supertypes after transitive reduction.
type CategoryInfo struct {
	Category Category
	Inherits []Category
}

// Resolution is the output of ResolveAll.
type Resolution struct {
	// Categories lists every category: base categories in base-kind
	// declaration order, then element categories in node declaration order.
	Categories []CategoryInfo
	// Kinds holds per-node conformances in schema declaration order.
	Kinds []KindConformance
	// Diagnostics accumulated during resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolveAll resolves every node kind and assembles the category universe.
// Any cycle or ambiguity aborts the whole run; there is no partial output.
func (r *Resolver) ResolveAll() (*Resolution, error) {
	// Surface cycles in chains no node resolution would walk (e.g. cyclic
	// base kinds without descendants).
	for _, name := range append(r.graph.BaseKinds(), r.graph.Nodes()...) {
		if _, err := r.ancestorNames(name); err != nil {
			return nil, err
		}
	}

	res := &Resolution{}

	for _, name := range r.catOrder {
		res.Categories = append(res.Categories, CategoryInfo{
			Category: r.categoryByName(name),
			Inherits: r.reducedInherits(name),
		})
	}

	nodes := r.graph.Nodes()
	res.Kinds = make([]KindConformance, len(nodes))

	if r.config.Parallel {
		var eg errgroup.Group

		for i, name := range nodes {
			i, name := i, name
			eg.Go(func() error {
				kc, err := r.Resolve(name)
				if err != nil {
					return err
				}

				res.Kinds[i] = *kc

				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, name := range nodes {
			kc, err := r.Resolve(name)
			if err != nil {
				return nil, err
			}

			res.Kinds[i] = *kc
		}
	}

	for i := range res.Kinds {
		kc := &res.Kinds[i]

		k := r.graph.Kind(kc.Kind)
		if !k.Buildable && len(kc.Set.Declared) > 0 {
			res.Diagnostics.AddInfo("unbuildable_node_skipped",
				"node has declared conformances but no builder representation; no methods will be emitted",
				kc.Kind, "")
		}
	}

	return res, nil
}

// categoryByName looks a category up by its name.
func (r *Resolver) categoryByName(name string) Category {
	for _, c := range r.byOrigin {
		if c.Name == name {
			return c
		}
	}

	return Category{}
}

// reducedInherits returns the direct supertypes of a category minus any
// already granted through another direct supertype.
func (r *Resolver) reducedInherits(catName string) []Category {
	direct := r.inherits[catName]

	var out []Category

	for _, sup := range direct {
		redundant := false

		for _, other := range direct {
			if other != sup && r.inheritanceClosure(other).Contains(sup) {
				redundant = true
				break
			}
		}

		if !redundant {
			out = append(out, r.categoryByName(sup))
		}
	}

	return out
}
