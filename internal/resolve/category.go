package resolve

import (
	"sort"

	"builder-generator/internal/common"
)

// CategoryKind distinguishes how a category came to exist.
type CategoryKind int

const (
	// CategoryBase is derived from a base kind (e.g. "Expr").
	CategoryBase CategoryKind = iota
	// CategoryElement is derived from a collection node's element position
	// (e.g. "ExprListElement").
	CategoryElement
)

// String returns a human-readable category kind name.
func (k CategoryKind) String() string {
	switch k {
	case CategoryBase:
		return "base"
	case CategoryElement:
		return "element"
	default:
		return common.UnknownStr
	}
}

// Category is a single convertibility category. Name is its identity and
// the dedup key everywhere; Origin is the base kind or collection node the
// category is generated for.
type Category struct {
	Name   string
	Kind   CategoryKind
	Origin string
}

// CategorySet is a set of categories keyed by category name.
type CategorySet map[string]Category

// NewCategorySet creates a set holding the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s.Add(c)
	}

	return s
}

// Add inserts a category; inserting an already-present name is a no-op.
func (s CategorySet) Add(c Category) {
	if _, ok := s[c.Name]; !ok {
		s[c.Name] = c
	}
}

// Contains reports whether the set holds a category with the given name.
func (s CategorySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Union inserts every category of other into s.
func (s CategorySet) Union(other CategorySet) {
	for _, c := range other {
		s.Add(c)
	}
}

// Subtract returns a new set holding the categories of s absent from other.
func (s CategorySet) Subtract(other CategorySet) CategorySet {
	out := make(CategorySet)

	for name, c := range s {
		if !other.Contains(name) {
			out.Add(c)
		}
	}

	return out
}

// Clone returns a shallow copy of the set.
func (s CategorySet) Clone() CategorySet {
	out := make(CategorySet, len(s))
	for name, c := range s {
		out[name] = c
	}

	return out
}

// Sorted returns the categories ordered by name ascending.
func (s CategorySet) Sorted() []Category {
	out := make([]Category, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Names returns the category names ordered ascending.
func (s CategorySet) Names() []string {
	sorted := s.Sorted()

	out := make([]string, len(sorted))
	for i, c := range sorted {
		out[i] = c.Name
	}

	return out
}

// ConformanceSet is the resolution result for one kind.
// Declared is always All minus Implied.
type ConformanceSet struct {
	// All holds every category the kind can be expressed as.
	All CategorySet
	// Implied holds the categories already guaranteed transitively and
	// therefore never redeclared.
	Implied CategorySet
	// Declared holds the categories the kind must declare itself.
	Declared CategorySet
}
