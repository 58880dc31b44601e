package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

func genSchema() *schema.Schema {
	return &schema.Schema{
		Version: "1",
		BaseKinds: []schema.BaseKind{
			{Name: "Syntax"},
			{Name: "Decl", Base: "Syntax"},
			{Name: "Expr", Base: "Syntax"},
			{Name: "SyntaxCollection", Base: "Syntax"},
		},
		Nodes: []schema.Node{
			{Name: "IntegerLiteralExpr", Base: "Expr", Buildable: true},
			{Name: "FunctionDecl", Base: "Decl", Buildable: true},
			{Name: "ExprList", Base: "SyntaxCollection", Buildable: true, Collection: true, Element: "Expr"},
			{Name: "SyntaxList", Base: "SyntaxCollection", Buildable: true, Collection: true, Element: "Syntax"},
		},
	}
}

func orderedDecls(t *testing.T, s *schema.Schema) ([]Decl, *graph.TypeGraph) {
	t.Helper()

	g := graph.Build(s)

	res, err := resolve.NewResolver(g, resolve.DefaultConfig()).ResolveAll()
	require.NoError(t, err)

	set := synth.NewSynthesizer(g).Synthesize(res)

	return Order(set, g), g
}

// declLabel reduces a Decl to a short identity string for order assertions.
func declLabel(d Decl) string {
	if d.Interface != nil {
		return "interface:" + d.Interface.Name
	}

	return "methods:" + d.Conformance.TypeName
}

func TestOrder(t *testing.T) {
	decls, _ := orderedDecls(t, genSchema())

	labels := make([]string, len(decls))
	for i, d := range decls {
		labels[i] = declLabel(d)
	}

	assert.Equal(t, []string{
		"interface:ExpressibleAsDecl",
		"interface:ExpressibleAsExpr",
		"interface:ExpressibleAsSyntax",
		"methods:IntegerLiteralExpr",
		"methods:FunctionDecl",
		"interface:ExpressibleAsExprListElement",
		"methods:ExprList",
		"interface:ExpressibleAsSyntaxListElement",
		"methods:SyntaxList",
	}, labels)
}

func TestOrderSortsMethods(t *testing.T) {
	decls, _ := orderedDecls(t, genSchema())

	for _, d := range decls {
		if d.Conformance == nil {
			continue
		}

		names := make([]string, len(d.Conformance.Methods))
		for i, m := range d.Conformance.Methods {
			names[i] = m.Name
		}

		assert.IsIncreasing(t, names, d.Conformance.TypeName)
	}
}

func TestOrderSortsEmbeds(t *testing.T) {
	s := genSchema()
	s.Nodes = append(s.Nodes, schema.Node{Name: "DeclList", Base: "SyntaxCollection", Buildable: true, Collection: true, Element: "Decl"})

	decls, _ := orderedDecls(t, s)

	for _, d := range decls {
		if d.Interface == nil {
			continue
		}

		assert.IsNonDecreasing(t, d.Interface.Embeds, d.Interface.Name)
	}
}

func TestOrderDeterministic(t *testing.T) {
	first, _ := orderedDecls(t, genSchema())
	second, _ := orderedDecls(t, genSchema())

	firstLabels := make([]string, len(first))
	secondLabels := make([]string, len(second))

	for i := range first {
		firstLabels[i] = declLabel(first[i])
		secondLabels[i] = declLabel(second[i])
	}

	assert.Equal(t, firstLabels, secondLabels)
}
