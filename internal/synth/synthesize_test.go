package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
	"builder-generator/internal/schema"
)

func synthSchema() *schema.Schema {
	return &schema.Schema{
		Version: "1",
		BaseKinds: []schema.BaseKind{
			{Name: "Syntax"},
			{Name: "Expr", Base: "Syntax"},
			{Name: "SyntaxCollection", Base: "Syntax"},
		},
		Nodes: []schema.Node{
			{Name: "IntegerLiteralExpr", Base: "Expr", Buildable: true},
			{Name: "SequenceExpr", Base: "Expr", Buildable: true},
			{Name: "SpecializedSequenceExpr", Base: "SequenceExpr", Buildable: true},
			{Name: "MissingExpr", Base: "Expr"},
			{Name: "ExprList", Base: "SyntaxCollection", Buildable: true, Collection: true, Element: "Expr"},
			{Name: "SyntaxList", Base: "SyntaxCollection", Buildable: true, Collection: true, Element: "Syntax"},
		},
	}
}

func synthesize(t *testing.T) *DeclarationSet {
	t.Helper()

	g := graph.Build(synthSchema())

	res, err := resolve.NewResolver(g, resolve.DefaultConfig()).ResolveAll()
	require.NoError(t, err)

	return NewSynthesizer(g).Synthesize(res)
}

func interfaceByName(set *DeclarationSet, name string) *InterfaceDecl {
	for i := range set.Interfaces {
		if set.Interfaces[i].Name == name {
			return &set.Interfaces[i]
		}
	}

	return nil
}

func conformanceByType(set *DeclarationSet, typeName string) *ConformanceDecl {
	for i := range set.Conformances {
		if set.Conformances[i].TypeName == typeName {
			return &set.Conformances[i]
		}
	}

	return nil
}

func TestSynthesizeInterfaces(t *testing.T) {
	set := synthesize(t)

	require.Len(t, set.Interfaces, 4)

	expr := interfaceByName(set, "ExpressibleAsExpr")
	require.NotNil(t, expr)
	assert.Equal(t, []string{"ExpressibleAsSyntax"}, expr.Embeds)
	assert.Equal(t, MethodSig{Name: "CreateExpr", Result: "ExprBuildable"}, expr.Method)

	elem := interfaceByName(set, "ExpressibleAsExprListElement")
	require.NotNil(t, elem)
	assert.Equal(t, []string{"ExpressibleAsSyntaxListElement"}, elem.Embeds)
	assert.Equal(t, MethodSig{Name: "CreateExprList", Result: "ExprList"}, elem.Method)

	root := interfaceByName(set, "ExpressibleAsSyntax")
	require.NotNil(t, root)
	assert.Empty(t, root.Embeds)
}

func TestSynthesizeConformance(t *testing.T) {
	set := synthesize(t)

	decl := conformanceByType(set, "IntegerLiteralExpr")
	require.NotNil(t, decl)
	require.Len(t, decl.Methods, 2)

	assert.Equal(t, FactoryMethod{
		Name:      "CreateExpr",
		Result:    "ExprBuildable",
		Bridge:    resolve.Bridge{Kind: resolve.BridgeBase, Base: "Expr"},
		Satisfies: "ExpressibleAsExpr",
	}, decl.Methods[0])

	assert.Equal(t, FactoryMethod{
		Name:      "CreateExprList",
		Result:    "ExprList",
		Bridge:    resolve.Bridge{Kind: resolve.BridgeElement, Collection: "ExprList"},
		Satisfies: "ExpressibleAsExprListElement",
	}, decl.Methods[1])
}

func TestSynthesizeDelegation(t *testing.T) {
	set := synthesize(t)

	// A node under a concrete buildable base declares nothing itself; its
	// block is the single delegation factory.
	decl := conformanceByType(set, "SpecializedSequenceExpr")
	require.NotNil(t, decl)
	require.Len(t, decl.Methods, 1)

	m := decl.Methods[0]
	assert.Equal(t, "CreateSequenceExpr", m.Name)
	assert.Equal(t, "SequenceExpr", m.Result)
	assert.Equal(t, resolve.BridgeBase, m.Bridge.Kind)
	assert.Empty(t, m.Satisfies)
}

func TestSynthesizeCollectionSelf(t *testing.T) {
	set := synthesize(t)

	decl := conformanceByType(set, "ExprList")
	require.NotNil(t, decl)
	require.Len(t, decl.Methods, 1)
	assert.Equal(t, "CreateExprList", decl.Methods[0].Name)
	assert.Equal(t, resolve.BridgeSelf, decl.Methods[0].Bridge.Kind)
}

func TestSynthesizeSkipsUnbuildable(t *testing.T) {
	set := synthesize(t)

	assert.Nil(t, conformanceByType(set, "MissingExpr"))
}

func TestNaming(t *testing.T) {
	base := resolve.Category{Name: "Expr", Kind: resolve.CategoryBase, Origin: "Expr"}
	elem := resolve.Category{Name: "ExprListElement", Kind: resolve.CategoryElement, Origin: "ExprList"}

	assert.Equal(t, "ExpressibleAsExpr", InterfaceName(base))
	assert.Equal(t, "ExpressibleAsExprListElement", InterfaceName(elem))

	assert.Equal(t, "CreateExpr", FactoryName(base))
	assert.Equal(t, "CreateExprList", FactoryName(elem))

	assert.Equal(t, "ExprBuildable", FactoryResult(base))
	assert.Equal(t, "ExprList", FactoryResult(elem))

	assert.Equal(t, "CreateSequenceExpr", DelegationName("SequenceExpr"))
}

func TestExportParam(t *testing.T) {
	assert.Equal(t, "Content", ExportParam("content"))
	assert.Equal(t, "Content", ExportParam("Content"))
	assert.Equal(t, "X", ExportParam("x"))
	assert.Equal(t, "", ExportParam(""))
}
