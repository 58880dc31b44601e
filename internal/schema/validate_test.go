package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/diagnostic"
)

func errorCodes(d *diagnostic.Diagnostics) []string {
	out := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func validSchema() *Schema {
	return &Schema{
		Version: "1",
		BaseKinds: []BaseKind{
			{Name: "Syntax"},
			{Name: "Expr", Base: "Syntax"},
			{Name: SyntaxCollectionName, Base: "Syntax"},
		},
		Nodes: []Node{
			{Name: "IntegerLiteralExpr", Base: "Expr", Buildable: true},
			{Name: "ExprList", Base: SyntaxCollectionName, Buildable: true, Collection: true, Element: "Expr"},
		},
		Conversions: []Conversion{
			{Source: "IntegerLiteralExpr", Target: "Expr", Param: "digits"},
		},
	}
}

func TestValidateOK(t *testing.T) {
	diags := Validate(validSchema())

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
	assert.NoError(t, diags.Error())
}

func TestValidateNil(t *testing.T) {
	diags := Validate(nil)

	require.True(t, diags.HasErrors())
	assert.Contains(t, errorCodes(diags), "schema_is_nil")
}

func TestValidateDuplicateNames(t *testing.T) {
	s := validSchema()
	s.BaseKinds = append(s.BaseKinds, BaseKind{Name: "Expr"})
	s.Nodes = append(s.Nodes,
		Node{Name: "IntegerLiteralExpr", Base: "Expr"},
		Node{Name: "Syntax"},
		Node{Name: ""},
	)

	codes := errorCodes(Validate(s))

	assert.Contains(t, codes, "duplicate_kind")
	assert.Contains(t, codes, "empty_kind_name")

	// Expr twice, IntegerLiteralExpr twice, node colliding with Syntax.
	count := 0
	for _, c := range codes {
		if c == "duplicate_kind" {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestValidateBaseRefs(t *testing.T) {
	t.Run("unknown base", func(t *testing.T) {
		s := validSchema()
		s.Nodes[0].Base = "NoSuchKind"

		assert.Contains(t, errorCodes(Validate(s)), "base_not_found")
	})

	t.Run("base kind deriving from node", func(t *testing.T) {
		s := validSchema()
		s.BaseKinds = append(s.BaseKinds, BaseKind{Name: "Pattern", Base: "IntegerLiteralExpr"})

		assert.Contains(t, errorCodes(Validate(s)), "base_not_base_kind")
	})

	t.Run("node deriving from node", func(t *testing.T) {
		s := validSchema()
		s.Nodes = append(s.Nodes, Node{Name: "NegativeIntegerLiteralExpr", Base: "IntegerLiteralExpr", Buildable: true})

		assert.True(t, Validate(s).IsValid())
	})
}

func TestValidateCollections(t *testing.T) {
	t.Run("collection without element", func(t *testing.T) {
		s := validSchema()
		s.Nodes[1].Element = ""

		assert.Contains(t, errorCodes(Validate(s)), "collection_without_element")
	})

	t.Run("element on non-collection", func(t *testing.T) {
		s := validSchema()
		s.Nodes[0].Element = "Expr"

		assert.Contains(t, errorCodes(Validate(s)), "element_on_non_collection")
	})

	t.Run("unknown element", func(t *testing.T) {
		s := validSchema()
		s.Nodes[1].Element = "NoSuchKind"

		assert.Contains(t, errorCodes(Validate(s)), "element_not_found")
	})

	t.Run("element is SyntaxCollection", func(t *testing.T) {
		s := validSchema()
		s.Nodes[1].Element = SyntaxCollectionName

		assert.Contains(t, errorCodes(Validate(s)), "element_is_syntax_collection")
	})
}

func TestValidateCategoryNameCollision(t *testing.T) {
	t.Run("base kind shadows element category", func(t *testing.T) {
		// A base kind named ExprListElement would share its category name
		// with the one derived for the ExprList collection, emitting two
		// interfaces with one type name.
		s := validSchema()
		s.BaseKinds = append(s.BaseKinds, BaseKind{Name: "ExprListElement", Base: "Syntax"})

		assert.Contains(t, errorCodes(Validate(s)), "category_name_collision")
	})

	t.Run("node shadows element category", func(t *testing.T) {
		s := validSchema()
		s.Nodes = append(s.Nodes, Node{Name: "ExprListElement", Base: "Expr", Buildable: true})

		assert.Contains(t, errorCodes(Validate(s)), "category_name_collision")
	})

	t.Run("suffixed names are fine without a matching collection", func(t *testing.T) {
		s := validSchema()
		s.Nodes = append(s.Nodes, Node{Name: "DeclListElement", Base: "Expr", Buildable: true})

		assert.True(t, Validate(s).IsValid())
	})
}

func TestValidateConversions(t *testing.T) {
	t.Run("source is base kind", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Source = "Expr"

		assert.Contains(t, errorCodes(Validate(s)), "conversion_source_is_base_kind")
	})

	t.Run("source not found", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Source = "NoSuchKind"

		assert.Contains(t, errorCodes(Validate(s)), "conversion_source_not_found")
	})

	t.Run("empty param", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Param = ""

		assert.Contains(t, errorCodes(Validate(s)), "conversion_param_empty")
	})

	t.Run("duplicate is a warning", func(t *testing.T) {
		s := validSchema()
		s.Conversions = append(s.Conversions, s.Conversions[0])

		diags := Validate(s)
		assert.True(t, diags.IsValid())
		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, "duplicate_conversion", diags.Warnings[0].Code)
	})

	t.Run("target not found", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Target = "NoSuchKind"

		assert.Contains(t, errorCodes(Validate(s)), "conversion_target_not_found")
	})

	t.Run("target is SyntaxCollection", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Target = SyntaxCollectionName

		assert.Contains(t, errorCodes(Validate(s)), "conversion_target_unexpressible")
	})

	t.Run("target node without category or chain", func(t *testing.T) {
		s := validSchema()
		s.Nodes = append(s.Nodes, Node{Name: "DeadEnd", Base: "Syntax", Buildable: true})
		s.Conversions[0].Target = "DeadEnd"

		assert.Contains(t, errorCodes(Validate(s)), "conversion_target_unexpressible")
	})

	t.Run("target node chaining onward", func(t *testing.T) {
		s := validSchema()
		s.Nodes = append(s.Nodes, Node{Name: "StringLiteralExpr", Base: "Expr", Buildable: true})
		s.Conversions = []Conversion{
			{Source: "IntegerLiteralExpr", Target: "StringLiteralExpr", Param: "content"},
			{Source: "StringLiteralExpr", Target: "Expr", Param: "expression"},
		}

		assert.True(t, Validate(s).IsValid())
	})

	t.Run("target collection", func(t *testing.T) {
		s := validSchema()
		s.Conversions[0].Target = "ExprList"

		assert.True(t, Validate(s).IsValid())
	})
}
