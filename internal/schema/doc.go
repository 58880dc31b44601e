// Package schema provides the YAML schema definitions, parsing, and
// structural validation for the syntax-node descriptor consumed by the
// generator.
//
// YAML is the source of truth: node kinds are authored as data, not as
// compiled literals, so regeneration is deterministic and schema edits
// never require touching the generator.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	base_kinds:
//	  - name: Syntax
//	  - name: Expr
//	    base: Syntax
//	  - name: SyntaxCollection
//	    base: Syntax
//	nodes:
//	  - name: IntegerLiteralExpr
//	    base: Expr
//	    buildable: true
//	  - name: ExprList
//	    base: SyntaxCollection
//	    collection: true
//	    element: Expr
//	conversions:
//	  - source: StringLiteralExpr
//	    target: Expr
//	    param: content
//
// Base kinds form a single-parent hierarchy; the SyntaxCollection base kind
// is the umbrella under which collection nodes sit. Conversions declare that
// the target wrapper type can be constructed from the source via a single
// labeled parameter.
package schema
