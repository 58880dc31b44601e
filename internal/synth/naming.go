package synth

import (
	"unicode"
	"unicode/utf8"

	"builder-generator/internal/resolve"
)

// InterfaceName returns the interface name for a category.
func InterfaceName(c resolve.Category) string {
	return "ExpressibleAs" + c.Name
}

// FactoryName returns the factory method name required by a category's
// interface. It is keyed on the origin kind, not the category name: an
// element category's factory produces the collection itself.
func FactoryName(c resolve.Category) string {
	return "Create" + c.Origin
}

// FactoryResult returns the type produced by a category's factory: the
// builder form of a base kind, or the collection node itself.
func FactoryResult(c resolve.Category) string {
	if c.Kind == resolve.CategoryBase {
		return c.Origin + "Buildable"
	}

	return c.Origin
}

// DelegationName returns the factory method name delegating to a concrete
// base node's builder.
func DelegationName(base string) string {
	return "Create" + base
}

// ExportParam converts a conversion parameter name to the exported field
// name used in the wrapper literal.
func ExportParam(param string) string {
	r, size := utf8.DecodeRuneInString(param)
	if r == utf8.RuneError {
		return param
	}

	return string(unicode.ToUpper(r)) + param[size:]
}
