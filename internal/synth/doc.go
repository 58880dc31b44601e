// Package synth turns resolved conformances into abstract declarations:
// one interface per convertibility category and one conformance block of
// factory methods per buildable node.
//
// The generated surface assumes builder structs embed their base type's
// builder, so implied conformances arrive by method promotion and must not
// be redeclared; the synthesizer only ever sees the declared set.
//
// All identifier construction lives in naming.go so an alternate naming
// scheme stays a one-function change.
package synth
