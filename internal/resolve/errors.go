package resolve

import (
	"fmt"
	"strings"
)

// CyclicTypeGraphError reports a cycle in the base-type or convertible-to
// relation. Path holds the kind names along the cycle, first repeated last.
type CyclicTypeGraphError struct {
	Path []string
}

// Error implements the error interface.
func (e *CyclicTypeGraphError) Error() string {
	return "cyclic type graph: " + strings.Join(e.Path, " -> ")
}

// AmbiguousCategoryError reports two distinct conversion paths from one
// source landing on the same category. A single factory method cannot carry
// two wrapper chains, so this is a fatal configuration error.
type AmbiguousCategoryError struct {
	Source   string
	Category string
	Paths    [][]WrapStep
}

// Error implements the error interface.
func (e *AmbiguousCategoryError) Error() string {
	paths := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		steps := make([]string, len(p))
		for j, s := range p {
			steps[j] = fmt.Sprintf("%s(%s:)", s.Target, s.Param)
		}

		paths[i] = strings.Join(steps, " -> ")
	}

	return fmt.Sprintf("ambiguous category %q for %q: conversion paths [%s] conflict",
		e.Category, e.Source, strings.Join(paths, "] and ["))
}
