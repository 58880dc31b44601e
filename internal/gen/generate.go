package gen

import (
	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
	"builder-generator/internal/synth"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// Filename is the name of the generated file.
	Filename string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		PackageName: "builders",
		Filename:    "expressible_as.go",
		OutputDir:   "./generated",
	}
}

// Generator renders a resolution into generated files.
type Generator struct {
	config Config
	graph  *graph.TypeGraph
}

// NewGenerator creates a Generator for the given graph.
func NewGenerator(g *graph.TypeGraph, config Config) *Generator {
	return &Generator{config: config, graph: g}
}

// Generate synthesizes, orders, and emits the declarations of a resolution.
func (g *Generator) Generate(res *resolve.Resolution) ([]GeneratedFile, error) {
	set := synth.NewSynthesizer(g.graph).Synthesize(res)
	ordered := Order(set, g.graph)

	content, err := Emit(ordered, g.config.PackageName, g.config.Filename)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: content}}, nil
}
