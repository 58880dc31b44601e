// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator is a build-time codegen tool that:
//   - Loads a declarative YAML schema of syntax node kinds
//   - Resolves each kind's convertibility conformances
//   - Emits the ExpressibleAs interfaces and conformance methods as Go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"builder-generator/internal/gen"
	"builder-generator/internal/graph"
	"builder-generator/internal/resolve"
	"builder-generator/internal/schema"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("builder-generator", flag.ContinueOnError)

	schemaPath := fs.String("schema", "schema.yaml", "path to the node schema YAML")
	outDir := fs.String("out", "./generated", "output directory")
	pkgName := fs.String("pkg", "builders", "package name of the generated code")
	parallel := fs.Bool("parallel", false, "resolve node kinds concurrently")
	strict := fs.Bool("strict", false, "fail on warnings")
	dump := fs.Bool("dump", false, "dump the resolution to stderr for debugging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	s, err := schema.LoadFile(*schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load schema:", err)
		return 1
	}

	diags := schema.Validate(s)
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if diags.HasErrors() {
		fmt.Fprintln(os.Stderr, "invalid schema:", diags.Error())
		return 1
	}

	if *strict && len(diags.Warnings) > 0 {
		fmt.Fprintln(os.Stderr, "strict mode: schema has warnings")
		return 1
	}

	g := graph.Build(s)

	resolver := resolve.NewResolver(g, resolve.Config{Parallel: *parallel})

	res, err := resolver.ResolveAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve:", err)
		return 1
	}

	if *dump {
		spew.Fdump(os.Stderr, res)
	}

	for _, info := range res.Diagnostics.Infos {
		fmt.Fprintln(os.Stderr, "note:", info.String())
	}

	cfg := gen.DefaultConfig()
	cfg.PackageName = *pkgName
	cfg.OutputDir = *outDir

	files, err := gen.NewGenerator(g, cfg).Generate(res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		return 1
	}

	if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		return 1
	}

	return 0
}
