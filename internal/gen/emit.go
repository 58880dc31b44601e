package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"builder-generator/internal/resolve"
	"builder-generator/internal/synth"
)

// receiver is the method receiver name used in every conformance method.
const receiver = "n"

// fileData is the template payload for one generated file.
type fileData struct {
	Package string
	Decls   []declData
}

// declData is a rendered declaration: an interface or a method block.
type declData struct {
	IsInterface bool

	// Interface fields.
	Name         string
	Embeds       []string
	MethodName   string
	MethodResult string

	// Conformance fields.
	TypeName string
	Methods  []methodData
}

type methodData struct {
	Doc    string
	Name   string
	Result string
	Body   string
}

// Emit renders the ordered declarations into a formatted Go file.
func Emit(decls []Decl, pkgName, filename string) ([]byte, error) {
	data := fileData{Package: pkgName}

	for _, d := range decls {
		switch {
		case d.Interface != nil:
			data.Decls = append(data.Decls, interfaceData(d.Interface))

		case d.Conformance != nil:
			data.Decls = append(data.Decls, conformanceData(d.Conformance))
		}
	}

	var buf bytes.Buffer
	if err := outputTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing output template: %w", err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}

	return formatted, nil
}

func interfaceData(decl *synth.InterfaceDecl) declData {
	return declData{
		IsInterface:  true,
		Name:         decl.Name,
		Embeds:       decl.Embeds,
		MethodName:   decl.Method.Name,
		MethodResult: decl.Method.Result,
	}
}

func conformanceData(decl *synth.ConformanceDecl) declData {
	out := declData{TypeName: decl.TypeName}

	for _, m := range decl.Methods {
		doc := fmt.Sprintf("%s delegates to the %s builder.", m.Name, m.Result)
		if m.Satisfies != "" {
			doc = fmt.Sprintf("%s satisfies %s.", m.Name, m.Satisfies)
		}

		out.Methods = append(out.Methods, methodData{
			Doc:    doc,
			Name:   m.Name,
			Result: m.Result,
			Body:   bodyExpr(m),
		})
	}

	return out
}

// bodyExpr renders the single return expression of a factory method.
func bodyExpr(m synth.FactoryMethod) string {
	switch m.Bridge.Kind {
	case resolve.BridgeSelf:
		return receiver

	case resolve.BridgeConvert:
		expr := receiver
		for _, step := range m.Bridge.Steps {
			expr = fmt.Sprintf("%s{%s: %s}", step.Target, synth.ExportParam(step.Param), expr)
		}

		return expr

	default:
		// Base wraps and element wraps both go through the target's
		// variadic constructor.
		return fmt.Sprintf("New%s(%s)", m.Result, receiver)
	}
}

var outputTemplate = template.Must(template.New("output").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{ .Package }}
{{ range .Decls }}
{{- if .IsInterface }}
// {{ .Name }} types can produce a {{ .MethodResult }}.
type {{ .Name }} interface {
{{- range .Embeds }}
	{{ . }}
{{- end }}
	{{ .MethodName }}() {{ .MethodResult }}
}
{{ else }}
{{- $type := .TypeName }}
{{- range .Methods }}
// {{ .Doc }}
func (n {{ $type }}) {{ .Name }}() {{ .Result }} {
	return {{ .Body }}
}
{{ end }}
{{- end }}
{{- end }}`))
