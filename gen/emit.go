package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strconv"
	"text/template"

	"github.com/iconogen/iconogen/core"
	"github.com/iconogen/iconogen/icon"
)

// SourceFile is one rendered output file, with a path relative to the
// output directory.
type SourceFile struct {
	Path    string
	Content []byte
}

// ShapingExpr returns the Go expression for the module's shaping mode,
// as it appears in rendered accessors.
func (m *Module) ShapingExpr() string {
	if m.Shaping == icon.ShapingAdvanced {
		return "icon.ShapingAdvanced"
	}
	return "icon.ShapingBasic"
}

// Render produces the module's source files: the accessor package, and,
// if the advanced surface was requested, the advancedtext sub-package
// with raw accessors. Output is gofmt-formatted and deterministic: the
// same module renders to byte-identical files every time.
func (m *Module) Render() ([]SourceFile, error) {
	files := make([]SourceFile, 0, 2)
	main, err := renderFile(moduleTemplate, m)
	if err != nil {
		return nil, err
	}
	files = append(files, SourceFile{
		Path:    path.Join(m.Name, m.Name+".go"),
		Content: main,
	})
	if m.Advanced {
		adv, err := renderFile(advancedTemplate, m)
		if err != nil {
			return nil, err
		}
		files = append(files, SourceFile{
			Path:    path.Join(m.Name, "advancedtext", "advancedtext.go"),
			Content: adv,
		})
	}
	return files, nil
}

func renderFile(tmpl *template.Template, m *Module) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, m); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot render module %q", m.Name)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		tracer().Errorf("rendered source does not format: %v", err)
		return nil, core.WrapError(err, core.EINTERNAL,
			"rendered source for module %q is not legal Go", m.Name)
	}
	return formatted, nil
}

var templateFuncs = template.FuncMap{
	// ''-style rune literal
	"runelit": func(r rune) string { return strconv.QuoteRune(r) },
	// U+E800-style code-point reference for doc comments
	"uplus": func(r rune) string { return fmt.Sprintf("%U", r) },
}

var moduleTemplate = template.Must(template.New("module").Funcs(templateFuncs).Parse(
	`// Code generated by iconogen. DO NOT EDIT.

// Package {{.Name}} provides accessors for the icons of the {{.FontName}} font.
package {{.Name}}

import "github.com/iconogen/iconogen/icon"

// Font selects the {{.FontName}} font family.
var Font = icon.FontWithName({{printf "%q" .FontName}})

// Count is the number of icons accessible through this package.
const Count = {{.Count}}
{{range .Entries}}
// {{.Symbol}} returns the '{{.Name}}' icon, {{uplus .Codepoint}}.
{{- if $.DocLink}}
//
// See {{$.DocLink}}/{{.RawName}}.
{{- end}}
func {{.Symbol}}() icon.Text {
	return icon.NewText({{runelit .Codepoint}}, Font, {{$.ShapingExpr}})
}
{{end}}`))

var advancedTemplate = template.Must(template.New("advanced").Funcs(templateFuncs).Parse(
	`// Code generated by iconogen. DO NOT EDIT.

// Package advancedtext provides raw accessors for the icons of the
// {{.FontName}} font: each accessor hands back the icon's content, font
// and shaping directly, for clients which assemble text themselves.
package advancedtext

import "github.com/iconogen/iconogen/icon"

// Font selects the {{.FontName}} font family.
var Font = icon.FontWithName({{printf "%q" .FontName}})
{{range .Entries}}
// {{.Symbol}} returns content, font and shaping of the '{{.Name}}' icon, {{uplus .Codepoint}}.
{{- if $.DocLink}}
//
// See {{$.DocLink}}/{{.RawName}}.
{{- end}}
func {{.Symbol}}() (string, icon.Font, icon.Shaping) {
	return {{printf "%q" .Content}}, Font, {{$.ShapingExpr}}
}
{{end}}`))
