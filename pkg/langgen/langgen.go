package langgen

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

// DefaultTypeName is the name of the generated string type when Options.TypeName is empty.
const DefaultTypeName = "Language"

// DefaultGenerator is written into the "Code generated by" header when Options.Generator is empty.
const DefaultGenerator = "tlocale gen"

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file. Required.
	Package string
	// TypeName names the generated string type. Default: "Language".
	TypeName string
	// Generator names the tool in the header comment. Default: "tlocale gen".
	Generator string
	// Source is an optional description of where the config came from.
	Source string
}

type langData struct {
	Code  string
	Ident string
}

type fileData struct {
	Generator string
	Source    string
	Package   string
	Type      string
	Langs     []langData
}

var fileTemplate = template.Must(template.New("languages").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

// {{.Type}} is a language code declared in the localization config.
type {{.Type}} string

// Declared languages. {{.Type}}{{(index .Langs 0).Ident}} is the default.
const (
{{- range .Langs}}
	{{$.Type}}{{.Ident}} {{$.Type}} = {{printf "%q" .Code}}
{{- end}}
)

// All{{.Type}}s returns every declared language, default first.
func All{{.Type}}s() []{{.Type}} {
	return []{{.Type}}{
{{- range .Langs}}
		{{$.Type}}{{.Ident}},
{{- end}}
	}
}

// IsValid reports whether l is a declared language.
func (l {{.Type}}) IsValid() bool {
	switch l {
	case {{range $i, $l := .Langs}}{{if $i}}, {{end}}{{$.Type}}{{$l.Ident}}{{end}}:
		return true
	}
	return false
}

// String returns the language code.
func (l {{.Type}}) String() string {
	return string(l)
}
`))

// Generate renders the constants file for every language declared in cfg.
// The output is gofmt-formatted.
func Generate(cfg tconfig.Config, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, ErrEmptyPackage
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidIdentifier, opts.Package)
	}
	if opts.TypeName == "" {
		opts.TypeName = DefaultTypeName
	}
	if !token.IsIdentifier(opts.TypeName) {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidIdentifier, opts.TypeName)
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}

	codes := cfg.LanguageCodes()
	if len(codes) == 0 || codes[0] == "" {
		return nil, ErrNoLanguages
	}

	data := fileData{
		Generator: opts.Generator,
		Source:    opts.Source,
		Package:   opts.Package,
		Type:      opts.TypeName,
	}

	seen := make(map[string]string, len(codes))
	for _, code := range codes {
		ident, err := Identifier(code)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("%w: %q and %q both map to %s%s", ErrInvalidIdentifier, prev, code, opts.TypeName, ident)
		}
		seen[ident] = code
		data.Langs = append(data.Langs, langData{Code: code, Ident: ident})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	out, err := imports.Process(opts.Package+"_languages.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

// Identifier converts a language code into the suffix used for its constant:
// the primary subtag is upper-cased, short subtags (regions, numeric codes)
// are upper-cased and longer subtags (scripts, variants) are title-cased.
//
//	en      -> EN
//	pt-BR   -> PTBR
//	zh-Hant -> ZHHant
func Identifier(code string) (string, error) {
	parts := strings.FieldsFunc(code, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, code)
	}

	title := cases.Title(language.Und)

	var b strings.Builder
	for i, part := range parts {
		for _, r := range part {
			if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
				return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, code)
			}
		}
		if i == 0 || len(part) <= 3 {
			b.WriteString(strings.ToUpper(part))
			continue
		}
		b.WriteString(title.String(strings.ToLower(part)))
	}
	return b.String(), nil
}
