package langgen_test

import (
	"go/parser"
	"go/token"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tlocale/pkg/langgen"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

func testConfig() tconfig.Config {
	return tconfig.Config{
		Languages: tconfig.LanguageNode{
			Name: "en",
			Children: []tconfig.LanguageNode{
				{Name: "zh", Children: []tconfig.LanguageNode{{Name: "zh-Hant"}}},
				{Name: "pt-BR"},
			},
		},
		Targets: []tconfig.ScanTarget{{Includes: []string{"/src"}}},
	}
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"en", "EN"},
		{"zh", "ZH"},
		{"pt-BR", "PTBR"},
		{"zh-Hant", "ZHHant"},
		{"es-419", "ES419"},
		{"sr_latn", "SRLatn"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			got, err := langgen.Identifier(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "-", "en us", "中文"} {
		_, err := langgen.Identifier(bad)
		require.ErrorIs(t, err, langgen.ErrInvalidIdentifier, "code %q", bad)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("renders parseable source with one constant per language", func(t *testing.T) {
		t.Parallel()
		src, err := langgen.Generate(testConfig(), langgen.Options{Package: "locales", Source: "t.config.yaml"})
		require.NoError(t, err)

		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, "languages.go", src, parser.ParseComments)
		require.NoError(t, err)
		require.Equal(t, "locales", file.Name.Name)

		out := string(src)
		require.Contains(t, out, "// Code generated by tlocale gen. DO NOT EDIT.")
		require.Contains(t, out, "// Source: t.config.yaml")
		require.Regexp(t, regexp.MustCompile(`LanguageEN\s+Language\s+=\s+"en"`), out)
		require.Regexp(t, regexp.MustCompile(`LanguageZHHant\s+Language\s+=\s+"zh-Hant"`), out)
		require.Regexp(t, regexp.MustCompile(`LanguagePTBR\s+Language\s+=\s+"pt-BR"`), out)
		require.Contains(t, out, "func AllLanguages() []Language")
		require.Contains(t, out, "case LanguageEN, LanguageZH, LanguageZHHant, LanguagePTBR:")
	})

	t.Run("custom type name", func(t *testing.T) {
		t.Parallel()
		src, err := langgen.Generate(testConfig(), langgen.Options{Package: "app", TypeName: "Locale"})
		require.NoError(t, err)
		require.Contains(t, string(src), "type Locale string")
		require.Contains(t, string(src), "func AllLocales() []Locale")
		require.NotContains(t, string(src), "// Source:")
	})

	t.Run("output is stable", func(t *testing.T) {
		t.Parallel()
		a, err := langgen.Generate(testConfig(), langgen.Options{Package: "app"})
		require.NoError(t, err)
		b, err := langgen.Generate(testConfig(), langgen.Options{Package: "app"})
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("requires package", func(t *testing.T) {
		t.Parallel()
		_, err := langgen.Generate(testConfig(), langgen.Options{})
		require.ErrorIs(t, err, langgen.ErrEmptyPackage)

		_, err = langgen.Generate(testConfig(), langgen.Options{Package: "my-pkg"})
		require.ErrorIs(t, err, langgen.ErrInvalidIdentifier)
	})

	t.Run("rejects colliding identifiers", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Languages.Children = append(cfg.Languages.Children, tconfig.LanguageNode{Name: "pt_BR"})
		_, err := langgen.Generate(cfg, langgen.Options{Package: "app"})
		require.ErrorIs(t, err, langgen.ErrInvalidIdentifier)
	})

	t.Run("rejects empty tree", func(t *testing.T) {
		t.Parallel()
		_, err := langgen.Generate(tconfig.Config{}, langgen.Options{Package: "app"})
		require.ErrorIs(t, err, langgen.ErrNoLanguages)
	})
}
