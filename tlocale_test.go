package tlocale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tlocale"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

func TestLanguages(t *testing.T) {
	t.Parallel()

	require.Equal(t, []tlocale.Language{"en", "zh"}, tlocale.Languages())

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		first := tlocale.Languages()
		first[0] = "de"
		require.Equal(t, []tlocale.Language{tlocale.LanguageEN, tlocale.LanguageZH}, tlocale.Languages())
	})

	t.Run("generated constants match the declaration", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, tlocale.Languages(), tlocale.AllLanguages())
		for _, lang := range tlocale.Languages() {
			require.True(t, lang.IsValid(), lang.String())
		}
		require.False(t, tlocale.Language("de").IsValid())
	})
}

func TestDefaultLanguage(t *testing.T) {
	t.Parallel()
	require.Equal(t, tlocale.LanguageEN, tlocale.DefaultLanguage())
	require.Equal(t, "en", tlocale.DefaultLanguage().String())
}

func TestLangKey(t *testing.T) {
	t.Parallel()
	require.Equal(t, "lang", tlocale.LangKey)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := tlocale.Config()
	require.NoError(t, cfg.Validate())

	require.Equal(t, []tconfig.ScanTarget{{
		Includes: []string{"/src"},
		Excludes: []string{"node_modules", ".*"},
		Output:   "_t",
		FnNames:  []string{"t"},
	}}, cfg.Targets)

	t.Run("defaults are already explicit", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, tlocale.Config(), tlocale.Config().WithDefaults())
	})

	t.Run("callers cannot mutate the declaration", func(t *testing.T) {
		t.Parallel()
		c := tlocale.Config()
		c.Languages.Name = "fr"
		c.Targets[0].FnNames[0] = "tr"

		fresh := tlocale.Config()
		require.Equal(t, "en", fresh.DefaultLanguage())
		require.Equal(t, []string{"t"}, fresh.Targets[0].FnNames)
	})

	t.Run("round-trips through every format", func(t *testing.T) {
		t.Parallel()
		for _, format := range []tconfig.Format{tconfig.FormatJSON, tconfig.FormatYAML, tconfig.FormatTOML} {
			data, err := tconfig.Marshal(tlocale.Config(), format)
			require.NoError(t, err)

			got, err := tconfig.Parse(data, format)
			require.NoError(t, err)
			require.Equal(t, tlocale.Config(), got, "format %s", format)
		}
	})
}
