package tconfig_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, newConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*tconfig.Config)
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty root name",
			mutate:  func(c *tconfig.Config) { c.Languages.Name = "" },
			wantErr: tconfig.ErrEmptyLanguage,
		},
		{
			name:    "malformed language tag",
			mutate:  func(c *tconfig.Config) { c.Languages.Children[0].Name = "not a tag" },
			wantErr: tconfig.ErrInvalidLanguage,
		},
		{
			name: "duplicate language in nested child",
			mutate: func(c *tconfig.Config) {
				c.Languages.Children[0].Children = []tconfig.LanguageNode{{Name: "en"}}
			},
			wantErr: tconfig.ErrDuplicateLanguage,
			wantMsg: `"en"`,
		},
		{
			name:    "no targets",
			mutate:  func(c *tconfig.Config) { c.Targets = nil },
			wantErr: tconfig.ErrNoTargets,
		},
		{
			name:    "no includes",
			mutate:  func(c *tconfig.Config) { c.Targets[0].Includes = nil },
			wantErr: tconfig.ErrEmptyIncludes,
			wantMsg: "targets[0].includes",
		},
		{
			name:    "bad exclude pattern",
			mutate:  func(c *tconfig.Config) { c.Targets[0].Excludes = append(c.Targets[0].Excludes, "[") },
			wantErr: tconfig.ErrInvalidPattern,
			wantMsg: "targets[0].excludes[2]",
		},
		{
			name:    "blank output",
			mutate:  func(c *tconfig.Config) { c.Targets[0].Output = " " },
			wantErr: tconfig.ErrEmptyOutput,
		},
		{
			name:    "blank function name",
			mutate:  func(c *tconfig.Config) { c.Targets[0].FnNames = []string{"t", ""} },
			wantErr: tconfig.ErrEmptyFnName,
			wantMsg: "targets[0].fnNames[1]",
		},
		{
			name:    "no function names",
			mutate:  func(c *tconfig.Config) { c.Targets[0].FnNames = nil },
			wantErr: tconfig.ErrEmptyFnName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := newConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()
		cfg := newConfig()
		cfg.Languages.Name = ""
		cfg.Targets[0].Includes = nil
		cfg.Targets[0].Output = ""

		err := cfg.Validate()
		require.ErrorIs(t, err, tconfig.ErrEmptyLanguage)
		require.ErrorIs(t, err, tconfig.ErrEmptyIncludes)
		require.ErrorIs(t, err, tconfig.ErrEmptyOutput)
	})
}
