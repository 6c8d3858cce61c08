package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/tlocale"
	"github.com/dmitrymomot/tlocale/pkg/langgen"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

// InitCmd writes the default declaration to a new config file.
type InitCmd struct {
	Output string `short:"o" default:"t.config.yaml" help:"File to create; the extension selects the format."`
	Force  bool   `short:"f" help:"Overwrite an existing file."`
}

func (c *InitCmd) Run(app *App) error {
	err := tconfig.Save(c.Output, tlocale.Config(), c.Force)
	if errors.Is(err, tconfig.ErrExists) {
		app.Log.Warn("config file already exists, use --force to overwrite", "path", c.Output)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "created %s\n", c.Output)
	return nil
}

// LanguagesCmd lists the declared languages in walk order.
type LanguagesCmd struct {
	JSON bool `help:"Print JSON including the default language and fallback chains."`
	Tree bool `help:"Indent each language under its parent."`
}

type languagesOutput struct {
	Default   string              `json:"default"`
	Key       string              `json:"key"`
	Languages []string            `json:"languages"`
	Fallbacks map[string][]string `json:"fallbacks"`
}

func (c *LanguagesCmd) Run(app *App) error {
	cfg, _, err := app.LoadConfig()
	if err != nil {
		return err
	}

	switch {
	case c.JSON:
		out := languagesOutput{
			Default:   cfg.DefaultLanguage(),
			Key:       tlocale.LangKey,
			Languages: cfg.LanguageCodes(),
			Fallbacks: make(map[string][]string),
		}
		for _, lang := range out.Languages {
			out.Fallbacks[lang] = cfg.Languages.FallbackChain(lang)
		}
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case c.Tree:
		depth := make(map[string]int)
		for lang, parent := range cfg.Languages.All() {
			if parent != "" {
				depth[lang] = depth[parent] + 1
			}
			fmt.Fprintf(app.Out, "%s%s\n", strings.Repeat("  ", depth[lang]), lang)
		}
		return nil

	default:
		for _, lang := range cfg.LanguageCodes() {
			fmt.Fprintln(app.Out, lang)
		}
		return nil
	}
}

// ValidateCmd loads the configuration and reports whether it is valid.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(app *App) error {
	cfg, source, err := app.LoadConfig()
	if err != nil {
		return err
	}
	// Files are validated on load; the builtin declaration is checked here.
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "ok: %s (%d languages, %d targets)\n", source, len(cfg.LanguageCodes()), len(cfg.Targets))
	return nil
}

// ShowCmd prints the configuration with defaults applied.
type ShowCmd struct {
	Format string `short:"f" enum:"yaml,json,toml" default:"yaml" help:"Output format (${enum})."`
}

func (c *ShowCmd) Run(app *App) error {
	cfg, _, err := app.LoadConfig()
	if err != nil {
		return err
	}
	format, err := tconfig.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	data, err := tconfig.Marshal(cfg.WithDefaults(), format)
	if err != nil {
		return err
	}
	_, err = app.Out.Write(data)
	return err
}

// GenCmd renders a Go file with one constant per declared language.
type GenCmd struct {
	Package string `short:"p" required:"" help:"Package name of the generated file."`
	Type    string `short:"t" default:"Language" help:"Name of the generated string type."`
	Output  string `short:"o" help:"File to write; stdout when empty."`
}

func (c *GenCmd) Run(app *App) error {
	cfg, source, err := app.LoadConfig()
	if err != nil {
		return err
	}

	src, err := langgen.Generate(cfg, langgen.Options{
		Package:  c.Package,
		TypeName: c.Type,
		Source:   source,
	})
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = app.Out.Write(src)
		return err
	}
	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", c.Output, err)
	}
	app.Log.Info("constants generated", "path", c.Output, "languages", len(cfg.LanguageCodes()))
	return nil
}
