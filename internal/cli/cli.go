package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/tlocale"
	"github.com/dmitrymomot/tlocale/middlewares"
	"github.com/dmitrymomot/tlocale/pkg/langpref"
	"github.com/dmitrymomot/tlocale/pkg/logger"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// BuiltinSource names the compiled-in declaration in output and generated headers.
const BuiltinSource = "builtin"

// CLI is the command tree.
type CLI struct {
	Config  string           `short:"c" default:"t.config.yaml" env:"TLOCALE_CONFIG" help:"Path to the config file (.yaml, .yml, .json or .toml)."`
	Builtin bool             `help:"Use the compiled-in declaration instead of a config file."`
	Verbose bool             `short:"v" help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print version and exit."`

	Init      InitCmd      `cmd:"" help:"Write a config file with the default declaration."`
	Languages LanguagesCmd `cmd:"" aliases:"ls" help:"List the declared languages."`
	Validate  ValidateCmd  `cmd:"" help:"Load and validate the config file."`
	Show      ShowCmd      `cmd:"" help:"Print the normalized configuration."`
	Gen       GenCmd       `cmd:"" help:"Generate Go constants for the declared languages."`
	Serve     ServeCmd     `cmd:"" help:"Serve the language preference API."`
}

// App is passed to every command.
type App struct {
	Ctx context.Context
	Out io.Writer
	Log *slog.Logger

	cli *CLI
}

// LoadConfig returns the active declaration and a label for where it came from.
func (a *App) LoadConfig() (tconfig.Config, string, error) {
	if a.cli.Builtin {
		return tlocale.Config(), BuiltinSource, nil
	}

	cfg, err := tconfig.Load(a.cli.Config)
	if err != nil {
		return tconfig.Config{}, "", err
	}
	a.Log.Debug("config loaded",
		slog.String("path", a.cli.Config),
		slog.Int("languages", len(cfg.LanguageCodes())),
		slog.Int("targets", len(cfg.Targets)),
	)
	return cfg, a.cli.Config, nil
}

// Run parses args and executes the selected command. Regular output goes to
// stdout, logs to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("tlocale"),
		kong.Description("Language declaration tooling for tlocale projects."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logCfg, err := logger.ConfigFromEnv()
	if err != nil {
		return err
	}
	if root.Verbose {
		logCfg.Level = "debug"
	}
	log, flush, err := logger.New(logCfg, stderr, middlewares.RequestIDExtractor(), languageExtractor)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer flush()

	return kctx.Run(&App{Ctx: ctx, Out: stdout, Log: log, cli: &root})
}

func languageExtractor(ctx context.Context) (slog.Attr, bool) {
	lang, ok := langpref.FromContext(ctx)
	return slog.String("lang", lang), ok
}
