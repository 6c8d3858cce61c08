// Package logger builds the structured log/slog logger used by the tlocale
// command and services.
//
// Configuration comes from the environment:
//
//	LOG_LEVEL           debug, info, warn or error (default info)
//	LOG_FORMAT          text (colored, human readable) or json (default text)
//	LOG_NO_COLOR        disable colors in text output
//	SENTRY_DSN          when set, warnings and errors are also sent to Sentry
//	SENTRY_ENVIRONMENT  Sentry environment name (default production)
//
// Basic usage:
//
//	cfg, err := logger.ConfigFromEnv()
//	if err != nil {
//		return err
//	}
//	log, flush, err := logger.New(cfg, os.Stderr)
//	if err != nil {
//		return err
//	}
//	defer flush()
//
// # Context Extractors
//
// A ContextExtractor adds a request-scoped attribute to every record logged
// with a context, for example the resolved language:
//
//	langExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		lang, ok := langpref.FromContext(ctx)
//		return slog.String("lang", lang), ok
//	}
//	log, flush, err := logger.New(cfg, os.Stderr, langExtractor)
//
// If Sentry cannot be initialized the logger keeps writing locally and
// reports the failure once.
package logger
