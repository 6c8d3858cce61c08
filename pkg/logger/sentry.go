package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const sentryFlushTimeout = 2 * time.Second

// withSentry adds a Sentry destination to local when a DSN is configured.
// Errors become Sentry issues; warnings and errors are kept as Sentry logs.
func withSentry(local slog.Handler, cfg Config) (slog.Handler, func()) {
	noop := func() {}
	if cfg.SentryDSN == "" {
		return local, noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return local, noop
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return fanout{local, remote}, func() { sentry.Flush(sentryFlushTimeout) }
}
