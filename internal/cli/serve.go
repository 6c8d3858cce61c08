package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tlocale/middlewares"
	"github.com/dmitrymomot/tlocale/pkg/health"
	"github.com/dmitrymomot/tlocale/pkg/langpref"
	"github.com/dmitrymomot/tlocale/pkg/redis"
)

// ServeCmd runs the language preference API.
type ServeCmd struct {
	Addr            string        `default:":8080" env:"TLOCALE_ADDR" help:"Listen address."`
	RedisURL        string        `name:"redis-url" env:"REDIS_URL" help:"Persist preferences in Redis (redis:// or rediss://). In-memory when empty. Pool settings come from REDIS_* variables."`
	RedisPrefix     string        `name:"redis-prefix" help:"Redis key prefix; defaults to the language key."`
	RedisTTL        time.Duration `name:"redis-ttl" help:"Lifetime of stored preferences; zero keeps them forever."`
	SubjectHeader   string        `default:"X-User-ID" help:"Request header identifying the user whose preference is stored."`
	CookieDomain    string        `help:"Domain attribute of the language cookie."`
	CookieSecure    bool          `help:"Mark the language cookie Secure."`
	CookieHTTPOnly  bool          `name:"cookie-http-only" default:"true" negatable:"" help:"Hide the language cookie from browser scripts."`
	ShutdownTimeout time.Duration `default:"10s" help:"Grace period for in-flight requests on shutdown."`
}

func (c *ServeCmd) Run(app *App) error {
	cfg, source, err := app.LoadConfig()
	if err != nil {
		return err
	}

	ctx := app.Ctx
	checks := health.Checks{
		"config": func(context.Context) error { return cfg.Validate() },
	}

	var store langpref.Store = langpref.NewMemoryStore()
	if c.RedisURL != "" {
		redisCfg, err := redis.ConfigFromEnv()
		if err != nil {
			return err
		}
		redisCfg.URL = c.RedisURL

		client, err := redis.Open(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		var opts []langpref.RedisOption
		if c.RedisPrefix != "" {
			opts = append(opts, langpref.WithRedisPrefix(c.RedisPrefix))
		}
		if c.RedisTTL > 0 {
			opts = append(opts, langpref.WithRedisTTL(c.RedisTTL))
		}
		store = langpref.NewRedisStore(client, opts...)
		checks["redis"] = redis.Healthcheck(client)
	}

	resolver, err := langpref.NewResolver(cfg,
		langpref.WithStore(store, headerSubject(c.SubjectHeader)),
		langpref.WithCookieDomain(c.CookieDomain),
		langpref.WithCookieSecure(c.CookieSecure),
		langpref.WithCookieHTTPOnly(c.CookieHTTPOnly),
		langpref.WithLogger(app.Log),
	)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              c.Addr,
		Handler:           NewRouter(resolver, app.Log, checks),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(app.Log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.Log.Info("server started",
			slog.String("addr", c.Addr),
			slog.String("config", source),
			slog.Any("languages", resolver.Languages()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		app.Log.Info("server shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewRouter assembles the HTTP surface: probes at /healthz and /readyz and
// the language switcher API under /languages.
func NewRouter(resolver *langpref.Resolver, log *slog.Logger, checks health.Checks) http.Handler {
	router := chi.NewRouter()
	router.Use(middlewares.RequestID())
	router.Use(middlewares.Recover(log))

	router.Get("/healthz", health.LivenessHandler())
	router.Get("/readyz", health.ReadinessHandler(checks, health.WithLogger(log)))

	router.Group(func(r chi.Router) {
		r.Use(resolver.Middleware)
		r.Use(accessLog(log))
		r.Mount("/languages", resolver.Routes())
	})
	return router
}

func headerSubject(header string) langpref.SubjectFunc {
	if header == "" {
		return nil
	}
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.DebugContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("took", time.Since(start)),
			)
		})
	}
}
