// Package health serves liveness and readiness probes for the tlocale server.
//
// Readiness runs every named check concurrently under a shared timeout and
// reports 503 when any of them fails:
//
//	router.Get("/healthz", health.LivenessHandler())
//	router.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "redis": func(ctx context.Context) error { return client.Ping(ctx).Err() },
//	}))
package health
