// Package redis opens go-redis clients for the preference store.
//
// Pool and timeout settings come from the environment (REDIS_POOL_SIZE,
// REDIS_DIAL_TIMEOUT, ...) so deployments can tune them without flags:
//
//	cfg, err := redis.ConfigFromEnv()
//	cfg.URL = "redis://localhost:6379/0"
//	client, err := redis.Open(ctx, cfg)
//	defer client.Close()
//
// Open pings the server and retries with a linearly growing wait, so a
// server that starts alongside the process is tolerated.
package redis
