// Package middlewares provides net/http middleware for the tlocale server.
//
// # Request ID
//
// RequestID assigns an ID to each request. An ID sent by the client in one
// of the configured headers is reused; otherwise a UUIDv7 is generated.
//
//	router.Use(middlewares.RequestID())
//
// Pair it with RequestIDExtractor so every log record carries request_id:
//
//	log, flush, err := logger.New(cfg, os.Stderr, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover converts a panic into a 500 response and logs it with the stack.
//
//	router.Use(middlewares.Recover(log))
package middlewares
