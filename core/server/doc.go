// Package server builds the HTTP application.
//
// While features register their own routes, this package owns the shared
// middleware stack and the server settings derived from the configuration.
//
// # CORS
//
// The policy follows the configured origins: a non-empty list allows those
// origins only; an empty list is permissive in development and disables
// cross-origin access in production.
//
// # Errors
//
// Responses are plain text. Unexpected errors are logged with the request's
// ray id and answered with a generic 500 body; no internal detail is sent.
//
// # Endpoints
//
//   - GET /health : liveness probe.
//   - GET /metrics : Prometheus metrics (when enabled).
//   - GET /swagger/* : API documentation.
package server
