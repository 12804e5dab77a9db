// Package middleware provides HTTP middleware for the Folio API.
//
// The middleware package contains reusable components applied to the whole
// router in cmd/server.
//
// # Available Middleware
//
//   - RequestID: attaches a unique X-Request-ID to every request
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a JSON 500 response
//   - CORS: origin allow-listing and preflight handling
//   - Compress: gzip response compression
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
