// Package handler provides HTTP request handlers for the Folio API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it needs to serve
// requests for a specific feature area (projects, blog posts, health).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - RegisterRoutes attaches method-and-path patterns to a ServeMux
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Resources are written as bare JSON documents. Confirmation-only endpoints
// return a MessageResponse. Errors use WriteError, which encodes a
// model.ProblemDetails with the application/problem+json media type left to
// the caller's status code.
package handler
