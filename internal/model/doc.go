// Package model defines the domain types for the Folio API.
//
// Each entity (Project, BlogPost) is an independent, self-contained document;
// there are no cross-entity references. Request types carry their own
// Validate methods returning a []FieldError, so invalid input can be reported
// per field before any store call is made.
//
// The package also defines the RFC 9457 ProblemDetails error taxonomy shared
// by all handlers.
package model
