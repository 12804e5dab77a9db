// Package config manages application configuration for the Folio API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//
// # Validation
//
// Validate reports every missing or invalid value at once via errors.Join,
// so a misconfigured deployment fails fast with a complete list.
package config
