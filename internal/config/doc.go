// Package config manages application configuration for the Arena bot.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: interaction endpoint settings (port, timeouts)
//   - DatabaseConfig: SurrealDB connection settings
//   - PlatformConfig: chat platform API base URL and bot token
//
// Validate collects every problem at once with errors.Join, so a broken
// deployment reports all missing variables in a single run.
package config
