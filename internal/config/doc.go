// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins semantics (env > flags > JSON),
// then zero-valued fields receive defaults and the result is validated.
// The returned configuration is immutable for the lifetime of the process:
// in particular the token signing secret is fixed at startup, and rotating
// it requires a restart, which invalidates all outstanding tokens.
package config
