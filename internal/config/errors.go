package config

import "errors"

// ErrInvalidStorageConfigs is returned by validation when no database DSN is
// configured; the server cannot start without its persistence backend.
var ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")
