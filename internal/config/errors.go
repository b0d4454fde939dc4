package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown run mode).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAPIConfigs indicates invalid API client settings
	// (for example, a malformed base URL override or a negative timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServerConfigs indicates invalid shell server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProxyConfigs indicates an invalid dev proxy rule
	// (for example, a prefix without a leading slash or a target without
	// scheme and host).
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
)
