package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey           = errors.New("no API key configured, set EVENTLINE_API_KEY or use --api-key")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectRequired     = errors.New("project id or name is required")
)

// Operation errors.
var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrPinMismatch            = errors.New("certificate public key does not match any pinned key")
	ErrNoPeerCertificate      = errors.New("no peer certificate")
)
