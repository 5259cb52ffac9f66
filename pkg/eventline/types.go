package eventline

import (
	"crypto/x509"
	"time"
)

// DefaultEndpoint is the public Eventline API endpoint.
const DefaultEndpoint = "https://api.eventline.net/v0"

// DefaultTimeout is the per-call timeout used when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Document is a decoded JSON value: map[string]interface{}, []interface{},
// string, json.Number, bool or nil.
type Document interface{}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an eventline.Client.
//
// # Authentication
//
// APIKey, when set, is sent as a Bearer token on every request. ProjectID,
// when set, scopes project-level calls through the X-Eventline-Project-Id
// header. Both are optional; evclient.NewFromEnvironment fills them from
// EVENTLINE_API_KEY and EVENTLINE_PROJECT_ID.
//
// # Timeouts and retries
//
// Timeout is a single wall-clock budget covering connection, request and
// response body. The client performs exactly one attempt per call.
//
// # TLS
//
// Endpoint must use the https scheme. PinnedKeys lists hex SHA-256
// fingerprints of DER-encoded certificate public keys; when non-empty, a
// connection is accepted only if it passed standard verification and its leaf
// key is in the list.
type Config struct {
	// Endpoint: base URL of the API (e.g., "https://api.eventline.net/v0").
	// DefaultEndpoint is used when empty.
	Endpoint string

	// APIKey: optional API key sent as "Authorization: Bearer <key>".
	APIKey string
	// ProjectID: optional project identifier sent as X-Eventline-Project-Id.
	ProjectID string

	// Timeout: per-call timeout. DefaultTimeout is used when zero.
	Timeout time.Duration
	// PinnedKeys: optional public key fingerprints (hex SHA-256 of the
	// SubjectPublicKeyInfo).
	PinnedKeys []string
	// RootCAs: optional certificate pool replacing the system roots.
	RootCAs *x509.CertPool

	// Debug: enables request logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
