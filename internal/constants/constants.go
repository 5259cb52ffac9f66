package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// TLSHandshakeTimeout bounds the TLS handshake of a new connection.
	TLSHandshakeTimeout = 10 * time.Second

	// IdleConnTimeout is how long an idle pooled connection is kept.
	IdleConnTimeout = 90 * time.Second
)

// Connection pool limits.
const (
	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns = 100

	// MaxIdleConnsPerHost is the maximum number of idle connections per host.
	MaxIdleConnsPerHost = 10
)

// HTTP headers and media types.
const (
	// HeaderAuthorization carries the bearer API key.
	HeaderAuthorization = "Authorization"

	// HeaderProjectID scopes a call to a project.
	HeaderProjectID = "X-Eventline-Project-Id"

	// HeaderContentType is the request/response body media type header.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the accepted response media type header.
	HeaderAccept = "Accept"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// MediaTypeJSON is the only body format understood by the client.
	MediaTypeJSON = "application/json"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "eventline-go/0.1"
)

// Environment variables.
const (
	// EnvPrefix is the viper environment prefix.
	EnvPrefix = "EVENTLINE"

	// KeyEndpoint is the configuration key of the API endpoint.
	KeyEndpoint = "endpoint"

	// KeyAPIKey is the configuration key of the API key.
	KeyAPIKey = "api_key"

	// KeyProjectID is the configuration key of the project id.
	KeyProjectID = "project_id"

	// KeyTimeout is the configuration key of the per-call timeout.
	KeyTimeout = "timeout"

	// KeyPinnedKeys is the configuration key of the comma separated public
	// key fingerprints.
	KeyPinnedKeys = "pinned_keys"
)

// API paths.
const (
	// APIPathAccount is the account of the current credentials.
	APIPathAccount = "/account"

	// APIPathOrg is the organization of the current credentials.
	APIPathOrg = "/org"

	// APIPathProjects is the project collection.
	APIPathProjects = "/projects"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
