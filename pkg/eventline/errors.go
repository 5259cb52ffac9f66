package eventline

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels matched by the typed errors below with errors.Is.
var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrNetworkFailure    = errors.New("network failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrAPI               = errors.New("API error")
	ErrInvalidObject     = errors.New("invalid object")
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrHTTPSRequired      = errors.New("endpoint scheme must be https")
	ErrNoHostInEndpoint   = errors.New("no host specified in endpoint")
	ErrInvalidFingerprint = errors.New("invalid public key fingerprint")
	ErrPaginationLoop     = errors.New("pagination cursor repeated")
	ErrProjectIDRequired  = errors.New("project id is required")
	ErrProjectNameEmpty   = errors.New("project name is required")
)

// ConfigurationError is returned when a client cannot be built from its
// configuration, or when a request cannot be built from its arguments or
// credentials. It is always raised before any network activity.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := "invalid configuration"
	if e.Field != "" {
		msg += ": " + e.Field
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ErrorKind classifies a TransportError.
type ErrorKind int

// Transport error kinds.
const (
	KindNetworkFailure ErrorKind = iota + 1
	KindMalformedResponse
	KindAPIError
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetworkFailure:
		return "network failure"
	case KindMalformedResponse:
		return "malformed response"
	case KindAPIError:
		return "API error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TransportError is the single error type returned by the transport layer.
//
// StatusCode is zero for network failures. Code and Message are only set for
// API errors; Code is empty when the server did not send a structured error
// document.
type TransportError struct {
	Kind       ErrorKind
	Method     string
	URI        string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	switch e.Kind {
	case KindAPIError:
		msg := fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.URI, e.StatusCode)
		if e.Message != "" {
			msg += ": " + e.Message
		}

		if e.Code != "" {
			msg += " (code: " + e.Code + ")"
		}

		return msg
	default:
		msg := fmt.Sprintf("%s %s: %s", e.Method, e.URI, e.Kind)
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}

		return msg
	}
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error kind.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrNetworkFailure:
		return e.Kind == KindNetworkFailure
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	case ErrAPI:
		return e.Kind == KindAPIError
	}

	return false
}

// AsAPIError returns the API error carried by err, if any.
func AsAPIError(err error) (*TransportError, bool) {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) && transportErr.Kind == KindAPIError {
		return transportErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == status
}

// FieldErrorKind identifies the violation reported by an InvalidObjectError.
type FieldErrorKind int

// Field violations.
const (
	MissingField FieldErrorKind = iota + 1
	WrongType
	InvalidFormat
	ArrayElementNotObject
)

func (k FieldErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case WrongType:
		return "wrong type"
	case InvalidFormat:
		return "invalid format"
	case ArrayElementNotObject:
		return "array element not object"
	default:
		return fmt.Sprintf("FieldErrorKind(%d)", int(k))
	}
}

// InvalidObjectError is returned when a document does not match the schema
// of the object being decoded.
//
// Expected is the JSON kind the field should have had ("string", "integer",
// "boolean", "object", "array"). Index is the offending element for
// ArrayElementNotObject and -1 otherwise. Value is the raw offending value.
type InvalidObjectError struct {
	ObjectName string
	Kind       FieldErrorKind
	Field      string
	Expected   string
	Index      int
	Value      interface{}
	Reason     string
	Err        error
}

// Error implements the error interface.
func (e *InvalidObjectError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.ObjectName, e.Reason)
}

// Unwrap returns the underlying cause, such as a time parsing error.
func (e *InvalidObjectError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidObject.
func (e *InvalidObjectError) Is(target error) bool {
	return target == ErrInvalidObject
}
