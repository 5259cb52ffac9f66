package client

import (
	"crypto/x509"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exograd/eventline-go/pkg/eventline"
)

// NewTestClient creates a client talking to server, which must be a TLS
// test server. The API lives under /v0 as on the public endpoint.
func NewTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := New(&eventline.Config{
		Endpoint:  server.URL + "/v0",
		APIKey:    "test-key",
		ProjectID: "p1",
		RootCAs:   serverPool(server),
	})
	require.NoError(t, err)

	return client
}

func serverPool(server *httptest.Server) *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())

	return pool
}

// writeJSON writes value as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeError writes an Eventline error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": message, "code": code})
}
