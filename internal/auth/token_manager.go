package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoAPIKey = errors.New("no API key configured")
)

// TokenManager provides the bearer token attached to each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// APIKeyManager serves a static Eventline API key. The key can be replaced at
// runtime, e.g. after a rotation, without rebuilding the client.
type APIKeyManager struct {
	mutex  sync.RWMutex
	apiKey string
}

// NewAPIKeyManager creates a token manager for apiKey. Surrounding whitespace
// is ignored.
func NewAPIKeyManager(apiKey string) *APIKeyManager {
	return &APIKeyManager{apiKey: strings.TrimSpace(apiKey)}
}

// GetToken returns the API key.
func (m *APIKeyManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.apiKey == "" {
		return "", ErrNoAPIKey
	}

	return m.apiKey, nil
}

// SetAPIKey replaces the API key.
func (m *APIKeyManager) SetAPIKey(apiKey string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.apiKey = strings.TrimSpace(apiKey)
}
