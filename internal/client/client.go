package client

import (
	"strings"

	"github.com/exograd/eventline-go/internal/auth"
	"github.com/exograd/eventline-go/internal/http"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// Client implements the eventline.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	logger       eventline.Logger

	// Resource clients
	accounts      eventline.AccountsClient
	organizations eventline.OrganizationsClient
	projects      eventline.ProjectsClient
}

// createTokenManager returns an API key manager, or nil when no key is
// configured. A blank key counts as no key.
func createTokenManager(config *eventline.Config) auth.TokenManager {
	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return nil
	}

	return auth.NewAPIKeyManager(apiKey)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *eventline.Config) ([]http.Option, error) {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = eventline.DefaultTimeout
	}

	if timeout < 0 {
		return nil, &eventline.ConfigurationError{Field: "timeout", Reason: "must be positive"}
	}

	pins, err := http.NewPinSet(config.PinnedKeys...)
	if err != nil {
		return nil, &eventline.ConfigurationError{Field: "pinned keys", Err: err}
	}

	httpOpts := []http.Option{
		http.WithTimeout(timeout),
		http.WithPinSet(pins),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.ProjectID != "" {
		httpOpts = append(httpOpts, http.WithProjectID(config.ProjectID))
	}

	if config.RootCAs != nil {
		httpOpts = append(httpOpts, http.WithRootCAs(config.RootCAs))
	}

	return httpOpts, nil
}

// New creates a new Eventline API client.
func New(config *eventline.Config) (*Client, error) {
	if config == nil {
		return nil, &eventline.ConfigurationError{Err: eventline.ErrConfigRequired}
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a new Eventline API client with a custom token
// manager. Config.APIKey is ignored.
func NewWithTokenManager(config *eventline.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, &eventline.ConfigurationError{Err: eventline.ErrConfigRequired}
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = eventline.DefaultEndpoint
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient, err := http.NewClient(endpoint, tokenManager, httpOpts...)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		logger:       config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
}

// Accounts implements eventline.Client.Accounts.
func (c *Client) Accounts() eventline.AccountsClient {
	return c.accounts
}

// Organizations implements eventline.Client.Organizations.
func (c *Client) Organizations() eventline.OrganizationsClient {
	return c.organizations
}

// Projects implements eventline.Client.Projects.
func (c *Client) Projects() eventline.ProjectsClient {
	return c.projects
}

// HTTPClient returns the underlying transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Endpoint returns the base URI of the API.
func (c *Client) Endpoint() string {
	return c.httpClient.BaseURI()
}
