package client

import (
	"context"
	"fmt"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/internal/http"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// AccountsClient implements eventline.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Get implements eventline.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context) (*eventline.Account, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathAccount, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	account, err := eventline.DecodeObject[eventline.Account](resp.Document)
	if err != nil {
		return nil, fmt.Errorf("parsing account: %w", err)
	}

	return account, nil
}
