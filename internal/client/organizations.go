package client

import (
	"context"
	"fmt"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/internal/http"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// OrganizationsClient implements eventline.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// Get implements eventline.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context) (*eventline.Organization, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathOrg, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	org, err := eventline.DecodeObject[eventline.Organization](resp.Document)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	return org, nil
}
