package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/internal/http"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// ProjectsClient implements eventline.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

func projectIDPath(id string) string {
	return constants.APIPathProjects + "/id/" + url.PathEscape(id)
}

func projectNamePath(name string) string {
	return constants.APIPathProjects + "/name/" + url.PathEscape(name)
}

// List implements eventline.ProjectsClient.List. A nil cursor lets the
// server apply its defaults.
func (c *ProjectsClient) List(ctx context.Context, cursor *eventline.Cursor) (*eventline.Page[eventline.Project], error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathProjects, cursor.Values())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	page, err := eventline.DecodePage[eventline.Project](resp.Document)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return page, nil
}

// ListAll implements eventline.ProjectsClient.ListAll.
func (c *ProjectsClient) ListAll(ctx context.Context) ([]eventline.Project, error) {
	return eventline.FetchAll(ctx, nil, c.List)
}

// Get implements eventline.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*eventline.Project, error) {
	if id == "" {
		return nil, eventline.ErrProjectIDRequired
	}

	resp, err := c.httpClient.Get(ctx, projectIDPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return parseProject(resp)
}

// GetByName implements eventline.ProjectsClient.GetByName.
func (c *ProjectsClient) GetByName(ctx context.Context, name string) (*eventline.Project, error) {
	if name == "" {
		return nil, eventline.ErrProjectNameEmpty
	}

	resp, err := c.httpClient.Get(ctx, projectNamePath(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project by name: %w", err)
	}

	return parseProject(resp)
}

// Create implements eventline.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *eventline.ProjectCreateRequest) (*eventline.Project, error) {
	if request == nil || request.Name == "" {
		return nil, eventline.ErrProjectNameEmpty
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathProjects, request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return parseProject(resp)
}

// Update implements eventline.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, id string, request *eventline.ProjectUpdateRequest) (*eventline.Project, error) {
	if id == "" {
		return nil, eventline.ErrProjectIDRequired
	}

	if request == nil || request.Name == "" {
		return nil, eventline.ErrProjectNameEmpty
	}

	resp, err := c.httpClient.Put(ctx, projectIDPath(id), request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return parseProject(resp)
}

// Delete implements eventline.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return eventline.ErrProjectIDRequired
	}

	_, err := c.httpClient.Delete(ctx, projectIDPath(id))
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

func parseProject(resp *http.Response) (*eventline.Project, error) {
	project, err := eventline.DecodeObject[eventline.Project](resp.Document)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return project, nil
}
