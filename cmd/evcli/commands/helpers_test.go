package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exograd/eventline-go/pkg/eventline"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// newTestCommand returns a command writing to buffers, with the output format
// forced to format.
func newTestCommand(t *testing.T, format string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	viper.Set("output", format)
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())

	return cmd, &stdout, &stderr
}

type fakeClient struct {
	accounts      *fakeAccounts
	organizations *fakeOrganizations
	projects      *fakeProjects
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		accounts:      &fakeAccounts{},
		organizations: &fakeOrganizations{},
		projects:      &fakeProjects{},
	}
}

func (c *fakeClient) Accounts() eventline.AccountsClient           { return c.accounts }
func (c *fakeClient) Organizations() eventline.OrganizationsClient { return c.organizations }
func (c *fakeClient) Projects() eventline.ProjectsClient           { return c.projects }

type fakeAccounts struct {
	account *eventline.Account
	err     error
}

func (f *fakeAccounts) Get(context.Context) (*eventline.Account, error) {
	return f.account, f.err
}

type fakeOrganizations struct {
	org *eventline.Organization
	err error
}

func (f *fakeOrganizations) Get(context.Context) (*eventline.Organization, error) {
	return f.org, f.err
}

// fakeProjects pages through projects with "after" cursors.
type fakeProjects struct {
	projects []eventline.Project
	deleted  []string
	err      error
}

func (f *fakeProjects) List(_ context.Context, cursor *eventline.Cursor) (*eventline.Page[eventline.Project], error) {
	if f.err != nil {
		return nil, f.err
	}

	start := 0

	if cursor.After != "" {
		for i, p := range f.projects {
			if p.ID == cursor.After {
				start = i + 1
			}
		}
	}

	end := min(start+cursor.Size, len(f.projects))

	page := &eventline.Page[eventline.Project]{Elements: f.projects[start:end]}
	if end < len(f.projects) {
		page.Next = &eventline.Cursor{After: f.projects[end-1].ID, Size: cursor.Size}
	}

	return page, nil
}

func (f *fakeProjects) ListAll(ctx context.Context) ([]eventline.Project, error) {
	return eventline.FetchAll(ctx, nil, f.List)
}

func (f *fakeProjects) Get(_ context.Context, id string) (*eventline.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, &eventline.TransportError{Kind: eventline.KindAPIError, StatusCode: 404, Message: "unknown project"}
}

func (f *fakeProjects) GetByName(_ context.Context, name string) (*eventline.Project, error) {
	for _, p := range f.projects {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, &eventline.TransportError{Kind: eventline.KindAPIError, StatusCode: 404, Message: "unknown project"}
}

func (f *fakeProjects) Create(_ context.Context, request *eventline.ProjectCreateRequest) (*eventline.Project, error) {
	project := eventline.Project{ID: "new", OrgID: "o1", Name: request.Name}
	f.projects = append(f.projects, project)

	return &project, nil
}

func (f *fakeProjects) Update(_ context.Context, id string, request *eventline.ProjectUpdateRequest) (*eventline.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects[i].Name = request.Name

			return &f.projects[i], nil
		}
	}

	return nil, &eventline.TransportError{Kind: eventline.KindAPIError, StatusCode: 404}
}

func (f *fakeProjects) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}
