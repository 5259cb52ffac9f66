package eventline

import "context"

// AccountsClient gives access to the account of the current credentials.
type AccountsClient interface {
	Get(ctx context.Context) (*Account, error)
}

// OrganizationsClient gives access to the organization of the current
// credentials.
type OrganizationsClient interface {
	Get(ctx context.Context) (*Organization, error)
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	List(ctx context.Context, cursor *Cursor) (*Page[Project], error)
	ListAll(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, id string, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, id string) error
}

// Client is the high level Eventline API client.
type Client interface {
	Accounts() AccountsClient
	Organizations() OrganizationsClient
	Projects() ProjectsClient
}
