package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, create, rename and delete Eventline projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsRenameCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		cursor   = eventline.NewCursor()
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runProjectsListCommand(cmd, client, cursor, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&cursor.Size, "size", eventline.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&cursor.After, "after", "", "list projects after this cursor")
	cmd.Flags().StringVar(&cursor.Before, "before", "", "list projects before this cursor")
	cmd.Flags().StringVar(&cursor.Sort, "sort", eventline.DefaultSort, "sort key")
	cmd.Flags().StringVar(&cursor.Order, "order", eventline.OrderAsc, "sort order (asc, desc)")

	return cmd
}

func runProjectsListCommand(cmd *cobra.Command, client eventline.Client, cursor *eventline.Cursor, allPages bool) error {
	ctx := contextOf(cmd)

	if allPages {
		projects, err := eventline.FetchAll(ctx, cursor, client.Projects().List)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		return Render(cmd, projects, projectsTable(projects))
	}

	page, err := client.Projects().List(ctx, cursor)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	err = Render(cmd, page, projectsTable(page.Elements))
	if err != nil {
		return err
	}

	if page.HasNext() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "More projects available, use --after %s or --all\n", page.Next.After)
	}

	return nil
}

func projectsTable(projects []eventline.Project) *Table {
	table := &Table{Header: []string{"ID", "Name", "Organization"}}
	for _, project := range projects {
		table.AddRow(project.ID, project.Name, project.OrgID)
	}

	return table
}

func projectTable(project *eventline.Project) *Table {
	table := &Table{Header: []string{"Property", "Value"}}
	table.AddRow("ID", project.ID)
	table.AddRow("Name", project.Name)
	table.AddRow("Organization", project.OrgID)

	return table
}

func newProjectsGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Show a project",
		Long:  "Show a project by id, or by name with --name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			project, err := resolveProject(cmd, client, args, name)
			if err != nil {
				return err
			}

			return Render(cmd, project, projectTable(project))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")

	return cmd
}

// resolveProject finds the project named by the ID argument or the --name
// flag.
func resolveProject(cmd *cobra.Command, client eventline.Client, args []string, name string) (*eventline.Project, error) {
	ctx := contextOf(cmd)

	switch {
	case len(args) == 1:
		project, err := client.Projects().Get(ctx, args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to get project: %w", err)
		}

		return project, nil
	case name != "":
		project, err := client.Projects().GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get project %q: %w", name, err)
		}

		return project, nil
	default:
		return nil, constants.ErrProjectRequired
	}
}

func newProjectsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runProjectsCreateCommand(cmd, client, args[0])
		},
	}
}

func runProjectsCreateCommand(cmd *cobra.Command, client eventline.Client, name string) error {
	if name == "" {
		return constants.ErrProjectNameRequired
	}

	project, err := client.Projects().Create(contextOf(cmd), &eventline.ProjectCreateRequest{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return Render(cmd, project, projectTable(project))
}

func newProjectsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if args[1] == "" {
				return constants.ErrProjectNameRequired
			}

			project, err := client.Projects().Update(contextOf(cmd), args[0], &eventline.ProjectUpdateRequest{Name: args[1]})
			if err != nil {
				return fmt.Errorf("failed to rename project: %w", err)
			}

			return Render(cmd, project, projectTable(project))
		},
	}
}

func newProjectsDeleteCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "delete [ID]",
		Short: "Delete a project",
		Long:  "Delete a project by id, or by name with --name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runProjectsDeleteCommand(cmd, client, args, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")

	return cmd
}

func runProjectsDeleteCommand(cmd *cobra.Command, client eventline.Client, args []string, name string) error {
	project, err := resolveProject(cmd, client, args, name)
	if err != nil {
		return err
	}

	err = client.Projects().Delete(contextOf(cmd), project.ID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project %s (%s) deleted\n", project.Name, project.ID)

	return nil
}
