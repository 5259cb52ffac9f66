package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exograd/eventline-go/pkg/eventline"
)

// NewOrgCommand creates the organization command.
func NewOrgCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "org",
		Aliases: []string{"organization"},
		Short:   "Show the current organization",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runOrgCommand(cmd, client)
		},
	}
}

func runOrgCommand(cmd *cobra.Command, client eventline.Client) error {
	org, err := client.Organizations().Get(contextOf(cmd))
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	table := &Table{Header: []string{"Property", "Value"}}
	table.AddRow("ID", org.ID)
	table.AddRow("Name", org.Name)
	table.AddRow("Address", org.Address)
	table.AddRow("Postal code", org.PostalCode)
	table.AddRow("City", org.City)
	table.AddRow("Country", org.Country)
	table.AddRow("Contact", org.ContactEmailAddress)
	table.AddRow("VAT id", formatOptionalString(org.VATIDNumber))
	table.AddRow("Created", formatTime(org.CreationTime))
	table.AddRow("Disabled", formatBool(org.Disabled))

	return Render(cmd, org, table)
}
