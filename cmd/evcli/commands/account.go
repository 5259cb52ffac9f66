package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exograd/eventline-go/pkg/eventline"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the current account",
		Long:  "Show the account owning the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return runAccountCommand(cmd, client)
		},
	}
}

func runAccountCommand(cmd *cobra.Command, client eventline.Client) error {
	account, err := client.Accounts().Get(contextOf(cmd))
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	return Render(cmd, account, accountTable(account))
}

func accountTable(account *eventline.Account) *Table {
	table := &Table{Header: []string{"Property", "Value"}}
	table.AddRow("ID", account.ID)
	table.AddRow("Organization", account.OrgID)
	table.AddRow("Email", account.EmailAddress)
	table.AddRow("Name", formatOptionalString(account.Name))
	table.AddRow("Role", cases.Title(language.English).String(account.Role))
	table.AddRow("Created", formatTime(account.CreationTime))
	table.AddRow("Last login", formatOptionalTime(account.LastLoginTime))
	table.AddRow("Last project", formatOptionalString(account.LastProjectID))
	table.AddRow("Disabled", formatBool(account.Disabled))
	table.AddRow("Date format", formatOptionalString(account.Settings.DateFormat))

	return table
}

// contextOf returns the command context, which cobra leaves nil when the
// command is executed without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
