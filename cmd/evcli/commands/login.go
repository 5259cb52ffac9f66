package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/evclient"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long: `Verify an API key against the API and store it in the configuration file.

The key is taken from --api-key or EVENTLINE_API_KEY, and prompted for when
neither is set and the standard input is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := ClientConfig(cmd)
			if err != nil {
				return err
			}

			if config.APIKey == "" {
				config.APIKey, err = promptAPIKey(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			client, err := evclient.New(config)
			if err != nil {
				return err
			}

			path, err := ConfigPath()
			if err != nil {
				return err
			}

			return runLoginCommand(cmd, client, config, path)
		},
	}
}

func runLoginCommand(cmd *cobra.Command, client eventline.Client, config *eventline.Config, path string) error {
	account, err := client.Accounts().Get(contextOf(cmd))
	if err != nil {
		return fmt.Errorf("failed to verify API key: %w", err)
	}

	stored, err := LoadConfig(path)
	if err != nil {
		return err
	}

	stored.APIKey = config.APIKey

	if config.Endpoint != eventline.DefaultEndpoint {
		stored.Endpoint = config.Endpoint
	}

	if config.ProjectID != "" {
		stored.ProjectID = config.ProjectID
	}

	err = SaveConfig(path, stored)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", account.EmailAddress)

	return nil
}

func promptAPIKey(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrNoAPIKey
	}

	_, _ = fmt.Fprint(prompt, "API key: ")

	key, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(key))
	if apiKey == "" {
		return "", constants.ErrNoAPIKey
	}

	return apiKey, nil
}
