package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/evclient"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// Config is the content of the configuration file.
type Config struct {
	Endpoint   string   `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	APIKey     string   `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	ProjectID  string   `json:"project_id,omitempty"  yaml:"project_id,omitempty"`
	Timeout    string   `json:"timeout,omitempty"     yaml:"timeout,omitempty"`
	PinnedKeys []string `json:"pinned_keys,omitempty" yaml:"pinned_keys,omitempty"`
}

// ConfigDir returns $HOME/.evcli.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".evcli"), nil
}

// ConfigPath returns the configuration file in use: --config when set,
// $HOME/.evcli/config.yml otherwise.
func ConfigPath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yml"), nil
}

// LoadConfig reads the configuration file at path. A missing file yields an
// empty configuration.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes config to path with owner-only permissions.
func SaveConfig(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Set assigns key, validating the value the way the client would.
func (c *Config) Set(key, value string) error {
	switch key {
	case constants.KeyEndpoint:
		_, err := evclient.New(&eventline.Config{Endpoint: value})
		if err != nil {
			return err
		}

		c.Endpoint = value
	case constants.KeyAPIKey:
		c.APIKey = strings.TrimSpace(value)
	case constants.KeyProjectID:
		c.ProjectID = value
	case constants.KeyTimeout:
		_, err := evclient.ParseTimeout(value)
		if err != nil {
			return err
		}

		c.Timeout = value
	case constants.KeyPinnedKeys:
		keys := strings.Split(value, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}

		_, err := evclient.New(&eventline.Config{PinnedKeys: keys})
		if err != nil {
			return err
		}

		c.PinnedKeys = keys
	default:
		return fmt.Errorf("%w %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// Unset clears key.
func (c *Config) Unset(key string) error {
	switch key {
	case constants.KeyEndpoint:
		c.Endpoint = ""
	case constants.KeyAPIKey:
		c.APIKey = ""
	case constants.KeyProjectID:
		c.ProjectID = ""
	case constants.KeyTimeout:
		c.Timeout = ""
	case constants.KeyPinnedKeys:
		c.PinnedKeys = nil
	default:
		return fmt.Errorf("%w %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// Masked returns a copy of c safe for display.
func (c *Config) Masked() *Config {
	masked := *c
	if masked.APIKey != "" {
		masked.APIKey = constants.MaskedSecret
	}

	return &masked
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the evcli configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ConfigPath()
			if err != nil {
				return err
			}

			_, err = os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s, use 'evcli login' or 'evcli config set'", constants.ErrConfigFileNotFound, path)
			}

			config, err := LoadConfig(path)
			if err != nil {
				return err
			}

			masked := config.Masked()

			table := &Table{Header: []string{"Key", "Value"}}
			table.AddRow(constants.KeyEndpoint, valueOrNA(masked.Endpoint))
			table.AddRow(constants.KeyAPIKey, valueOrNA(masked.APIKey))
			table.AddRow(constants.KeyProjectID, valueOrNA(masked.ProjectID))
			table.AddRow(constants.KeyTimeout, valueOrNA(masked.Timeout))
			table.AddRow(constants.KeyPinnedKeys, valueOrNA(strings.Join(masked.PinnedKeys, ",")))

			return Render(cmd, masked, table)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Keys: endpoint, api_key, project_id, timeout, pinned_keys (comma separated).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(config *Config) error {
				return config.Set(args[0], args[1])
			})
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(config *Config) error {
				return config.Unset(args[0])
			})
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ConfigPath()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
}

func updateConfig(update func(*Config) error) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	err = update(config)
	if err != nil {
		return err
	}

	return SaveConfig(path, config)
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
