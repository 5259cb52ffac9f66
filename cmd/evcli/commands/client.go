package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/evclient"
	"github.com/exograd/eventline-go/pkg/eventline"
)

var userAgent = "evcli/dev"

// SetVersion sets the version advertised in the User-Agent header.
func SetVersion(version string) {
	userAgent = "evcli/" + version
}

// ClientConfig resolves the client configuration from flags, environment
// and the configuration file, in that order of precedence.
func ClientConfig(cmd *cobra.Command) (*eventline.Config, error) {
	config, err := evclient.ConfigFromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}

	verbose := viper.GetBool("verbose")

	config.Logger = NewLogger(cmd.ErrOrStderr(), verbose)
	config.Debug = verbose
	config.UserAgent = userAgent

	return config, nil
}

// CreateClient creates an authenticated Eventline client.
func CreateClient(cmd *cobra.Command) (eventline.Client, error) {
	config, err := ClientConfig(cmd)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.APIKey) == "" {
		return nil, constants.ErrNoAPIKey
	}

	return evclient.New(config)
}
