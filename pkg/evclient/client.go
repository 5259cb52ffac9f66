package evclient

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/exograd/eventline-go/internal/client"
	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// New creates a new Eventline API client.
func New(config *eventline.Config) (eventline.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithAPIKey creates a client for endpoint authenticated with apiKey. An
// empty endpoint selects eventline.DefaultEndpoint.
func NewWithAPIKey(endpoint, apiKey string) (eventline.Client, error) {
	return New(&eventline.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
	})
}

// NewFromEnvironment creates a client configured from EVENTLINE_* environment
// variables.
func NewFromEnvironment() (eventline.Client, error) {
	config, err := ConfigFromEnvironment()
	if err != nil {
		return nil, err
	}

	return New(config)
}

// ConfigFromEnvironment reads EVENTLINE_ENDPOINT, EVENTLINE_API_KEY,
// EVENTLINE_PROJECT_ID, EVENTLINE_TIMEOUT and EVENTLINE_PINNED_KEYS.
func ConfigFromEnvironment() (*eventline.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(constants.KeyEndpoint, eventline.DefaultEndpoint)

	return ConfigFromViper(v)
}

// ConfigFromViper builds a configuration from the endpoint, api_key,
// project_id, timeout and pinned_keys keys of v.
func ConfigFromViper(v *viper.Viper) (*eventline.Config, error) {
	timeout, err := ParseTimeout(v.GetString(constants.KeyTimeout))
	if err != nil {
		return nil, &eventline.ConfigurationError{Field: constants.KeyTimeout, Err: err}
	}

	return &eventline.Config{
		Endpoint:   v.GetString(constants.KeyEndpoint),
		APIKey:     v.GetString(constants.KeyAPIKey),
		ProjectID:  v.GetString(constants.KeyProjectID),
		Timeout:    timeout,
		PinnedKeys: splitList(v.GetStringSlice(constants.KeyPinnedKeys)),
	}, nil
}

// ParseTimeout accepts a Go duration ("15s") or a number of seconds ("2.5").
// An empty value yields zero, i.e. the default timeout.
func ParseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		seconds, floatErr := strconv.ParseFloat(value, 64)
		if floatErr != nil {
			return 0, fmt.Errorf("%w %q", constants.ErrInvalidTimeout, value)
		}

		timeout = time.Duration(seconds * float64(time.Second))
	}

	if timeout <= 0 {
		return 0, fmt.Errorf("%w %q", constants.ErrInvalidTimeout, value)
	}

	return timeout, nil
}

// splitList flattens values which may themselves be comma separated, as
// environment variables are.
func splitList(values []string) []string {
	var items []string

	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
	}

	return items
}
