package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

const testFingerprint = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestConfig_Set(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, config.Set(constants.KeyEndpoint, "https://eventline.example.com/v0"))
	require.NoError(t, config.Set(constants.KeyAPIKey, " secret\n"))
	require.NoError(t, config.Set(constants.KeyProjectID, "p1"))
	require.NoError(t, config.Set(constants.KeyTimeout, "15s"))
	require.NoError(t, config.Set(constants.KeyPinnedKeys, testFingerprint+", "+testFingerprint))

	assert.Equal(t, &Config{
		Endpoint:   "https://eventline.example.com/v0",
		APIKey:     "secret",
		ProjectID:  "p1",
		Timeout:    "15s",
		PinnedKeys: []string{testFingerprint, testFingerprint},
	}, config)
}

func TestConfig_SetInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		value string
		err   error
	}{
		{constants.KeyEndpoint, "http://eventline.example.com", eventline.ErrHTTPSRequired},
		{constants.KeyEndpoint, "https://", eventline.ErrNoHostInEndpoint},
		{constants.KeyTimeout, "soon", constants.ErrInvalidTimeout},
		{constants.KeyTimeout, "-1s", constants.ErrInvalidTimeout},
		{constants.KeyPinnedKeys, "abcd", eventline.ErrInvalidFingerprint},
		{"colour", "blue", constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := config.Set(tt.key, tt.value)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, &Config{}, config)
		})
	}
}

func TestConfig_Unset(t *testing.T) {
	t.Parallel()

	config := &Config{
		Endpoint:   "https://eventline.example.com/v0",
		APIKey:     "secret",
		ProjectID:  "p1",
		Timeout:    "15s",
		PinnedKeys: []string{testFingerprint},
	}

	for _, key := range []string{constants.KeyEndpoint, constants.KeyAPIKey, constants.KeyProjectID, constants.KeyTimeout, constants.KeyPinnedKeys} {
		require.NoError(t, config.Unset(key))
	}

	assert.Equal(t, &Config{}, config)
	require.ErrorIs(t, config.Unset("colour"), constants.ErrUnknownConfigKey)
}

func TestConfig_Masked(t *testing.T) {
	t.Parallel()

	config := &Config{APIKey: "secret", ProjectID: "p1"}

	masked := config.Masked()
	assert.Equal(t, constants.MaskedSecret, masked.APIKey)
	assert.Equal(t, "p1", masked.ProjectID)
	assert.Equal(t, "secret", config.APIKey)

	assert.Empty(t, (&Config{}).Masked().APIKey)
}

func TestSaveLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)

	config.APIKey = "secret"
	config.PinnedKeys = []string{testFingerprint}
	require.NoError(t, SaveConfig(path, config))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "api_key: secret\npinned_keys:\n    - "+testFingerprint+"\n", string(data))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unterminated"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestConfigPath(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("config", "/tmp/evcli.yml")

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/evcli.yml", path)

	viper.Set("config", "")

	path, err = ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yml", filepath.Base(path))
	assert.Equal(t, ".evcli", filepath.Base(filepath.Dir(path)))
}
