package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicolagi/todotable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	pathname := filepath.Join(t.TempDir(), "config.toml")
	require.Nil(t, os.WriteFile(pathname, []byte(content), 0600))
	return pathname
}

func TestLoadConfigMissing(t *testing.T) {
	c, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, defaultConfig(), c)
	assert.Equal(t, defaultSeed, c.Seed)
	assert.Equal(t, todotable.DefaultDateLayout, c.DateLayout)
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		content  string
		expected config
	}{
		{
			content:  "",
			expected: defaultConfig(),
		},
		{
			content: `date_layout = "2006-01-02"
log_level = "debug"
seed = ["one", "two"]
wire_log = "/tmp/wire.log"
`,
			expected: config{
				DateLayout: "2006-01-02",
				LogLevel:   "debug",
				Seed:       []string{"one", "two"},
				WireLog:    "/tmp/wire.log",
			},
		},
		{
			content: "seed = []\n",
			expected: config{
				DateLayout: todotable.DefaultDateLayout,
				LogLevel:   "info",
				Seed:       []string{},
			},
		},
		{
			content:  `date_layout = ""`,
			expected: defaultConfig(),
		},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			c, err := loadConfig(writeConfig(t, tc.content))
			require.Nil(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `colour = "blue"`))
	assert.True(t, errors.Is(err, errUnknownKeys))

	_, err = loadConfig(writeConfig(t, `log_level = "loud"`))
	assert.NotNil(t, err)

	_, err = loadConfig(writeConfig(t, `seed = "not a list"`))
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestConfigPath(t *testing.T) {
	t.Setenv(configEnv, "")
	assert.Equal(t, "/home/glenda/lib/todotable/config.toml", configPath("/home/glenda"))
	t.Setenv(configEnv, "/elsewhere/todotable.toml")
	assert.Equal(t, "/elsewhere/todotable.toml", configPath("/home/glenda"))
}
