package main

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicolagi/todotable"
	log "github.com/sirupsen/logrus"
)

// configEnv names the file to read the configuration from, instead of the one in the home directory.
const configEnv = "TODOTABLE_CONFIG"

// defaultSeed is what the list shows on startup unless configured otherwise.
var defaultSeed = []string{
	"Complete project documentation",
	"Review code changes",
	"Update dependencies",
}

var errUnknownKeys = errors.New("unknown configuration keys")

type config struct {
	// Layout for time.Format, used to show creation dates.
	DateLayout string `toml:"date_layout"`

	// One of the logrus level names.
	LogLevel string `toml:"log_level"`

	// Todos the list starts with. An empty list in the file means starting empty.
	Seed []string `toml:"seed"`

	// If set, each change to the list is appended to this file as one line of JSON.
	WireLog string `toml:"wire_log"`
}

func defaultConfig() config {
	return config{
		DateLayout: todotable.DefaultDateLayout,
		LogLevel:   log.InfoLevel.String(),
		Seed:       append([]string(nil), defaultSeed...),
	}
}

func configPath(home string) string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	return path.Join(home, "lib/todotable/config.toml")
}

// loadConfig reads the configuration file over the defaults. A missing file is not an error, but the returned
// error wraps os.ErrNotExist so the caller can tell.
func loadConfig(pathname string) (config, error) {
	c := defaultConfig()
	md, err := toml.DecodeFile(pathname, &c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), fmt.Errorf("load config: %w", err)
		}
		return defaultConfig(), fmt.Errorf("load config %s: %w", pathname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return defaultConfig(), fmt.Errorf("load config %s: %v: %w", pathname, undecoded, errUnknownKeys)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return defaultConfig(), fmt.Errorf("load config %s: %w", pathname, err)
	}
	if c.DateLayout == "" {
		c.DateLayout = todotable.DefaultDateLayout
	}
	return c, nil
}
