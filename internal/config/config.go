package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
	Log LogConfig
}

// APIConfig holds the demo REST endpoint settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds the initial values of the TUI stores and route.
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	Language   string `mapstructure:"language"`
	StartRoute string `mapstructure:"start_route"`
	LoginName  string `mapstructure:"login_name"`
}

// LogConfig holds logger settings. Path is used by interactive runs only.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// STATELAB_. An explicit path wins over $STATELAB_CONFIG, which wins over
// ~/.config/statelab/config.toml. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("api.base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.language", "")
	v.SetDefault("ui.start_route", "/")
	v.SetDefault("ui.login_name", "Ratnesh Singh")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "statelab", "statelab.log"))

	v.SetConfigType("toml")

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = os.Getenv("STATELAB_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "statelab"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STATELAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Language == "" {
		c.UI.Language = os.Getenv("LANG")
	}
	return c, nil
}
