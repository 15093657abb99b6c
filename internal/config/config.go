package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the CLI and TUI need.
type Config struct {
	DataFile string
	Theme    string
	User     string
	Page     PageConfig
	Log      LogConfig
}

// PageConfig is the metadata the interactive page shows in its header.
type PageConfig struct {
	Title       string
	Description string
}

type LogConfig struct {
	Level string
	File  string // empty means stderr
}

const envPrefix = "TRAVELLOG"

// Load reads travellog.yaml (from file, or searched in . and ~/.travellog),
// then applies TRAVELLOG_* environment overrides.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("travellog")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".travellog"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DataFile: v.GetString("data_file"),
		Theme:    v.GetString("theme"),
		User:     v.GetString("user"),
		Page: PageConfig{
			Title:       v.GetString("page.title"),
			Description: v.GetString("page.description"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}
	if strings.TrimSpace(cfg.User) == "" {
		cfg.User = defaultUser()
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", "")
	v.SetDefault("theme", "classic")
	v.SetDefault("user", "")
	v.SetDefault("page.title", "New travel log")
	v.SetDefault("page.description", "Plan the trip: tick things off as you go.")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

func defaultUser() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if u := strings.TrimSpace(os.Getenv(k)); u != "" {
			return u
		}
	}
	return "traveller"
}
