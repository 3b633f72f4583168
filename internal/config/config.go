package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/mtbdata/mtb-results/internal/logger"
)

const defaultBaseURL = "https://ucimtbworldseries.com"

// Config holds all scraper settings. Values come from a YAML config file
// when one is found, with defaults covering every field otherwise.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Render         RenderConfig  `mapstructure:"render"`
	Logging        logger.Config `mapstructure:"logging"`
	OutputDir      string        `mapstructure:"output_dir"`
}

// RenderConfig controls the headless-browser path.
type RenderConfig struct {
	Headless bool          `mapstructure:"headless"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from path, or from the default search locations
// when path is empty. A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mtb-results"))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("render.headless", true)
	v.SetDefault("render.timeout", 20*time.Second)
	v.SetDefault("output_dir", "./data")

	defaults := logger.DefaultConfig()
	v.SetDefault("logging.level", defaults.Level)
	v.SetDefault("logging.dir", defaults.Dir)
	v.SetDefault("logging.max_size_mb", defaults.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.MaxBackups)
	v.SetDefault("logging.max_age_days", defaults.MaxAgeDays)
}

// EventsURL returns the events index URL for a season year.
func (c *Config) EventsURL(year int) string {
	return fmt.Sprintf("%s/results/events?year=%d", c.BaseURL, year)
}
