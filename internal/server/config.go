package server

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Every field has a default so the
// server runs with no config file at all; a YAML file and PULSEMAP_*
// environment variables can override any of them.
type Config struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"logLevel"`

	Capacity int `mapstructure:"capacity"`

	SnapshotPath     string        `mapstructure:"snapshotPath"`
	SnapshotInterval time.Duration `mapstructure:"snapshotInterval"`

	DatabasePath string `mapstructure:"databasePath"`

	GeocodeEnabled bool          `mapstructure:"geocodeEnabled"`
	GeocodeTimeout time.Duration `mapstructure:"geocodeTimeout"`

	AgentEnabled     bool          `mapstructure:"agentEnabled"`
	AgentMinInterval time.Duration `mapstructure:"agentMinInterval"`
	AgentMaxInterval time.Duration `mapstructure:"agentMaxInterval"`

	SeedOnEmpty bool `mapstructure:"seedOnEmpty"`
}

// LoadConfig reads configuration with defaults, then the optional file at
// path, then the environment. A missing file is fine; a malformed one is not.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":3000")
	v.SetDefault("logLevel", "info")
	v.SetDefault("capacity", 0) // 0 means the engine default
	v.SetDefault("snapshotPath", "data/gameState.json")
	v.SetDefault("snapshotInterval", 30*time.Second)
	v.SetDefault("databasePath", "data/pulsemap.db")
	v.SetDefault("geocodeEnabled", false)
	v.SetDefault("geocodeTimeout", 5*time.Second)
	v.SetDefault("agentEnabled", true)
	v.SetDefault("agentMinInterval", 8*time.Second)
	v.SetDefault("agentMaxInterval", 15*time.Second)
	v.SetDefault("seedOnEmpty", true)

	v.SetEnvPrefix("PULSEMAP")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %q: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.AgentMaxInterval < cfg.AgentMinInterval {
		cfg.AgentMaxInterval = cfg.AgentMinInterval
	}
	return cfg, nil
}
