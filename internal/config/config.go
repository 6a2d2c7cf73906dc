package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the hosted document store used when none is configured
const DefaultEndpoint = "https://cloud.appwrite.io/v1"

// Route names a tab of the application
type Route string

const (
	RouteHome    Route = "home"
	RouteProgram Route = "program"
	RouteProfile Route = "profile"
	RouteContact Route = "contact"
)

// Routes lists all tabs in display order
var Routes = []Route{RouteHome, RouteProgram, RouteProfile, RouteContact}

// Valid reports whether r names a known tab
func (r Route) Valid() bool {
	for _, known := range Routes {
		if r == known {
			return true
		}
	}
	return false
}

// Config holds all application configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Opener  OpenerConfig  `mapstructure:"opener"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig addresses the hosted document store
type BackendConfig struct {
	Endpoint              string        `mapstructure:"endpoint"`               // e.g. https://cloud.appwrite.io/v1
	Project               string        `mapstructure:"project"`                // Project ID
	APIKey                string        `mapstructure:"api_key"`                // Optional server key
	Database              string        `mapstructure:"database"`               // Database ID
	ProgramsCollection    string        `mapstructure:"programs_collection"`    // Programs collection ID
	SubscribersCollection string        `mapstructure:"subscribers_collection"` // Newsletter collection ID
	MessagesCollection    string        `mapstructure:"messages_collection"`    // Contact messages, empty disables sending
	Timeout               time.Duration `mapstructure:"timeout"`                // 0 = store default
}

// UIConfig holds UI configuration
type UIConfig struct {
	StartRoute     Route         `mapstructure:"start_route"`
	SplashDuration time.Duration `mapstructure:"splash_duration"`
	ShakeInterval  time.Duration `mapstructure:"shake_interval"`
}

// CacheConfig holds local cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// OpenerConfig selects the command used to open links
type OpenerConfig struct {
	Command string   `mapstructure:"command"` // empty for system default
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Endpoint:              DefaultEndpoint,
			ProgramsCollection:    "213",
			SubscribersCollection: "564",
		},
		UI: UIConfig{
			StartRoute:     RouteProfile,
			SplashDuration: 5 * time.Second,
			ShakeInterval:  5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCachePath(),
		},
		Opener: OpenerConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "revenland", "revenland.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "revenland", "revenland.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "revenland")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "revenland")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "revenland", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "revenland", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return load(viper.GetViper(), defaultConfigPath())
}

// load reads config from dir (and the working directory) into the defaults
func load(v *viper.Viper, dir string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	// Environment variable overrides, e.g. REVENLAND_BACKEND_PROJECT
	v.SetEnvPrefix("REVENLAND")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if !cfg.UI.StartRoute.Valid() {
		cfg.UI.StartRoute = RouteProfile
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return save(viper.GetViper(), cfg, defaultConfigPath())
}

func save(v *viper.Viper, cfg *Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("backend.endpoint", cfg.Backend.Endpoint)
	v.Set("backend.project", cfg.Backend.Project)
	v.Set("backend.api_key", cfg.Backend.APIKey)
	v.Set("backend.database", cfg.Backend.Database)
	v.Set("backend.programs_collection", cfg.Backend.ProgramsCollection)
	v.Set("backend.subscribers_collection", cfg.Backend.SubscribersCollection)
	v.Set("backend.messages_collection", cfg.Backend.MessagesCollection)
	v.Set("backend.timeout", cfg.Backend.Timeout.String())

	v.Set("ui.start_route", string(cfg.UI.StartRoute))
	v.Set("ui.splash_duration", cfg.UI.SplashDuration.String())
	v.Set("ui.shake_interval", cfg.UI.ShakeInterval.String())

	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.dir", cfg.Cache.Dir)

	v.Set("opener.command", cfg.Opener.Command)
	v.Set("opener.args", cfg.Opener.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearBackendConfig removes the backend addressing (endpoint, project, IDs)
// while preserving other settings (UI, cache, opener, logging)
func ClearBackendConfig() error {
	v := viper.GetViper()
	for _, k := range backendKeys {
		v.Set(k, "")
	}

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearCache removes all cached data
func ClearCache(dir string) error {
	if dir == "" {
		dir = defaultCachePath()
	}
	if err := os.RemoveAll(dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// IsConfigured returns true if the store can be addressed
func (c *Config) IsConfigured() bool {
	b := c.Backend
	return b.Endpoint != "" && b.Project != "" && b.Database != "" &&
		b.ProgramsCollection != "" && b.SubscribersCollection != ""
}
