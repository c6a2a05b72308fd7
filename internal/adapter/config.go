package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAdminEmail is the address that is granted the administrator role
const DefaultAdminEmail = "admin@kutubxona.uz"

// Config holds all application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Auth    AuthConfig    `mapstructure:"auth"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig holds the persisted preference store location
type DataConfig struct {
	Path string `mapstructure:"path"` // Empty = memory-only
}

// CatalogConfig holds the mock book source settings
type CatalogConfig struct {
	SeedFile    string        `mapstructure:"seed_file"`    // YAML catalog; empty = built-in
	LoadLatency time.Duration `mapstructure:"load_latency"` // Simulated fetch delay
}

// AuthConfig holds the mock authenticator settings
type AuthConfig struct {
	AdminEmail string        `mapstructure:"admin_email"`
	Latency    time.Duration `mapstructure:"latency"`
}

// UIConfig holds display configuration
type UIConfig struct {
	DarkMode bool `mapstructure:"dark_mode"` // Used until a preference is saved
	Spinner  bool `mapstructure:"spinner"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: filepath.Join(defaultDataPath(), "kutubxona.db"),
		},
		Catalog: CatalogConfig{
			LoadLatency: time.Second,
		},
		Auth: AuthConfig{
			AdminEmail: DefaultAdminEmail,
		},
		UI: UIConfig{
			DarkMode: false,
			Spinner:  true,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "kutubxona.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "kutubxona")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "kutubxona")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "kutubxona")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "kutubxona")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile loads configuration from path, or from the default
// locations when path is empty. A missing default file is not an error;
// a missing explicit file is.
func LoadConfigFile(path string) (*Config, error) {
	// .env never overrides variables already set in the environment
	_ = godotenv.Load(".env")

	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: KUTUBXONA_DATA_PATH, KUTUBXONA_UI_DARK_MODE, ...
	v.SetEnvPrefix("KUTUBXONA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Auth.AdminEmail == "" {
		cfg.Auth.AdminEmail = DefaultAdminEmail
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("data.path", cfg.Data.Path)
	v.SetDefault("catalog.seed_file", cfg.Catalog.SeedFile)
	v.SetDefault("catalog.load_latency", cfg.Catalog.LoadLatency)
	v.SetDefault("auth.admin_email", cfg.Auth.AdminEmail)
	v.SetDefault("auth.latency", cfg.Auth.Latency)
	v.SetDefault("ui.dark_mode", cfg.UI.DarkMode)
	v.SetDefault("ui.spinner", cfg.UI.Spinner)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// SaveConfig writes cfg to the default config file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return writeConfig(cfg, filepath.Join(configPath, "config.yaml"))
}

func writeConfig(cfg *Config, configFile string) error {
	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("data.path", cfg.Data.Path)
	v.Set("catalog.seed_file", cfg.Catalog.SeedFile)
	v.Set("catalog.load_latency", cfg.Catalog.LoadLatency.String())
	v.Set("auth.admin_email", cfg.Auth.AdminEmail)
	v.Set("auth.latency", cfg.Auth.Latency.String())
	v.Set("ui.dark_mode", cfg.UI.DarkMode)
	v.Set("ui.spinner", cfg.UI.Spinner)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigFilePath returns the path SaveConfig writes to
func ConfigFilePath() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}
