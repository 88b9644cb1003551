package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ScreenName identifies a catalog screen
type ScreenName string

const (
	ScreenCocktails ScreenName = "cocktails"
	ScreenMeals     ScreenName = "meals"
)

// Valid reports whether s names a known screen
func (s ScreenName) Valid() bool {
	return s == ScreenCocktails || s == ScreenMeals
}

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the recipe API endpoints
type APIConfig struct {
	CocktailsURL string        `mapstructure:"cocktails_url"`
	MealsURL     string        `mapstructure:"meals_url"`
	Timeout      time.Duration `mapstructure:"timeout"` // Per-request timeout, e.g. "60s"
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultScreen  ScreenName `mapstructure:"default_screen"`  // "cocktails" or "meals"
	ShowThumbnails bool       `mapstructure:"show_thumbnails"` // Show thumbnail URLs under each row
	ImageViewer    string     `mapstructure:"image_viewer"`    // Command line for opening images, empty for system default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			CocktailsURL: "https://www.thecocktaildb.com/api/json/v1/1/filter.php?c=Cocktail",
			MealsURL:     "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood",
			Timeout:      60 * time.Second,
		},
		UI: UIConfig{
			DefaultScreen:  ScreenCocktails,
			ShowThumbnails: true,
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
		return filepath.Join(os.Getenv("APPDATA"), "barback", "barback.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "barback", "barback.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "barback")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "barback")
	}
}

// newViper registers every key with its default so that BARBACK_* environment
// variables override nested keys even when no config file exists.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("api.cocktails_url", defaults.API.CocktailsURL)
	v.SetDefault("api.meals_url", defaults.API.MealsURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("ui.default_screen", string(defaults.UI.DefaultScreen))
	v.SetDefault("ui.show_thumbnails", defaults.UI.ShowThumbnails)
	v.SetDefault("ui.image_viewer", defaults.UI.ImageViewer)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides, e.g. BARBACK_API_TIMEOUT=10s
	v.SetEnvPrefix("BARBACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from config.yaml in the given directories
// (the default config directory and "." when none are given) and from the
// environment.
func LoadConfig(dirs ...string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = []string{DefaultConfigDir(), "."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if !c.UI.DefaultScreen.Valid() {
		return fmt.Errorf("invalid ui.default_screen %q (want %q or %q)", c.UI.DefaultScreen, ScreenCocktails, ScreenMeals)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid api.timeout %s", c.API.Timeout)
	}
	return nil
}

// SaveConfig writes cfg to config.yaml in dir
func SaveConfig(cfg *Config, dir string) (string, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("api.cocktails_url", cfg.API.CocktailsURL)
	v.Set("api.meals_url", cfg.API.MealsURL)
	v.Set("api.timeout", cfg.API.Timeout.String())

	v.Set("ui.default_screen", string(cfg.UI.DefaultScreen))
	v.Set("ui.show_thumbnails", cfg.UI.ShowThumbnails)
	v.Set("ui.image_viewer", cfg.UI.ImageViewer)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
