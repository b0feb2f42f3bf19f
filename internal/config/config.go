package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/XurBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	// Secrets only ever come from the environment
	BungieAPIKey   string `yaml:"-" validate:"required"`
	DiscordWebhook string `yaml:"-" validate:"required,url"`

	LocationURL   string            `yaml:"location_url" validate:"required,url"`
	BungieBaseURL string            `yaml:"bungie_base_url" validate:"required,url"`
	VendorPath    string            `yaml:"vendor_path" validate:"required"`
	ItemPath      string            `yaml:"item_path" validate:"required"`
	VendorHash    uint32            `yaml:"vendor_hash" validate:"required"`
	IconBaseURL   string            `yaml:"icon_base_url" validate:"required,url"`
	SearchURL     string            `yaml:"search_url" validate:"required,url"`
	BotName       string            `yaml:"bot_name" validate:"required"`
	AvatarURL     string            `yaml:"avatar_url" validate:"omitempty,url"`
	Denylist      []domain.ItemHash `yaml:"denylist"`
	FlavorSource  string            `yaml:"flavor_source" validate:"oneof=flavorText description"`
	HTTPTimeout   time.Duration     `yaml:"http_timeout" validate:"gt=0"`

	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=json text"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`

	MetricsTextfile string `yaml:"metrics_textfile"`
	Schedule        string `yaml:"schedule"`
}

// Defaults returns a Config populated with built-in values and no secrets
func Defaults() *Config {
	return &Config{
		LocationURL:   DefaultLocationURL,
		BungieBaseURL: DefaultBungieBaseURL,
		VendorPath:    DefaultVendorPath,
		ItemPath:      DefaultItemPath,
		VendorHash:    DefaultVendorHash,
		IconBaseURL:   DefaultIconBaseURL,
		SearchURL:     DefaultSearchURL,
		BotName:       DefaultBotName,
		AvatarURL:     DefaultAvatarURL,
		Denylist:      domain.DefaultDenylist(),
		FlavorSource:  DefaultFlavorSource,
		HTTPTimeout:   DefaultHTTPTimeout,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		Environment:   DefaultEnvironment,
		Version:       DefaultVersion,
		Schedule:      DefaultSchedule,
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence. An empty path falls back to CONFIG_FILE.
func Load(path string) (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := Defaults()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: failed to parse config file %s: %v", domain.ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	c.BungieAPIKey = getEnvAny(c.BungieAPIKey, EnvBungieAPIKey, LegacyEnvBungieAPIKey)
	c.DiscordWebhook = getEnvAny(c.DiscordWebhook, EnvDiscordWebhook, LegacyEnvDiscordWebhook)

	c.LocationURL = getEnv(EnvLocationURL, c.LocationURL)
	c.BungieBaseURL = getEnv(EnvBungieBaseURL, c.BungieBaseURL)
	c.VendorPath = getEnv(EnvVendorPath, c.VendorPath)
	c.ItemPath = getEnv(EnvItemPath, c.ItemPath)
	c.IconBaseURL = getEnv(EnvIconBaseURL, c.IconBaseURL)
	c.SearchURL = getEnv(EnvSearchURL, c.SearchURL)
	c.BotName = getEnv(EnvBotName, c.BotName)
	c.AvatarURL = getEnv(EnvAvatarURL, c.AvatarURL)
	c.FlavorSource = getEnv(EnvFlavorSource, c.FlavorSource)
	c.LogLevel = strings.ToLower(getEnv(EnvLogLevel, c.LogLevel))
	c.LogFormat = strings.ToLower(getEnv(EnvLogFormat, c.LogFormat))
	c.Environment = getEnv(EnvEnvironment, c.Environment)
	c.Version = getEnv(EnvVersion, c.Version)
	c.MetricsTextfile = getEnv(EnvMetricsTextfile, c.MetricsTextfile)
	c.Schedule = getEnv(EnvSchedule, c.Schedule)

	var err error
	if c.VendorHash, err = getEnvAsUint32(EnvVendorHash, c.VendorHash); err != nil {
		return err
	}
	if c.HTTPTimeout, err = getEnvAsDuration(EnvHTTPTimeout, c.HTTPTimeout); err != nil {
		return err
	}
	if raw, ok := os.LookupEnv(EnvDenylist); ok {
		if c.Denylist, err = ParseDenylist(raw); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks struct constraints and reports every failing field at once
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, ", "))
}

// ParseDenylist parses a comma separated list of item hashes.
// An empty string yields an empty denylist.
func ParseDenylist(raw string) ([]domain.ItemHash, error) {
	hashes := []domain.ItemHash{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s entry %q", domain.ErrInvalidConfig, EnvDenylist, part)
		}
		hashes = append(hashes, domain.ItemHash(n))
	}
	return hashes, nil
}

// VendorURL returns the full vendor-sales endpoint
func (c *Config) VendorURL() string {
	return c.BungieBaseURL + c.VendorPath
}

// ItemBaseURL returns the content-database prefix that item hashes are appended to
func (c *Config) ItemBaseURL() string {
	return c.BungieBaseURL + c.ItemPath
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAny returns the first non-empty variable among keys
func getEnvAny(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return defaultValue
}

func getEnvAsUint32(key string, defaultValue uint32) (uint32, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s value: %v", domain.ErrInvalidConfig, key, err)
	}
	return uint32(n), nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s value: %v", domain.ErrInvalidConfig, key, err)
	}
	return d, nil
}
