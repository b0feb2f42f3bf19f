package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/XurBot_Go/internal/domain"
)

// RequiredEnvVars lists the secrets that must be set, each with its accepted aliases
var RequiredEnvVars = [][]string{
	{EnvBungieAPIKey, LegacyEnvBungieAPIKey},
	{EnvDiscordWebhook, LegacyEnvDiscordWebhook},
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, names := range RequiredEnvVars {
		if getEnvAny("", names...) == "" {
			missing = append(missing, names[0])
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required environment variables: %s", domain.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like deprecated names)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, names := range RequiredEnvVars {
		if os.Getenv(names[0]) == "" {
			warnings = append(warnings, fmt.Sprintf("%s is deprecated - rename it to %s in the environment", names[1], names[0]))
		}
	}

	return warnings, nil
}
