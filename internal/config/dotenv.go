package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/XurBot_Go/internal/domain"
)

// DotEnvFile is read from the working directory when present
const DotEnvFile = ".env"

// legacyDotEnvNames maps hyphenated keys, which godotenv cannot parse, to their current names
var legacyDotEnvNames = map[string]string{
	LegacyEnvBungieAPIKey:   EnvBungieAPIKey,
	LegacyEnvDiscordWebhook: EnvDiscordWebhook,
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %v", domain.ErrInvalidConfig, path, err)
	}

	content, renamed := renameLegacyKeys(string(data))
	for _, name := range renamed {
		slog.Warn(fmt.Sprintf("%s is deprecated - rename it to %s in %s", name, legacyDotEnvNames[name], path))
	}

	env, err := godotenv.Unmarshal(content)
	if err != nil {
		return fmt.Errorf("%w: failed to parse %s (variable names may only contain letters, digits and underscores; only %s and %s are accepted with hyphens): %v",
			domain.ErrInvalidConfig, path, LegacyEnvBungieAPIKey, LegacyEnvDiscordWebhook, err)
	}

	for key, value := range env {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("%w: failed to set %s: %v", domain.ErrInvalidConfig, key, err)
		}
	}
	return nil
}

// renameLegacyKeys rewrites hyphenated legacy keys at the start of a line
func renameLegacyKeys(content string) (string, []string) {
	var renamed []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		prefix := ""
		if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
			prefix = "export "
			trimmed = strings.TrimLeft(rest, " \t")
		}
		for legacy, current := range legacyDotEnvNames {
			rest, ok := strings.CutPrefix(trimmed, legacy)
			if !ok {
				continue
			}
			next := strings.TrimLeft(rest, " \t")
			if !strings.HasPrefix(next, "=") && !strings.HasPrefix(next, ":") {
				continue
			}
			lines[i] = prefix + current + rest
			renamed = append(renamed, legacy)
			break
		}
	}
	return strings.Join(lines, "\n"), renamed
}
