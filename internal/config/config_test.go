package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/XurBot_Go/internal/domain"
)

var allEnvVars = []string{
	EnvBungieAPIKey, EnvDiscordWebhook, LegacyEnvBungieAPIKey, LegacyEnvDiscordWebhook,
	EnvConfigFile, EnvLocationURL, EnvBungieBaseURL, EnvVendorPath, EnvItemPath,
	EnvVendorHash, EnvIconBaseURL, EnvSearchURL, EnvBotName, EnvAvatarURL, EnvDenylist,
	EnvFlavorSource, EnvHTTPTimeout, EnvLogLevel, EnvLogFormat, EnvEnvironment,
	EnvVersion, EnvMetricsTextfile, EnvSchedule,
}

// clearEnvVars unsets every variable Load reads and restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBungieAPIKey, "test-key")
	t.Setenv(EnvDiscordWebhook, "https://discord.com/api/webhooks/1/abc")
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults when only secrets are set", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.BungieAPIKey)
		assert.Equal(t, DefaultLocationURL, cfg.LocationURL)
		assert.Equal(t, uint32(DefaultVendorHash), cfg.VendorHash)
		assert.Equal(t, []domain.ItemHash{3875551374, 2125848607}, cfg.Denylist)
		assert.Equal(t, FlavorSourceFlavorText, cfg.FlavorSource)
		assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Vendors/?components=402", cfg.VendorURL())
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Manifest/DestinyInventoryItemDefinition/", cfg.ItemBaseURL())
	})

	t.Run("fails without secrets", func(t *testing.T) {
		clearEnvVars(t)

		_, err := Load("")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), EnvBungieAPIKey)
		assert.Contains(t, err.Error(), EnvDiscordWebhook)
	})

	t.Run("accepts legacy hyphenated names", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(LegacyEnvBungieAPIKey, "legacy-key")
		t.Setenv(LegacyEnvDiscordWebhook, "https://discord.com/api/webhooks/2/xyz")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "legacy-key", cfg.BungieAPIKey)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 2)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		t.Setenv(EnvDenylist, "1, 2,3")
		t.Setenv(EnvFlavorSource, FlavorSourceDescription)
		t.Setenv(EnvHTTPTimeout, "3s")
		t.Setenv(EnvVendorHash, "42")
		t.Setenv(EnvLogLevel, "DEBUG")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []domain.ItemHash{1, 2, 3}, cfg.Denylist)
		assert.Equal(t, FlavorSourceDescription, cfg.FlavorSource)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, uint32(42), cfg.VendorHash)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("empty denylist disables filtering", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		t.Setenv(EnvDenylist, "")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Empty(t, cfg.Denylist)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name string
			key  string
			val  string
		}{
			{"bad denylist", EnvDenylist, "12,abc"},
			{"bad timeout", EnvHTTPTimeout, "soon"},
			{"bad vendor hash", EnvVendorHash, "-1"},
			{"bad flavor source", EnvFlavorSource, "lore"},
			{"bad webhook", EnvDiscordWebhook, "not a url"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnvVars(t)
				setSecrets(t)
				t.Setenv(tt.key, tt.val)

				_, err := Load("")

				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			})
		}
	})
}

// writeDotEnv makes dir the working directory with a .env holding content
func writeDotEnv(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(content), 0o600))
	testChdir(t, dir)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Run("reads legacy hyphenated names", func(t *testing.T) {
		clearEnvVars(t)
		writeDotEnv(t, "BUNGIE-API-KEY=legacy-key\nDISCORD-WEBHOOK=https://discord.com/api/webhooks/3/legacy\nBOT_NAME=Dotenv Bot\n")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "legacy-key", cfg.BungieAPIKey)
		assert.Equal(t, "https://discord.com/api/webhooks/3/legacy", cfg.DiscordWebhook)
		assert.Equal(t, "Dotenv Bot", cfg.BotName)
	})

	t.Run("process environment wins over the file", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		writeDotEnv(t, "BUNGIE_API_KEY=from-file\n")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.BungieAPIKey)
	})

	t.Run("unparseable file is reported", func(t *testing.T) {
		clearEnvVars(t)
		writeDotEnv(t, "BUNGIE_API_KEY=k\nDISCORD_WEBHOOK=https://discord.com/api/webhooks/1/abc\nOOPS-BAD=1\n")

		_, err := Load("")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		assert.Contains(t, err.Error(), DotEnvFile)
		assert.Contains(t, err.Error(), LegacyEnvBungieAPIKey)
		assert.NotContains(t, err.Error(), "missing required environment variables")
	})

	t.Run("missing file is fine", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		testChdir(t, t.TempDir())

		_, err := Load("")

		require.NoError(t, err)
	})
}

func TestRenameLegacyKeys(t *testing.T) {
	out, renamed := renameLegacyKeys("export BUNGIE-API-KEY=a\n  DISCORD-WEBHOOK = b\nBUNGIE-API-KEYS=c\n# BUNGIE-API-KEY=d\n")

	assert.Equal(t, "export BUNGIE_API_KEY=a\nDISCORD_WEBHOOK = b\nBUNGIE-API-KEYS=c\n# BUNGIE-API-KEY=d\n", out)
	assert.ElementsMatch(t, []string{LegacyEnvBungieAPIKey, LegacyEnvDiscordWebhook}, renamed)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnvVars(t)
	setSecrets(t)

	path := filepath.Join(t.TempDir(), "xurbot.yaml")
	content := `
denylist: [7, 8]
flavor_source: description
http_timeout: 5s
bot_name: Test Bot
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values apply", func(t *testing.T) {
		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []domain.ItemHash{7, 8}, cfg.Denylist)
		assert.Equal(t, FlavorSourceDescription, cfg.FlavorSource)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "Test Bot", cfg.BotName)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv(EnvBotName, "Env Bot")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "Env Bot", cfg.BotName)
	})

	t.Run("CONFIG_FILE is used when no path given", func(t *testing.T) {
		t.Setenv(EnvConfigFile, path)

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []domain.ItemHash{7, 8}, cfg.Denylist)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseDenylist(t *testing.T) {
	hashes, err := ParseDenylist(" 3875551374 ,2125848607,")
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemHash{3875551374, 2125848607}, hashes)

	hashes, err = ParseDenylist("")
	require.NoError(t, err)
	assert.Empty(t, hashes)

	_, err = ParseDenylist("99999999999")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
