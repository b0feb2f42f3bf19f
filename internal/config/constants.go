package config

import "time"

// Environment variable names
const (
	EnvBungieAPIKey    = "BUNGIE_API_KEY"
	EnvDiscordWebhook  = "DISCORD_WEBHOOK"
	EnvConfigFile      = "CONFIG_FILE"
	EnvLocationURL     = "LOCATION_URL"
	EnvBungieBaseURL   = "BUNGIE_BASE_URL"
	EnvVendorPath      = "BUNGIE_VENDOR_PATH"
	EnvItemPath        = "BUNGIE_ITEM_PATH"
	EnvVendorHash      = "VENDOR_HASH"
	EnvIconBaseURL     = "ICON_BASE_URL"
	EnvSearchURL       = "ITEM_SEARCH_URL"
	EnvBotName         = "BOT_NAME"
	EnvAvatarURL       = "BOT_AVATAR_URL"
	EnvDenylist        = "DENYLIST"
	EnvFlavorSource    = "FLAVOR_SOURCE"
	EnvHTTPTimeout     = "HTTP_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvMetricsTextfile = "METRICS_TEXTFILE"
	EnvSchedule        = "SCHEDULE"
)

// Legacy names written by older .env files
const (
	LegacyEnvBungieAPIKey   = "BUNGIE-API-KEY"
	LegacyEnvDiscordWebhook = "DISCORD-WEBHOOK"
)

// Flavor text sources
const (
	FlavorSourceFlavorText  = "flavorText"
	FlavorSourceDescription = "description"
)

// Defaults
const (
	DefaultLocationURL   = "https://paracausal.science/xur/current.json"
	DefaultBungieBaseURL = "https://www.bungie.net/Platform/Destiny2/"
	DefaultVendorPath    = "Vendors/?components=402"
	DefaultItemPath      = "Manifest/DestinyInventoryItemDefinition/"
	DefaultVendorHash    = 2190858386
	DefaultIconBaseURL   = "https://www.bungie.net"
	DefaultSearchURL     = "https://www.light.gg/db/search/"
	DefaultBotName       = "Xur, Agent of the Nine"
	DefaultAvatarURL     = "https://cdn.vox-cdn.com/uploads/chorus_image/image/59217189/Xur_Destiny_2_.0.jpg"
	DefaultFlavorSource  = FlavorSourceFlavorText
	DefaultHTTPTimeout   = 10 * time.Second
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultVersion       = "dev"
	DefaultSchedule      = "0 */15 * * * *"
)
