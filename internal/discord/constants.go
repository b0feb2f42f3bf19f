package discord

// EndpointName labels webhook posts in logs, metrics and errors
const EndpointName = "discord_webhook"

// Card appearance
const (
	EmbedColor       = 15258703
	DefaultSearchURL = "https://www.light.gg/db/search/"
	DefaultBotName   = "Xur, Agent of the Nine"
	DefaultAvatarURL = "https://cdn.vox-cdn.com/uploads/chorus_image/image/59217189/Xur_Destiny_2_.0.jpg"
	SearchQueryParam = "q"
)

// Log messages
const (
	LogMsgPresenceSent = "Presence alert sent"
	LogMsgCardSent     = "Item card sent"
	LogMsgDryRun       = "Dry run, webhook payload not sent"
)
