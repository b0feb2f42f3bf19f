package discord

import (
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/XurBot_Go/internal/domain"
)

// Identity is the name and avatar every message is posted under
type Identity struct {
	Username  string
	AvatarURL string
}

// Renderer builds webhook payloads
type Renderer struct {
	identity  Identity
	searchURL string
}

// NewRenderer creates a renderer. Empty values fall back to defaults.
func NewRenderer(identity Identity, searchURL string) *Renderer {
	if identity.Username == "" {
		identity.Username = DefaultBotName
	}
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &Renderer{identity: identity, searchURL: searchURL}
}

// Presence renders the plain-text presence alert
func (r *Renderer) Presence(loc domain.Location) *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Username:  r.identity.Username,
		AvatarURL: r.identity.AvatarURL,
		Content:   loc.PresenceMessage(),
	}
}

// ItemCard renders one rich embed describing an item
func (r *Renderer) ItemCard(item domain.Item) *discordgo.WebhookParams {
	link := r.SearchLink(item.Name)
	return &discordgo.WebhookParams{
		Username:  r.identity.Username,
		AvatarURL: r.identity.AvatarURL,
		Embeds: []*discordgo.MessageEmbed{
			{
				Author: &discordgo.MessageEmbedAuthor{
					Name:    item.Name,
					URL:     link,
					IconURL: item.IconURL,
				},
				Title:       item.TypeAndTierLabel,
				URL:         link,
				Description: item.FlavorText,
				Color:       EmbedColor,
				Thumbnail: &discordgo.MessageEmbedThumbnail{
					URL: item.IconURL,
				},
			},
		},
	}
}

// SearchLink builds the external search URL for an item name
func (r *Renderer) SearchLink(name string) string {
	sep := "?"
	if strings.Contains(r.searchURL, "?") {
		sep = "&"
	}
	return r.searchURL + sep + SearchQueryParam + "=" + url.QueryEscape(name)
}
