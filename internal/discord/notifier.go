package discord

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// Notifier publishes the run's messages
type Notifier interface {
	SendPresence(ctx context.Context, loc domain.Location) error
	SendItemCard(ctx context.Context, item domain.Item) error
}

// Poster sends a JSON body to a URL and fails on any non-2xx status
type Poster interface {
	PostJSON(ctx context.Context, endpoint, url string, body interface{}) error
}

// WebhookNotifier posts each message as its own webhook execution
type WebhookNotifier struct {
	poster   Poster
	url      string
	renderer *Renderer
}

// NewWebhookNotifier creates a notifier for webhookURL
func NewWebhookNotifier(poster Poster, webhookURL string, renderer *Renderer) *WebhookNotifier {
	return &WebhookNotifier{poster: poster, url: webhookURL, renderer: renderer}
}

// SendPresence posts the presence alert
func (n *WebhookNotifier) SendPresence(ctx context.Context, loc domain.Location) error {
	if err := n.send(ctx, n.renderer.Presence(loc)); err != nil {
		return fmt.Errorf("failed to send presence alert: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgPresenceSent, "planet", loc.Planet, "place", loc.Place)
	return nil
}

// SendItemCard posts one item card
func (n *WebhookNotifier) SendItemCard(ctx context.Context, item domain.Item) error {
	if err := n.send(ctx, n.renderer.ItemCard(item)); err != nil {
		return fmt.Errorf("failed to send item card for %s: %w", item.Hash, err)
	}
	logger.FromContext(ctx).Info(LogMsgCardSent, "hash", item.Hash, "name", item.Name)
	return nil
}

func (n *WebhookNotifier) send(ctx context.Context, params *discordgo.WebhookParams) error {
	return n.poster.PostJSON(ctx, EndpointName, n.url, params)
}

// LogNotifier renders payloads and logs them instead of posting
type LogNotifier struct {
	renderer *Renderer
}

// NewLogNotifier creates a dry-run notifier
func NewLogNotifier(renderer *Renderer) *LogNotifier {
	return &LogNotifier{renderer: renderer}
}

// SendPresence logs the presence alert payload
func (n *LogNotifier) SendPresence(ctx context.Context, loc domain.Location) error {
	return n.log(ctx, "presence", n.renderer.Presence(loc))
}

// SendItemCard logs the item card payload
func (n *LogNotifier) SendItemCard(ctx context.Context, item domain.Item) error {
	return n.log(ctx, "item_card", n.renderer.ItemCard(item))
}

func (n *LogNotifier) log(ctx context.Context, kind string, params *discordgo.WebhookParams) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to render %s payload: %w", kind, err)
	}
	logger.FromContext(ctx).Info(LogMsgDryRun, "kind", kind, "payload", string(payload))
	return nil
}
