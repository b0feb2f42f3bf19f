package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/transport"
)

// webhookPayload is the subset of the webhook body the tests inspect
type webhookPayload struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Content   string `json:"content"`
	Embeds    []struct {
		Author struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			IconURL string `json:"icon_url"`
		} `json:"author"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Color       int    `json:"color"`
		Thumbnail   struct {
			URL string `json:"url"`
		} `json:"thumbnail"`
	} `json:"embeds"`
}

func captureWebhook(t *testing.T, status int) (*httptest.Server, *[]webhookPayload) {
	t.Helper()
	var got []webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var p webhookPayload
		assert.NoError(t, json.Unmarshal(raw, &p))
		got = append(got, p)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func testItem() domain.Item {
	return domain.Item{
		Hash:             111,
		Name:             "Crown of Tempests",
		FlavorText:       "Stormcaller's pride.",
		IconURL:          "https://www.bungie.net/icon.jpg",
		TypeAndTierLabel: "Exotic Helmet",
		ScreenshotURL:    "https://www.bungie.net/shot.jpg",
		Category:         domain.CategoryArmor,
	}
}

func TestWebhookNotifier_SendPresence(t *testing.T) {
	srv, got := captureWebhook(t, http.StatusNoContent)
	n := NewWebhookNotifier(transport.New(srv.Client()), srv.URL, NewRenderer(Identity{AvatarURL: DefaultAvatarURL}, ""))

	err := n.SendPresence(context.Background(), domain.Location{Planet: "Nessus", Place: "Watcher's Grave"})

	require.NoError(t, err)
	require.Len(t, *got, 1)
	p := (*got)[0]
	assert.Equal(t, "I am on Nessus in Watcher's Grave.", p.Content)
	assert.Equal(t, DefaultBotName, p.Username)
	assert.Equal(t, DefaultAvatarURL, p.AvatarURL)
	assert.Empty(t, p.Embeds)
}

func TestWebhookNotifier_SendItemCard(t *testing.T) {
	srv, got := captureWebhook(t, http.StatusOK)
	n := NewWebhookNotifier(transport.New(srv.Client()), srv.URL, NewRenderer(Identity{}, ""))

	require.NoError(t, n.SendItemCard(context.Background(), testItem()))

	require.Len(t, *got, 1)
	p := (*got)[0]
	assert.Empty(t, p.Content)
	require.Len(t, p.Embeds, 1)
	e := p.Embeds[0]
	wantLink := "https://www.light.gg/db/search/?q=Crown+of+Tempests"
	assert.Equal(t, "Crown of Tempests", e.Author.Name)
	assert.Equal(t, wantLink, e.Author.URL)
	assert.Equal(t, "https://www.bungie.net/icon.jpg", e.Author.IconURL)
	assert.Equal(t, "Exotic Helmet", e.Title)
	assert.Equal(t, wantLink, e.URL)
	assert.Equal(t, "Stormcaller's pride.", e.Description)
	assert.Equal(t, 15258703, e.Color)
	assert.Equal(t, "https://www.bungie.net/icon.jpg", e.Thumbnail.URL)
}

func TestWebhookNotifier_FailureIsReturned(t *testing.T) {
	srv, _ := captureWebhook(t, http.StatusTooManyRequests)
	n := NewWebhookNotifier(transport.New(srv.Client()), srv.URL, NewRenderer(Identity{}, ""))

	err := n.SendItemCard(context.Background(), testItem())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "111")
}

func TestRenderer_SearchLink(t *testing.T) {
	r := NewRenderer(Identity{}, "")
	assert.Equal(t, "https://www.light.gg/db/search/?q=Ahamkara%27s+Spine+%26+Co", r.SearchLink("Ahamkara's Spine & Co"))

	r = NewRenderer(Identity{}, "https://example.com/search?lang=en")
	assert.Equal(t, "https://example.com/search?lang=en&q=Sunshot", r.SearchLink("Sunshot"))
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	n := NewLogNotifier(NewRenderer(Identity{}, ""))
	require.NoError(t, n.SendPresence(context.Background(), domain.Location{Planet: "Nessus", Place: "Watcher's Grave"}))
	require.NoError(t, n.SendItemCard(context.Background(), testItem()))

	out := buf.String()
	assert.Contains(t, out, LogMsgDryRun)
	assert.Contains(t, out, "kind=presence")
	assert.Contains(t, out, "kind=item_card")
	assert.Contains(t, out, "Crown of Tempests")
}
