package slack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"slack-translator/internal/httpclient"
	"slack-translator/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"
)

// botIconEmoji is the fixed icon used for generic bot posts.
const botIconEmoji = ":globe_with_meridians:"

// basePayload holds the formatting defaults applied to every webhook post.
const basePayload = `{"mrkdwn":true,"parse":"full"}`

// MessagePoster posts messages to a chat channel, either as the generic
// bot identity or impersonating a user.
type MessagePoster interface {
	PostAsBot(ctx context.Context, channel, text string) error
	PostAsUser(ctx context.Context, userID, channel, text string) error
}

// Notifier posts formatted messages to the Slack incoming webhook.
type Notifier struct {
	webhookURL string
	botName    string
	httpClient *http.Client
	users      UserService
}

// NewNotifier creates a Notifier posting through the configured webhook.
func NewNotifier(configManager types.ConfigManager, clientManager *httpclient.Manager, users UserService) *Notifier {
	slackConfig := configManager.GetSlackConfig()
	return &Notifier{
		webhookURL: slackConfig.WebhookURL,
		botName:    slackConfig.BotName,
		httpClient: clientManager.GetClient(httpclient.DefaultConfig()),
		users:      users,
	}
}

// PostAsBot posts text to a channel under the fixed bot identity.
func (n *Notifier) PostAsBot(ctx context.Context, channel, text string) error {
	payload, err := buildPayload(channel, text, map[string]any{
		"username":   n.botName,
		"icon_emoji": botIconEmoji,
	})
	if err != nil {
		return err
	}
	return n.post(ctx, payload)
}

// PostAsUser posts text to a channel impersonating the given user's
// display name and avatar.
func (n *Notifier) PostAsUser(ctx context.Context, userID, channel, text string) error {
	profile, err := n.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}

	payload, err := buildPayload(channel, text, map[string]any{
		"username": profile.DisplayName,
		"icon_url": profile.AvatarURL,
	})
	if err != nil {
		return err
	}
	return n.post(ctx, payload)
}

// buildPayload merges the formatting defaults with call-specific identity
// fields into one webhook payload.
func buildPayload(channel, text string, identity map[string]any) ([]byte, error) {
	payload := []byte(basePayload)
	var err error

	if payload, err = sjson.SetBytes(payload, "channel", channel); err != nil {
		return nil, err
	}
	if payload, err = sjson.SetBytes(payload, "text", text); err != nil {
		return nil, err
	}
	for field, value := range identity {
		if payload, err = sjson.SetBytes(payload, field, value); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// post performs the webhook HTTP call. Errors propagate to the caller;
// there is no retry.
func (n *Notifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook: unexpected status %d: %s", resp.StatusCode, body)
	}

	logrus.Debugf("posted %d bytes to webhook", len(payload))
	return nil
}
