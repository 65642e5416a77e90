// Package slack implements the chat-platform collaborators: the user
// profile lookup API and the incoming-webhook notifier.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"slack-translator/internal/cache"
	"slack-translator/internal/httpclient"
	"slack-translator/internal/types"

	"github.com/tidwall/gjson"
)

// UserService looks up Slack user profiles.
type UserService interface {
	GetUser(ctx context.Context, userID string) (types.UserProfile, error)
}

// Client calls the Slack Web API. Profile lookups are memoized with the
// shared cache TTL so repeated posts by the same user cost one API call.
type Client struct {
	apiBaseURL string
	token      string
	httpClient *http.Client
	memoizer   *cache.Memoizer
}

// NewClient creates a Slack Web API client.
func NewClient(configManager types.ConfigManager, clientManager *httpclient.Manager, memoizer *cache.Memoizer) *Client {
	slackConfig := configManager.GetSlackConfig()
	return &Client{
		apiBaseURL: slackConfig.APIBaseURL,
		token:      slackConfig.APIToken,
		httpClient: clientManager.GetClient(httpclient.DefaultConfig()),
		memoizer:   memoizer,
	}
}

// GetUser fetches a user's display identity by id, through the cache.
func (c *Client) GetUser(ctx context.Context, userID string) (types.UserProfile, error) {
	raw, err := c.memoizer.Do(func() ([]byte, error) {
		profile, err := c.fetchUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(profile)
	}, "user", userID)
	if err != nil {
		return types.UserProfile{}, err
	}

	var profile types.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return types.UserProfile{}, fmt.Errorf("corrupt cached profile for %s: %w", userID, err)
	}
	return profile, nil
}

// fetchUser performs the actual users.info call.
func (c *Client) fetchUser(ctx context.Context, userID string) (types.UserProfile, error) {
	params := url.Values{}
	params.Set("token", c.token)
	params.Set("user", userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/users.info?"+params.Encode(), nil)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("users.info: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("users.info: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("users.info: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return types.UserProfile{}, fmt.Errorf("users.info: unexpected status %d", resp.StatusCode)
	}
	if !gjson.GetBytes(body, "ok").Bool() {
		return types.UserProfile{}, fmt.Errorf("users.info: %s", gjson.GetBytes(body, "error").String())
	}

	user := gjson.GetBytes(body, "user")
	displayName := user.Get("profile.display_name").String()
	if displayName == "" {
		displayName = user.Get("name").String()
	}

	return types.UserProfile{
		ID:          user.Get("id").String(),
		DisplayName: displayName,
		AvatarURL:   user.Get("profile.image_72").String(),
	}, nil
}
