package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/types"

	"github.com/tidwall/gjson"
)

func init() {
	Register("google", newGoogleEngine)
}

// GoogleEngine calls the Google Translate v2 REST API.
type GoogleEngine struct {
	apiURL string
	apiKey string
	client *http.Client
}

func newGoogleEngine(cfg types.TranslateConfig, client *http.Client) (Engine, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, app_errors.NewConfigurationError("GOOGLE_API_KEY is required for the google engine")
	}
	return &GoogleEngine{
		apiURL: cfg.GoogleAPIURL,
		apiKey: cfg.GoogleAPIKey,
		client: client,
	}, nil
}

// Name returns the registry name of the engine.
func (e *GoogleEngine) Name() string {
	return "google"
}

// Translate issues a GET request with the text and language pair as query
// parameters and unwraps the first translation from the response.
func (e *GoogleEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("format", "text")
	params.Set("key", e.apiKey)
	params.Set("q", text)
	params.Set("source", sourceLang)
	params.Set("target", targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("google: failed to create request: %v", err))
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("google: request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("google: failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", app_errors.NewTranslationError(fmt.Sprintf("google: unexpected status %d", resp.StatusCode))
	}

	translated := gjson.GetBytes(body, "data.translations.0.translatedText")
	if !translated.Exists() {
		return "", app_errors.NewTranslationError("google: unexpected response shape")
	}

	return translated.String(), nil
}
