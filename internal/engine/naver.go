package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/types"

	"github.com/tidwall/gjson"
)

func init() {
	Register("naver", newNaverEngine)
}

// NaverEngine calls the translate.naver.com dictionary endpoint.
type NaverEngine struct {
	apiURL string
	client *http.Client
}

func newNaverEngine(cfg types.TranslateConfig, client *http.Client) (Engine, error) {
	return &NaverEngine{
		apiURL: cfg.NaverAPIURL,
		client: client,
	}, nil
}

// Name returns the registry name of the engine.
func (e *NaverEngine) Name() string {
	return "naver"
}

// Translate posts the text as form data and unwraps resultData from the
// response. The endpoint labels its response with a wrong Content-Type
// even though the body is UTF-8 JSON, so the raw bytes are parsed without
// consulting the header.
func (e *NaverEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("query", text)
	form.Set("srcLang", sourceLang)
	form.Set("tarLang", targetLang)
	form.Set("highlight", "0")
	form.Set("hurigana", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("naver: failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("naver: request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", app_errors.NewTranslationError(fmt.Sprintf("naver: failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", app_errors.NewTranslationError(fmt.Sprintf("naver: unexpected status %d", resp.StatusCode))
	}

	result := gjson.GetBytes(body, "resultData")
	if !result.Exists() {
		return "", app_errors.NewTranslationError("naver: unexpected response shape")
	}

	return result.String(), nil
}
