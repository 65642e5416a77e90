package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNaverTestEngine(t *testing.T, handler http.HandlerFunc) Engine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	eng, err := newNaverEngine(types.TranslateConfig{NaverAPIURL: srv.URL}, srv.Client())
	require.NoError(t, err)
	return eng
}

func TestNaverEngine_Translate(t *testing.T) {
	var gotForm map[string][]string
	eng := newNaverTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		// The real endpoint mislabels its JSON body; the engine must parse
		// it regardless of the Content-Type header.
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`{"resultData":"こんにちは"}`))
	})

	translated, err := eng.Translate(context.Background(), "안녕하세요", "ko", "ja")
	require.NoError(t, err)
	assert.Equal(t, "こんにちは", translated)

	assert.Equal(t, []string{"안녕하세요"}, gotForm["query"])
	assert.Equal(t, []string{"ko"}, gotForm["srcLang"])
	assert.Equal(t, []string{"ja"}, gotForm["tarLang"])
	assert.Equal(t, []string{"0"}, gotForm["highlight"])
	assert.Equal(t, []string{"0"}, gotForm["hurigana"])
}

func TestNaverEngine_VendorError(t *testing.T) {
	eng := newNaverTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := eng.Translate(context.Background(), "text", "ko", "ja")
	require.Error(t, err)

	apiErr, ok := err.(*app_errors.APIError)
	require.True(t, ok)
	assert.Equal(t, app_errors.ErrTranslation.Code, apiErr.Code)
}

func TestNaverEngine_UnexpectedShape(t *testing.T) {
	eng := newNaverTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errorCode":"E100"}`))
	})

	_, err := eng.Translate(context.Background(), "text", "ko", "ja")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected response shape")
}
