package app

import (
	"context"
	"testing"
	"time"

	"slack-translator/internal/cache"
	"slack-translator/internal/config"
	"slack-translator/internal/httpclient"
	"slack-translator/internal/services"
	"slack-translator/internal/store"
	"slack-translator/internal/tasks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullEngine struct{}

func (nullEngine) Name() string { return "null" }

func (nullEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return text, nil
}

type nullNotifier struct{}

func (nullNotifier) PostAsBot(ctx context.Context, channel, text string) error { return nil }
func (nullNotifier) PostAsUser(ctx context.Context, userID, channel, text string) error {
	return nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := store.NewMemoryStore()
	cfg := &config.MockConfig{}
	memoizer := cache.NewMemoizer(kv, cfg)
	meetingMode := services.NewMeetingModeService(kv, nullNotifier{}, cfg)
	relay := services.NewRelayService(nullEngine{}, memoizer, nullNotifier{}, meetingMode)

	return NewApp(AppParams{
		Engine:            gin.New(),
		ConfigManager:     cfg,
		Worker:            tasks.NewWorker(cfg, kv, relay),
		HTTPClientManager: httpclient.NewManager(),
		Storage:           kv,
	})
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t)
	require.NotNil(t, a)
	assert.NotNil(t, a.engine)
	assert.NotNil(t, a.configManager)
	assert.NotNil(t, a.worker)
	assert.NotNil(t, a.storage)
}

func TestStop_BeforeStart(t *testing.T) {
	a := newTestApp(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Stop without Start must not panic even though no server is running
	assert.NotPanics(t, func() { a.Stop(ctx) })
}
