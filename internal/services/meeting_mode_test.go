package services

import (
	"context"
	"testing"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/config"
	"slack-translator/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMeetingModeService(t *testing.T) (*MeetingModeService, *recordingNotifier) {
	t.Helper()
	kv := store.NewMemoryStore()
	t.Cleanup(func() { kv.Close() })

	notifier := &recordingNotifier{}
	return NewMeetingModeService(kv, notifier, &config.MockConfig{}), notifier
}

func TestMeetingMode_GetAllInitializesEmptyMapping(t *testing.T) {
	svc, _ := newTestMeetingModeService(t)

	configs, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, configs)

	// The initialized blob round-trips
	configs, err = svc.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, configs)
}

func TestMeetingMode_StartStopRoundTrip(t *testing.T) {
	svc, notifier := newTestMeetingModeService(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "C123", "U1", "jane", "ko", "ja"))

	configs, err := svc.GetAll()
	require.NoError(t, err)
	require.Contains(t, configs, "C123")
	assert.Equal(t, "ko", configs["C123"].LanguageA)
	assert.Equal(t, "ja", configs["C123"].LanguageB)
	assert.Equal(t, "U1", configs["C123"].InitiatingUserID)

	posts := notifier.Posts()
	require.Len(t, posts, 1)
	assert.True(t, posts[0].AsBot)
	assert.Equal(t, "C123", posts[0].Channel)
	assert.Contains(t, posts[0].Text, "Meeting mode started")
	assert.Contains(t, posts[0].Text, "@jane")

	require.NoError(t, svc.Stop(ctx, "C123", "jane"))

	configs, err = svc.GetAll()
	require.NoError(t, err)
	assert.NotContains(t, configs, "C123")

	posts = notifier.Posts()
	require.Len(t, posts, 2)
	assert.Contains(t, posts[1].Text, "Meeting mode stopped")
}

func TestMeetingMode_StartIsIdempotent(t *testing.T) {
	svc, notifier := newTestMeetingModeService(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "C123", "U1", "jane", "ko", "ja"))
	require.NoError(t, svc.Start(ctx, "C123", "U2", "john", "en", "fr"))

	configs, err := svc.GetAll()
	require.NoError(t, err)

	// The first configuration is untouched
	assert.Equal(t, "U1", configs["C123"].InitiatingUserID)
	assert.Equal(t, "ko", configs["C123"].LanguageA)
	assert.Equal(t, "ja", configs["C123"].LanguageB)

	posts := notifier.Posts()
	require.Len(t, posts, 2)
	assert.Contains(t, posts[1].Text, "already in progress")
}

func TestMeetingMode_StopWithoutModeIsNoOp(t *testing.T) {
	svc, notifier := newTestMeetingModeService(t)

	require.NoError(t, svc.Stop(context.Background(), "C999", "jane"))

	configs, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, configs)

	posts := notifier.Posts()
	require.Len(t, posts, 1)
	assert.Contains(t, posts[0].Text, "not in progress")
}

func TestMeetingMode_IndependentChannels(t *testing.T) {
	svc, _ := newTestMeetingModeService(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "C1", "U1", "jane", "ko", "ja"))
	require.NoError(t, svc.Start(ctx, "C2", "U2", "john", "ko", "en"))
	require.NoError(t, svc.Stop(ctx, "C1", "jane"))

	configs, err := svc.GetAll()
	require.NoError(t, err)
	assert.NotContains(t, configs, "C1")
	assert.Contains(t, configs, "C2")
}

func TestMeetingMode_StoreUnavailable(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewMeetingModeService(brokenStore{}, notifier, &config.MockConfig{})
	ctx := context.Background()

	_, err := svc.GetAll()
	require.Error(t, err)
	apiErr, ok := err.(*app_errors.APIError)
	require.True(t, ok)
	assert.Equal(t, app_errors.ErrStoreUnavailable.Code, apiErr.Code)

	err = svc.Start(ctx, "C1", "U1", "jane", "ko", "ja")
	require.Error(t, err)

	err = svc.Stop(ctx, "C1", "jane")
	require.Error(t, err)

	// The failure notice was attempted for both mutations
	posts := notifier.Posts()
	require.Len(t, posts, 2)
	assert.Contains(t, posts[0].Text, "unavailable")
}

func TestMeetingMode_KoreanNotices(t *testing.T) {
	kv := store.NewMemoryStore()
	t.Cleanup(func() { kv.Close() })

	notifier := &recordingNotifier{}
	svc := NewMeetingModeService(kv, notifier, &config.MockConfig{LocaleValue: "ko"})

	require.NoError(t, svc.Start(context.Background(), "C1", "U1", "jane", "ko", "ja"))

	posts := notifier.Posts()
	require.Len(t, posts, 1)
	assert.Contains(t, posts[0].Text, "회의 모드를 시작했습니다")
}
