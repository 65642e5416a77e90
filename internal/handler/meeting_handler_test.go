package handler

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"slack-translator/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeetingRouter(server *Server) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/meeting_mode", server.Events)
	r.GET("/start_meeting_mode/:language1/:language2", server.StartMeetingMode)
	r.POST("/start_meeting_mode/:language1/:language2", server.StartMeetingMode)
	r.GET("/stop_meeting_mode/", server.StopMeetingMode)
	r.POST("/stop_meeting_mode/", server.StopMeetingMode)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestEvents_ChallengeEcho(t *testing.T) {
	server, _, _, kv := newTestServer()
	defer kv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/meeting_mode", strings.NewReader(`{"type":"url_verification","challenge":"abc123xyz"}`))
	req.Header.Set("Content-Type", "application/json")
	newMeetingRouter(server).ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "abc123xyz", w.Body.String())
}

func TestEvents_RelaysMessageInMeetingMode(t *testing.T) {
	server, _, notifier, kv := newTestServer()
	defer kv.Close()
	r := newMeetingRouter(server)

	form := url.Values{}
	form.Set("channel_id", "C42")
	form.Set("user_id", "U1")
	form.Set("user_name", "jane")
	w := postForm(r, "/start_meeting_mode/ko/ja", form)
	require.Equal(t, 200, w.Code)

	// The start notice is the first recorded post
	require.NotEmpty(t, notifier.Posts())

	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/meeting_mode", strings.NewReader(`{"event":{"channel":"C42","text":"테스트","user":"U7"}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Body.String())

	posts := notifier.Posts()
	last := posts[len(posts)-1]
	assert.False(t, last.AsBot)
	assert.Equal(t, "U7", last.UserID)
	assert.Equal(t, "C42", last.Channel)
	assert.Equal(t, "[ja] 테스트", last.Text)
}

func TestEvents_BotEventIgnored(t *testing.T) {
	server, _, notifier, kv := newTestServer()
	defer kv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/meeting_mode", strings.NewReader(`{"event":{"channel":"C42","text":"hi","user":"U7","bot_id":"B1"}}`))
	req.Header.Set("Content-Type", "application/json")
	newMeetingRouter(server).ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Empty(t, notifier.Posts())
}

func TestStartMeetingMode_PostsNotice(t *testing.T) {
	server, _, notifier, kv := newTestServer()
	defer kv.Close()

	form := url.Values{}
	form.Set("channel_id", "C1")
	form.Set("user_id", "U1")
	form.Set("user_name", "jane")
	w := postForm(newMeetingRouter(server), "/start_meeting_mode/ko/en", form)

	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Body.String())

	posts := notifier.Posts()
	require.Len(t, posts, 1)
	assert.True(t, posts[0].AsBot)
	assert.Equal(t, "C1", posts[0].Channel)
	assert.Contains(t, posts[0].Text, "jane")

	cfg, active, err := server.MeetingMode.Get("C1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, "ko", cfg.LanguageA)
	assert.Equal(t, "en", cfg.LanguageB)
}

func TestStopMeetingMode_RemovesChannel(t *testing.T) {
	server, _, _, kv := newTestServer()
	defer kv.Close()
	r := newMeetingRouter(server)

	form := url.Values{}
	form.Set("channel_id", "C1")
	form.Set("user_id", "U1")
	form.Set("user_name", "jane")
	require.Equal(t, 200, postForm(r, "/start_meeting_mode/ko/en", form).Code)

	stop := url.Values{}
	stop.Set("channel_id", "C1")
	stop.Set("user_name", "jane")
	w := postForm(r, "/stop_meeting_mode/", stop)

	assert.Equal(t, 200, w.Code)

	_, active, err := server.MeetingMode.Get("C1")
	require.NoError(t, err)
	assert.False(t, active)
}
