package handler

import (
	"context"
	"sync"

	"slack-translator/internal/cache"
	"slack-translator/internal/config"
	"slack-translator/internal/i18n"
	"slack-translator/internal/services"
	"slack-translator/internal/store"
)

// recordedJob captures a dispatched translation job for assertions.
type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []services.TranslateJob
	err  error
}

func (d *recordingDispatcher) Enqueue(job services.TranslateJob) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return d.err
}

func (d *recordingDispatcher) Jobs() []services.TranslateJob {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]services.TranslateJob(nil), d.jobs...)
}

// recordedPost captures one outgoing chat message.
type recordedPost struct {
	AsBot   bool
	UserID  string
	Channel string
	Text    string
}

type recordingNotifier struct {
	mu    sync.Mutex
	posts []recordedPost
}

func (n *recordingNotifier) PostAsBot(ctx context.Context, channel, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posts = append(n.posts, recordedPost{AsBot: true, Channel: channel, Text: text})
	return nil
}

func (n *recordingNotifier) PostAsUser(ctx context.Context, userID, channel, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posts = append(n.posts, recordedPost{UserID: userID, Channel: channel, Text: text})
	return nil
}

func (n *recordingNotifier) Posts() []recordedPost {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedPost(nil), n.posts...)
}

// stubEngine translates by tagging the text with the target language.
type stubEngine struct{}

func (stubEngine) Name() string { return "stub" }

func (stubEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return "[" + targetLang + "] " + text, nil
}

// newTestServer wires a Server over a fresh in-memory store with recording
// doubles for the outbound surfaces.
func newTestServer() (*Server, *recordingDispatcher, *recordingNotifier, store.Store) {
	_ = i18n.Init()

	kv := store.NewMemoryStore()
	cfg := &config.MockConfig{}
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}

	memoizer := cache.NewMemoizer(kv, cfg)
	meetingMode := services.NewMeetingModeService(kv, notifier, cfg)
	relay := services.NewRelayService(stubEngine{}, memoizer, notifier, meetingMode)

	server := &Server{
		ConfigManager: cfg,
		Dispatcher:    dispatcher,
		Relay:         relay,
		MeetingMode:   meetingMode,
		Storage:       kv,
	}
	return server, dispatcher, notifier, kv
}
