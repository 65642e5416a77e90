package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"slack-translator/internal/i18n"
	"slack-translator/internal/store"
)

func init() {
	if err := i18n.Init(); err != nil {
		panic(err)
	}
}

// recordedPost captures one notifier call for assertions.
type recordedPost struct {
	AsBot   bool
	UserID  string
	Channel string
	Text    string
}

// recordingNotifier implements slack.MessagePoster in memory.
type recordingNotifier struct {
	mu    sync.Mutex
	posts []recordedPost
	err   error
}

func (n *recordingNotifier) PostAsBot(ctx context.Context, channel, text string) error {
	if n.err != nil {
		return n.err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posts = append(n.posts, recordedPost{AsBot: true, Channel: channel, Text: text})
	return nil
}

func (n *recordingNotifier) PostAsUser(ctx context.Context, userID, channel, text string) error {
	if n.err != nil {
		return n.err
	}
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

// stubEngine implements engine.Engine with a canned transformation.
type stubEngine struct {
	mu    sync.Mutex
	calls [][3]string
	reply string
	err   error
}

func (e *stubEngine) Name() string {
	return "stub"
}

func (e *stubEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	e.mu.Lock()
	e.calls = append(e.calls, [3]string{text, sourceLang, targetLang})
	e.mu.Unlock()
	if e.err != nil {
		return "", e.err
	}
	if e.reply != "" {
		return e.reply, nil
	}
	return "[" + targetLang + "] " + text, nil
}

func (e *stubEngine) Calls() [][3]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([][3]string(nil), e.calls...)
}

// brokenStore implements store.Store and fails every operation, standing
// in for an unreachable external store.
type brokenStore struct{}

var errStoreDown = errors.New("connection refused")

func (brokenStore) Set(string, []byte, time.Duration) error       { return errStoreDown }
func (brokenStore) Get(string) ([]byte, error)                    { return nil, errStoreDown }
func (brokenStore) Delete(string) error                           { return errStoreDown }
func (brokenStore) Exists(string) (bool, error)                   { return false, errStoreDown }
func (brokenStore) Publish(string, []byte) error                  { return errStoreDown }
func (brokenStore) Subscribe(string) (store.Subscription, error)  { return nil, errStoreDown }
func (brokenStore) Clear() error                                  { return errStoreDown }
func (brokenStore) Close() error                                  { return nil }
