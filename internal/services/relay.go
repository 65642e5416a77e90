package services

import (
	"context"
	"fmt"

	"slack-translator/internal/cache"
	"slack-translator/internal/engine"
	"slack-translator/internal/language"
	"slack-translator/internal/slack"

	"github.com/sirupsen/logrus"
)

// TranslateJob carries one direct-command translation through the
// dispatcher to the relay.
type TranslateJob struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	ChannelName string `json:"channel_name"`
	Text        string `json:"text"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
}

// Event is the relevant slice of a platform event callback.
type Event struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
	User    string `json:"user"`
	BotID   string `json:"bot_id"`
}

// RelayService routes incoming chat traffic: it decides whether and how to
// translate and which identity to post as.
type RelayService struct {
	engine      engine.Engine
	memoizer    *cache.Memoizer
	notifier    slack.MessagePoster
	meetingMode *MeetingModeService
}

// NewRelayService creates a RelayService.
func NewRelayService(eng engine.Engine, memoizer *cache.Memoizer, notifier slack.MessagePoster, meetingMode *MeetingModeService) *RelayService {
	return &RelayService{
		engine:      eng,
		memoizer:    memoizer,
		notifier:    notifier,
		meetingMode: meetingMode,
	}
}

// Translate runs the configured engine through the response cache. The
// cache key is the engine name plus the exact argument tuple.
func (s *RelayService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return s.memoizer.DoString(func() (string, error) {
		return s.engine.Translate(ctx, text, sourceLang, targetLang)
	}, "translate", s.engine.Name(), text, sourceLang, targetLang)
}

// TranslateAndSend handles the direct two-language command: translate the
// text unconditionally and post the original and the translation to the
// target channel, impersonating the requesting user for both posts.
//
// If the second post fails after the first succeeded, the first delivery
// already reached the channel; there is no rollback.
func (s *RelayService) TranslateAndSend(ctx context.Context, job TranslateJob) error {
	translated, err := s.Translate(ctx, job.Text, job.SourceLang, job.TargetLang)
	if err != nil {
		return fmt.Errorf("translate %s->%s failed: %w", job.SourceLang, job.TargetLang, err)
	}

	channel := "#" + job.ChannelName
	for _, text := range []string{job.Text, translated} {
		if err := s.notifier.PostAsUser(ctx, job.UserID, channel, text); err != nil {
			return fmt.Errorf("post to %s failed: %w", channel, err)
		}
	}
	return nil
}

// HandleEvent handles a platform event for a channel that may be in
// meeting mode. Bot-authored events are ignored to prevent translation
// feedback loops, and text whose detected language matches neither
// configured language is silently discarded.
func (s *RelayService) HandleEvent(ctx context.Context, ev Event) error {
	if ev.BotID != "" {
		logrus.Debug("ignoring bot-authored event")
		return nil
	}

	cfg, active, err := s.meetingMode.Get(ev.Channel)
	if err != nil {
		return err
	}
	if !active {
		return nil
	}

	detected := language.Detect(ev.Text)
	var sourceLang, targetLang string
	switch detected {
	case cfg.LanguageA:
		sourceLang, targetLang = cfg.LanguageA, cfg.LanguageB
	case cfg.LanguageB:
		sourceLang, targetLang = cfg.LanguageB, cfg.LanguageA
	default:
		logrus.WithFields(logrus.Fields{
			"channel":  ev.Channel,
			"detected": detected,
		}).Debug("detected language matches neither configured language, discarding")
		return nil
	}

	translated, err := s.Translate(ctx, ev.Text, sourceLang, targetLang)
	if err != nil {
		return fmt.Errorf("translate %s->%s failed: %w", sourceLang, targetLang, err)
	}

	return s.notifier.PostAsUser(ctx, ev.User, ev.Channel, translated)
}
