// Package services implements the stateful request-routing core: the
// channel mode store and the message relay.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/i18n"
	"slack-translator/internal/slack"
	"slack-translator/internal/store"
	"slack-translator/internal/types"

	"github.com/sirupsen/logrus"
)

// modeStoreKey is the well-known key holding the whole channel-mode
// mapping as one serialized blob.
const modeStoreKey = "slack-translator:meeting_mode"

// MeetingModeService persists the per-channel meeting mode configuration.
//
// Every mutation rewrites the entire mapping as one blob. Concurrent
// writers racing on the same blob may lose updates (last-writer-wins);
// this is an accepted limitation of the single-blob layout, not a bug.
type MeetingModeService struct {
	store    store.Store
	notifier slack.MessagePoster
	locale   string
}

// NewMeetingModeService creates a MeetingModeService.
func NewMeetingModeService(s store.Store, notifier slack.MessagePoster, configManager types.ConfigManager) *MeetingModeService {
	return &MeetingModeService{
		store:    s,
		notifier: notifier,
		locale:   configManager.GetNoticeLocale(),
	}
}

// GetAll loads the channel-mode mapping. A missing blob initializes and
// persists an empty mapping. Store failures surface as store-unavailable
// errors.
func (s *MeetingModeService) GetAll() (map[string]types.ChannelModeConfig, error) {
	raw, err := s.store.Get(modeStoreKey)
	if err == store.ErrNotFound {
		empty := map[string]types.ChannelModeConfig{}
		if err := s.persist(empty); err != nil {
			return nil, err
		}
		return empty, nil
	}
	if err != nil {
		return nil, app_errors.NewStoreUnavailableError(fmt.Sprintf("failed to load meeting mode blob: %v", err))
	}

	var configs map[string]types.ChannelModeConfig
	if err := json.Unmarshal(raw, &configs); err != nil {
		return nil, app_errors.NewStoreUnavailableError(fmt.Sprintf("corrupt meeting mode blob: %v", err))
	}
	if configs == nil {
		configs = map[string]types.ChannelModeConfig{}
	}
	return configs, nil
}

// Get returns the configuration for one channel if it is in meeting mode.
func (s *MeetingModeService) Get(channelID string) (types.ChannelModeConfig, bool, error) {
	configs, err := s.GetAll()
	if err != nil {
		return types.ChannelModeConfig{}, false, err
	}
	cfg, ok := configs[channelID]
	return cfg, ok, nil
}

// Start puts a channel into meeting mode. Starting a channel that is
// already in meeting mode leaves the existing configuration untouched and
// posts an "already in progress" notice instead.
func (s *MeetingModeService) Start(ctx context.Context, channelID, userID, userName, lang1, lang2 string) error {
	configs, err := s.GetAll()
	if err != nil {
		s.notifyStoreFailure(ctx, channelID)
		return err
	}

	if _, exists := configs[channelID]; exists {
		s.notify(ctx, channelID, i18n.Message(s.locale, "meeting.already"))
		return nil
	}

	configs[channelID] = types.ChannelModeConfig{
		ChannelID:        channelID,
		InitiatingUserID: userID,
		LanguageA:        lang1,
		LanguageB:        lang2,
	}
	if err := s.persist(configs); err != nil {
		s.notifyStoreFailure(ctx, channelID)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"channel":    channelID,
		"language_a": lang1,
		"language_b": lang2,
	}).Info("meeting mode started")

	s.notify(ctx, channelID, i18n.Message(s.locale, "meeting.started", map[string]any{
		"UserName":  userName,
		"LanguageA": lang1,
		"LanguageB": lang2,
	}))
	return nil
}

// Stop takes a channel out of meeting mode. Stopping a channel that is not
// in meeting mode makes no change and posts a "not in progress" notice.
func (s *MeetingModeService) Stop(ctx context.Context, channelID, userName string) error {
	configs, err := s.GetAll()
	if err != nil {
		s.notifyStoreFailure(ctx, channelID)
		return err
	}

	if _, exists := configs[channelID]; !exists {
		s.notify(ctx, channelID, i18n.Message(s.locale, "meeting.not_running"))
		return nil
	}

	delete(configs, channelID)
	if err := s.persist(configs); err != nil {
		s.notifyStoreFailure(ctx, channelID)
		return err
	}

	logrus.WithField("channel", channelID).Info("meeting mode stopped")

	s.notify(ctx, channelID, i18n.Message(s.locale, "meeting.stopped", map[string]any{
		"UserName": userName,
	}))
	return nil
}

// persist writes the whole mapping back as one blob, with no expiry.
func (s *MeetingModeService) persist(configs map[string]types.ChannelModeConfig) error {
	raw, err := json.Marshal(configs)
	if err != nil {
		return app_errors.NewStoreUnavailableError(fmt.Sprintf("failed to serialize meeting mode blob: %v", err))
	}
	if err := s.store.Set(modeStoreKey, raw, 0); err != nil {
		return app_errors.NewStoreUnavailableError(fmt.Sprintf("failed to persist meeting mode blob: %v", err))
	}
	return nil
}

// notify posts a bot notice to the channel. Notice delivery is best
// effort: the mode change itself already happened.
func (s *MeetingModeService) notify(ctx context.Context, channelID, text string) {
	if err := s.notifier.PostAsBot(ctx, channelID, text); err != nil {
		logrus.WithError(err).WithField("channel", channelID).Warn("failed to post meeting mode notice")
	}
}

// notifyStoreFailure tells the channel the store is unreachable where feasible.
func (s *MeetingModeService) notifyStoreFailure(ctx context.Context, channelID string) {
	s.notify(ctx, channelID, i18n.Message(s.locale, "meeting.store_error"))
}
