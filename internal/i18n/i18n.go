// Package i18n localizes the channel notices posted by the bot.
package i18n

import (
	"fmt"
	"strings"

	"slack-translator/internal/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

// Init initializes i18n.
func Init() error {
	bundle = i18n.NewBundle(language.English)

	messageSets := map[string]map[string]string{
		"en": locales.MessagesEn,
		"ko": locales.MessagesKo,
	}
	for lang, messages := range messageSets {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
		for id, msg := range messages {
			if err := bundle.AddMessages(tag, &i18n.Message{ID: id, Other: msg}); err != nil {
				return fmt.Errorf("failed to register message %s: %w", id, err)
			}
		}
	}

	return nil
}

// normalizeLanguageCode maps configured locale values onto supported codes.
func normalizeLanguageCode(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ko", "ko-kr":
		return "ko"
	default:
		return "en"
	}
}

// Message translates a message id for the given locale. Unknown ids fall
// back to the id itself so a missing translation never hides a notice.
func Message(locale, msgID string, data ...map[string]any) string {
	if bundle == nil {
		return msgID
	}

	localizer := i18n.NewLocalizer(bundle, normalizeLanguageCode(locale))

	config := &i18n.LocalizeConfig{MessageID: msgID}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		return msgID
	}
	return msg
}
