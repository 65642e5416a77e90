// Package container wires the application dependencies with dig.
package container

import (
	"slack-translator/internal/app"
	"slack-translator/internal/cache"
	"slack-translator/internal/config"
	"slack-translator/internal/engine"
	"slack-translator/internal/handler"
	"slack-translator/internal/httpclient"
	"slack-translator/internal/router"
	"slack-translator/internal/services"
	"slack-translator/internal/slack"
	"slack-translator/internal/store"
	"slack-translator/internal/tasks"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,
		store.NewStore,
		httpclient.NewManager,
		cache.NewMemoizer,
		engine.NewEngine,
		services.NewMeetingModeService,
		services.NewRelayService,
		tasks.NewDispatcher,
		tasks.NewWorker,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	// The platform client doubles as the user profile source for the
	// impersonating notifier.
	if err := container.Provide(slack.NewClient, dig.As(new(slack.UserService))); err != nil {
		return nil, err
	}
	if err := container.Provide(slack.NewNotifier, dig.As(new(slack.MessagePoster))); err != nil {
		return nil, err
	}

	return container, nil
}
