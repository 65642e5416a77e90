// Package engine provides the pluggable translation backends and the
// registry that resolves the configured backend by name.
package engine

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/httpclient"
	"slack-translator/internal/types"

	"github.com/sirupsen/logrus"
)

// Engine performs one text translation call to an external vendor.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string

	// Translate translates text from the source language to the target
	// language. Vendor HTTP failures and unexpected response shapes are
	// surfaced as translation errors; there is no retry at this layer.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// engineConstructor defines the function signature for creating an engine.
type engineConstructor func(cfg types.TranslateConfig, client *http.Client) (Engine, error)

// engineRegistry holds the mapping from engine name to its constructor.
var engineRegistry = make(map[string]engineConstructor)

// Register adds a new engine constructor to the registry.
func Register(name string, constructor engineConstructor) {
	if _, exists := engineRegistry[name]; exists {
		panic(fmt.Sprintf("engine '%s' is already registered", name))
	}
	engineRegistry[name] = constructor
}

// Names returns the sorted names of all registered engines.
func Names() []string {
	names := make([]string, 0, len(engineRegistry))
	for name := range engineRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEngine resolves the configured engine name into an immutable engine
// handle. Resolution happens once at startup; an unknown name is a
// configuration error and the process must not serve traffic.
func NewEngine(configManager types.ConfigManager, clientManager *httpclient.Manager) (Engine, error) {
	cfg := configManager.GetTranslateConfig()

	constructor, found := engineRegistry[cfg.Engine]
	if !found {
		return nil, app_errors.NewConfigurationError(
			fmt.Sprintf("TRANSLATE_ENGINE: there is no '%s' translate engine", cfg.Engine))
	}

	eng, err := constructor(cfg, clientManager.GetClient(httpclient.DefaultConfig()))
	if err != nil {
		return nil, err
	}

	logrus.Infof("Using '%s' translate engine", eng.Name())
	return eng, nil
}
