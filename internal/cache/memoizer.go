// Package cache provides TTL memoization of external calls on top of the
// key-value store.
package cache

import (
	"strings"
	"time"

	"slack-translator/internal/store"
	"slack-translator/internal/types"

	"github.com/sirupsen/logrus"
)

const keyPrefix = "slack-translator:memo:"

// keySeparator joins key parts without ambiguity. Parts are used verbatim,
// so lookups stay case- and whitespace-sensitive.
const keySeparator = "\x1f"

// Memoizer caches the results of expensive external calls by their full
// ordered argument tuple. Concurrent misses for the same key may compute
// more than once; the last completed write wins and there is exactly one
// externally visible value per key at any time.
type Memoizer struct {
	store store.Store
	ttl   time.Duration
}

// NewMemoizer creates a Memoizer with the configured TTL.
func NewMemoizer(s store.Store, configManager types.ConfigManager) *Memoizer {
	ttl := time.Duration(configManager.GetTranslateConfig().CacheTTLSeconds) * time.Second
	return &Memoizer{store: s, ttl: ttl}
}

// Key builds the cache key for an ordered argument tuple.
func Key(parts ...string) string {
	return keyPrefix + strings.Join(parts, keySeparator)
}

// Do returns the cached value for the key tuple, or invokes compute, stores
// the result with the configured TTL, and returns it. Errors from compute
// are never cached.
func (m *Memoizer) Do(compute func() ([]byte, error), keyParts ...string) ([]byte, error) {
	key := Key(keyParts...)

	if cached, err := m.store.Get(key); err == nil {
		logrus.Debugf("cache hit for %q", keyParts[0])
		return cached, nil
	} else if err != store.ErrNotFound {
		// A broken store degrades to a pass-through, the call still runs.
		logrus.WithError(err).Warn("cache read failed, computing without cache")
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(key, value, m.ttl); err != nil {
		logrus.WithError(err).Warn("cache write failed, returning uncached result")
	}

	return value, nil
}

// DoString is Do for string-valued computations.
func (m *Memoizer) DoString(compute func() (string, error), keyParts ...string) (string, error) {
	value, err := m.Do(func() ([]byte, error) {
		s, err := compute()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}, keyParts...)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
