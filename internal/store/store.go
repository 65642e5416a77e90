// Package store provides the key-value storage abstraction shared by the
// response cache, the channel mode store, and the task queue.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("store: key not found")

// Message represents a message received from a subscription.
type Message struct {
	Channel string
	Payload []byte
}

// Subscription represents an active subscription to a channel.
type Subscription interface {
	// Channel returns the channel for receiving messages.
	Channel() <-chan *Message
	// Close unsubscribes and releases any associated resources.
	Close() error
}

// Store defines the interface for a key-value store.
type Store interface {
	// Set stores a key-value pair. A ttl of 0 means no expiry.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves the value for a key. Returns ErrNotFound if the key
	// does not exist or has expired.
	Get(key string) ([]byte, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// Exists reports whether a key is present and unexpired.
	Exists(key string) (bool, error)

	// Publish sends a message to all subscribers of a channel.
	Publish(channel string, message []byte) error

	// Subscribe listens for messages on a channel.
	Subscribe(channel string) (Subscription, error)

	// Clear removes all data. Intended for tests and single-node resets.
	Clear() error

	// Close releases the resources held by the store.
	Close() error
}
