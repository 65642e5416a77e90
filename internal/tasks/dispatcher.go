// Package tasks defers translate-and-send work to a background worker so
// the HTTP response can return immediately.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"slack-translator/internal/services"
	"slack-translator/internal/store"
	"slack-translator/internal/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// jobChannel is the pub/sub channel carrying translate-and-send jobs.
const jobChannel = "slack-translator:jobs"

// Dispatcher hands a translate-and-send job off for execution. Whether the
// job runs within the request or out of band is a deployment-time choice.
type Dispatcher interface {
	Enqueue(job services.TranslateJob) error
}

// NewDispatcher selects the dispatcher for the configured mode.
func NewDispatcher(configManager types.ConfigManager, s store.Store, relay *services.RelayService) Dispatcher {
	if configManager.IsAsyncTranslation() {
		return NewQueueDispatcher(s)
	}
	return NewSyncDispatcher(relay)
}

// SyncDispatcher executes jobs inline; Enqueue returns after the
// translation and both posts complete.
type SyncDispatcher struct {
	relay *services.RelayService
}

// NewSyncDispatcher creates a SyncDispatcher.
func NewSyncDispatcher(relay *services.RelayService) *SyncDispatcher {
	return &SyncDispatcher{relay: relay}
}

// Enqueue runs the job immediately.
func (d *SyncDispatcher) Enqueue(job services.TranslateJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return d.relay.TranslateAndSend(context.Background(), job)
}

// QueueDispatcher publishes jobs to the store's pub/sub channel for the
// background worker. Fire-and-forget: once enqueued, a job cannot be
// cancelled and failures are only logged by the worker.
type QueueDispatcher struct {
	store store.Store
}

// NewQueueDispatcher creates a QueueDispatcher.
func NewQueueDispatcher(s store.Store) *QueueDispatcher {
	return &QueueDispatcher{store: s}
}

// Enqueue publishes the job and returns without waiting for execution.
func (d *QueueDispatcher) Enqueue(job services.TranslateJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	if err := d.store.Publish(jobChannel, payload); err != nil {
		return fmt.Errorf("failed to enqueue job %s: %w", job.ID, err)
	}

	logrus.WithField("job_id", job.ID).Debug("job enqueued")
	return nil
}
