package tasks

import (
	"context"
	"encoding/json"
	"sync"

	"slack-translator/internal/services"
	"slack-translator/internal/store"
	"slack-translator/internal/types"

	"github.com/sirupsen/logrus"
)

// Worker consumes translate-and-send jobs from the store's pub/sub
// channel. It only runs in deferred mode; in synchronous mode Start is a
// no-op.
type Worker struct {
	store   store.Store
	relay   *services.RelayService
	enabled bool

	mu   sync.Mutex
	sub  store.Subscription
	done chan struct{}
}

// NewWorker creates a Worker.
func NewWorker(configManager types.ConfigManager, s store.Store, relay *services.RelayService) *Worker {
	return &Worker{
		store:   s,
		relay:   relay,
		enabled: configManager.IsAsyncTranslation(),
	}
}

// Start subscribes to the job channel and begins processing.
func (w *Worker) Start() error {
	if !w.enabled {
		logrus.Debug("synchronous translation mode, background worker not started")
		return nil
	}

	sub, err := w.store.Subscribe(jobChannel)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.sub = sub
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.run(sub)
	logrus.Info("background translation worker started")
	return nil
}

// Stop unsubscribes and waits for the processing loop to drain, or until
// the context expires.
func (w *Worker) Stop(ctx context.Context) {
	w.mu.Lock()
	sub := w.sub
	done := w.done
	w.sub = nil
	w.mu.Unlock()

	if sub == nil {
		return
	}
	sub.Close()

	select {
	case <-done:
		logrus.Debug("background translation worker stopped")
	case <-ctx.Done():
		logrus.Warn("timed out waiting for background translation worker")
	}
}

// run processes jobs until the subscription is closed. Job failures are
// logged and the job is dropped; there is no retry or re-delivery.
func (w *Worker) run(sub store.Subscription) {
	defer close(w.done)

	for msg := range sub.Channel() {
		var job services.TranslateJob
		if err := json.Unmarshal(msg.Payload, &job); err != nil {
			logrus.WithError(err).Warn("discarding malformed job payload")
			continue
		}

		if err := w.relay.TranslateAndSend(context.Background(), job); err != nil {
			logrus.WithError(err).WithField("job_id", job.ID).Error("translate-and-send job failed")
		} else {
			logrus.WithField("job_id", job.ID).Debug("job completed")
		}
	}
}
