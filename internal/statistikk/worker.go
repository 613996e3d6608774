package statistikk

import (
	"context"
	"log/slog"
	"time"
)

// Producer publishes one message to the statistics topic.
type Producer interface {
	Produce(ctx context.Context, key, value []byte) error
}

// Worker drains the outbox to the statistics topic. Rows that fail to
// publish stay in the outbox and are retried on the next tick.
type Worker struct {
	store    Store
	producer Producer
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

func NewWorker(store Store, producer Producer, logger *slog.Logger, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Worker{
		store:    store,
		producer: producer,
		logger:   logger,
		interval: interval,
		batch:    100,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	rows, err := w.store.NextBatch(ctx, w.batch)
	if err != nil {
		w.logger.ErrorContext(ctx, "read statistikk outbox failed", "error", err)
		return
	}

	published := make([]string, 0, len(rows))
	for _, r := range rows {
		if err := w.producer.Produce(ctx, []byte(r.ID), r.Payload); err != nil {
			w.logger.ErrorContext(ctx, "publish statistikk row failed", "id", r.ID, "error", err)
			break
		}
		published = append(published, r.ID)
	}
	if len(published) == 0 {
		return
	}
	if err := w.store.MarkPublished(ctx, published); err != nil {
		w.logger.ErrorContext(ctx, "mark statistikk rows published failed", "error", err)
	}
}
