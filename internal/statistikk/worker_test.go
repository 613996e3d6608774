package statistikk

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sedmodels "journalforing/internal/sed/models"
	"journalforing/pkg/domain"
)

type producerFake struct {
	feilEtter int // fail every Produce call after this many successes, -1 never
	sendt     int
	values    [][]byte
}

func (p *producerFake) Produce(_ context.Context, _, value []byte) error {
	if p.feilEtter >= 0 && p.sendt >= p.feilEtter {
		return errors.New("broker down")
	}
	p.sendt++
	p.values = append(p.values, value)
	return nil
}

func melding(dokumentID string) Melding {
	return Melding{
		RinaSakID:      "147729",
		RinaDokumentID: dokumentID,
		Tidspunkt:      time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Enhet:          domain.EnhetAutomatiskJournalforing,
		BucType:        sedmodels.PBuc01,
		SedType:        sedmodels.SedP2000,
		HendelseType:   sedmodels.HendelseMottatt,
	}
}

func TestWorkerDrain(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and removes all rows", func(t *testing.T) {
		store := NewInMemoryStore()
		require.NoError(t, store.Append(ctx, melding("a1")))
		require.NoError(t, store.Append(ctx, melding("b2")))

		producer := &producerFake{feilEtter: -1}
		w := NewWorker(store, producer, slog.New(slog.DiscardHandler), time.Second)
		w.drain(ctx)

		assert.Zero(t, store.Len())
		require.Len(t, producer.values, 2)

		var m Melding
		require.NoError(t, json.Unmarshal(producer.values[0], &m))
		assert.Equal(t, "147729", m.RinaSakID)
		assert.Equal(t, sedmodels.SedP2000, m.SedType)
	})

	t.Run("publish failure keeps the remaining rows", func(t *testing.T) {
		store := NewInMemoryStore()
		require.NoError(t, store.Append(ctx, melding("a1")))
		require.NoError(t, store.Append(ctx, melding("b2")))
		require.NoError(t, store.Append(ctx, melding("c3")))

		producer := &producerFake{feilEtter: 1}
		w := NewWorker(store, producer, slog.New(slog.DiscardHandler), time.Second)
		w.drain(ctx)

		// One row out, two stay for the next tick.
		assert.Equal(t, 2, store.Len())
		assert.Len(t, producer.values, 1)
	})

	t.Run("empty outbox is a no-op", func(t *testing.T) {
		store := NewInMemoryStore()
		producer := &producerFake{feilEtter: 0}
		w := NewWorker(store, producer, slog.New(slog.DiscardHandler), time.Second)
		w.drain(ctx)
		assert.Zero(t, store.Len())
	})
}

func TestWorkerRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(NewInMemoryStore(), &producerFake{feilEtter: -1}, slog.New(slog.DiscardHandler), time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancellation")
	}
}
