//go:build integration

package consumer_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journalforing/internal/platform/kafka/consumer"
	"journalforing/internal/platform/kafka/producer"
	"journalforing/pkg/testutil/containers"
)

type collectHandler struct {
	mu       sync.Mutex
	messages []*consumer.Message
}

func (h *collectHandler) Handle(_ context.Context, msg *consumer.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	return nil
}

func (h *collectHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

func TestProduceConsumeRoundTrip(t *testing.T) {
	ctx := context.Background()
	kafka := containers.NewKafkaContainer(t)
	t.Cleanup(func() { _ = kafka.Container.Terminate(ctx) })

	brokers := []string{kafka.Broker}
	const topic = "eessi.sedmottatt.test"
	require.NoError(t, producer.EnsureTopics(ctx, brokers, topic))
	// Re-running against existing topics must not fail.
	require.NoError(t, producer.EnsureTopics(ctx, brokers, topic))

	prod, err := producer.New(brokers)
	require.NoError(t, err)
	t.Cleanup(prod.Close)

	sedTopic := prod.ForTopic(topic)
	require.NoError(t, sedTopic.Produce(ctx, []byte("147729"), []byte(`{"rinaSakId":"147729"}`)))
	require.NoError(t, sedTopic.Produce(ctx, []byte("147730"), []byte(`{"rinaSakId":"147730"}`)))

	handler := &collectHandler{}
	cons, err := consumer.New(consumer.Config{
		Brokers: brokers,
		GroupID: "journalforing-test",
		Topics:  []string{topic},
	}, handler, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- cons.Run(runCtx) }()

	require.Eventually(t, func() bool { return handler.count() == 2 }, 30*time.Second, 100*time.Millisecond)

	cancel()
	cons.Close()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}

	assert.Equal(t, topic, handler.messages[0].Topic)
	assert.Equal(t, []byte("147729"), handler.messages[0].Key)
	assert.JSONEq(t, `{"rinaSakId":"147729"}`, string(handler.messages[0].Value))
}
