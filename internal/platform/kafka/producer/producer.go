// Package producer wraps franz-go synchronous production and startup topic
// provisioning.
package producer

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer publishes records synchronously. Synchronous because every
// publish here sits on a processing path that must not acknowledge its
// input before the output is durable.
type Producer struct {
	client *kgo.Client
}

func New(brokers []string) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &Producer{client: client}, nil
}

// Produce publishes one record and waits for the broker ack.
func (p *Producer) Produce(ctx context.Context, topic string, key, value []byte) error {
	rec := &kgo.Record{Topic: topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	return nil
}

// ForTopic binds the producer to one topic, matching the single-topic
// Produce(ctx, key, value) port the publishing packages consume.
func (p *Producer) ForTopic(topic string) *TopicProducer {
	return &TopicProducer{producer: p, topic: topic}
}

// Close flushes and releases the client.
func (p *Producer) Close() {
	p.client.Close()
}

// TopicProducer is a Producer fixed to one topic.
type TopicProducer struct {
	producer *Producer
	topic    string
}

func (t *TopicProducer) Produce(ctx context.Context, key, value []byte) error {
	return t.producer.Produce(ctx, t.topic, key, value)
}

// EnsureTopics creates the given topics when missing. Existing topics are
// left untouched.
func EnsureTopics(ctx context.Context, brokers []string, topics ...string) error {
	client, err := kgo.NewClient(kgo.SeedBrokers(brokers...))
	if err != nil {
		return fmt.Errorf("create kafka admin client: %w", err)
	}
	defer client.Close()

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, -1, nil, topics...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, res := range resp.Sorted() {
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", res.Topic, res.Err)
		}
	}
	return nil
}
