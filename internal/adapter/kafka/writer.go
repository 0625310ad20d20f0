package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/addressforge/address-normalizer/internal/config"
	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/addressforge/address-normalizer/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes normalized address records to a Kafka topic so downstream
// consumers receive canonical records without talking to the provider.
type Writer struct {
	writer  *kafkago.Writer
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, metrics: metrics, logger: logger}
}

// PublishAddresses serializes and publishes the addresses resolved for a
// query in a single WriteMessages call. A nil or empty list is a no-op.
func (w *Writer) PublishAddresses(ctx context.Context, query string, addresses []domain.Address) error {
	if len(addresses) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(addresses))
	for i := range addresses {
		msg, err := serializeToMessage(query, addresses[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.metrics.AddressesPublished.Add(float64(len(addresses)))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an Address into a Kafka message. The provider
// record ID keys the message; records without one fall back to the query so
// results for the same search land on the same partition.
func serializeToMessage(query string, address domain.Address) (kafkago.Message, error) {
	data, err := json.Marshal(address)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize address: %w", err)
	}
	key := address.ID
	if key == "" {
		key = query
	}
	return kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "address_type", Value: []byte(address.Type)},
			{Key: "normalized_at", Value: []byte(address.NormalizedAt.Format(time.RFC3339))},
		},
	}, nil
}
