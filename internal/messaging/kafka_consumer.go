package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
	"github.com/cypherlabdev/fixture-insights-service/internal/service"
)

// ErrEmptyMessage is returned for messages that carry neither a batch nor a kind
var ErrEmptyMessage = errors.New("message has no upstream payload")

// KafkaConsumer consumes upstream statistics payloads from Kafka and ingests them as views
type KafkaConsumer struct {
	reader   *kafka.Reader
	ingester service.Ingester
	logger   zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "upstream_payloads"
	GroupID string   // e.g., "fixture-insights"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	ingester service.Ingester,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:   reader,
		ingester: ingester,
		logger:   logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage ingests one Kafka message, which is either a batch envelope
// or a single upstream message
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var batch models.UpstreamBatch
	if err := json.Unmarshal(msg.Value, &batch); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	if len(batch.Messages) == 0 {
		var single models.UpstreamMessage
		if err := json.Unmarshal(msg.Value, &single); err != nil {
			return fmt.Errorf("failed to unmarshal message: %w", err)
		}
		if single.Kind == "" {
			if batch.BatchID != "" {
				c.logger.Debug().Str("batch_id", batch.BatchID).Msg("skipping empty batch")
				return nil
			}
			return ErrEmptyMessage
		}

		if err := c.ingester.IngestMessage(ctx, single); err != nil {
			return fmt.Errorf("failed to ingest %s message: %w", single.Kind, err)
		}

		c.logger.Info().
			Str("kind", single.Kind).
			Str("key", single.Key).
			Msg("processed upstream message")
		return nil
	}

	c.logger.Debug().
		Int("message_count", len(batch.Messages)).
		Str("batch_id", batch.BatchID).
		Msg("processing upstream batch")

	result, err := c.ingester.IngestBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("failed to ingest batch: %w", err)
	}

	c.logger.Info().
		Int("input_count", len(batch.Messages)).
		Int("built", result.Built).
		Int("failed", result.Failed).
		Str("batch_id", batch.BatchID).
		Msg("processed upstream batch")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
