package kafka

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"tireshop/internal/entities"
	"tireshop/internal/pkg/config"
	"tireshop/internal/pkg/metrics"
	"tireshop/pkg/logger"
)

const producerRetryMax = 3

// Producer синхронно публикует события заказов. Ключ сообщения: id заказа, события одного заказа идут в одну партицию.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	cfg.Producer.Idempotent = false

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return NewProducerFromSarama(kafkaLog, producer, cfg.Topic), nil
}

func NewProducerFromSarama(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := EncodeOrderEvent(event)
	if err != nil {
		metrics.OrderEventsPublished.WithLabelValues(event.Type.String(), metrics.ResultError).Inc()
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type.String())},
		},
	})
	if err != nil {
		metrics.OrderEventsPublished.WithLabelValues(event.Type.String(), metrics.ResultError).Inc()
		return fmt.Errorf("send order event: %w", err)
	}

	metrics.OrderEventsPublished.WithLabelValues(event.Type.String(), metrics.ResultOK).Inc()
	p.log.Info("order event published",
		logger.NewField("type", event.Type.String()),
		logger.NewField("order_id", event.OrderID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// NoopPublisher используется, когда kafka выключена.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, entities.OrderEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
