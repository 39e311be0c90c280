package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"

	"busline/internal/reservations"
	"busline/internal/shared/config"
)

// KafkaReservationProducer publishes reservation lifecycle events to Kafka.
// It implements reservations.EventPublisher; core reservation outcomes never
// depend on it.
type KafkaReservationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaReservationProducer creates a producer connected to the configured
// brokers.
func NewKafkaReservationProducer(cfg config.KafkaConfig) (*KafkaReservationProducer, error) {
	saramaConfig := sarama.NewConfig()

	// Producer configuration
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps each trip's events on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka reservation producer created successfully")
	return &KafkaReservationProducer{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// PublishReservationConfirmed publishes a confirmed reservation event.
func (p *KafkaReservationProducer) PublishReservationConfirmed(ctx context.Context, event *reservations.ConfirmedEvent) error {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.TripID),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("reservation.confirmed")},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send reservation event to Kafka: %w", err)
	}

	log.Printf("📤 Reservation event published - Topic: %s, Partition: %d, Offset: %d, Reservation: %s",
		p.topic, partition, offset, event.ReservationID)

	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaReservationProducer) Close() error {
	return p.producer.Close()
}
