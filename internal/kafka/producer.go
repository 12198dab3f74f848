package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent describes a single changed booking record. Subscribers get the
// record itself instead of re-fetching the whole collection.
type BookingEvent struct {
	EventID          string    `json:"event_id"`
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	UserID           string    `json:"user_id"`
	PackageID        string    `json:"package_id"`
	TravelDate       string    `json:"travel_date"`
	TotalAmountPaisa int64     `json:"total_amount_paisa"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status,omitempty"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
