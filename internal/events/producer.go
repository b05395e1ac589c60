// Package events publishes executed trades to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// EventTypeTradeExecuted is the event type of every trade message.
const EventTypeTradeExecuted = "TRADE_EXECUTED"

// TradeEvent describes one committed buy or sell.
type TradeEvent struct {
	EventType     string          `json:"event_type"`
	TransactionID string          `json:"transaction_id"`
	StockID       string          `json:"stock_id"`
	Symbol        string          `json:"symbol"`
	Side          string          `json:"side"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Balance       decimal.Decimal `json:"balance"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Publisher publishes trade events.
type Publisher interface {
	PublishTrade(ctx context.Context, event TradeEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing trade events to Kafka
type Producer struct {
	writer messageWriter
	topic  string
}

// NewPublisher returns a Kafka producer for the given brokers, or a no-op
// publisher when no brokers are configured.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NopPublisher{}
	}
	return NewProducer(brokers, topic)
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishTrade publishes a trade event keyed by stock so that events for
// one stock keep their order within a partition.
func (p *Producer) PublishTrade(ctx context.Context, event TradeEvent) error {
	if event.EventType == "" {
		event.EventType = EventTypeTradeExecuted
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.StockID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

// PublishTrade implements Publisher.
func (NopPublisher) PublishTrade(context.Context, TradeEvent) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
