package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
)

const DefaultClubEventTopic = "club-events"

// ClubEvent 社团生命周期事件（created/joined/deleted）
type ClubEvent struct {
	Event     string `json:"event"`
	ClubID    uint64 `json:"club_id"`
	ClubName  string `json:"club_name"`
	EventTime string `json:"event_time"`
}

type EventProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewEventProducer(cfg KafkaConfig) (*EventProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers required")
	}
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultClubEventTopic
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &EventProducer{writer: w, topic: topic}, nil
}

func (p *EventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Publish 以社团id作key，同一社团的事件落入同一分区（有序）
func (p *EventProducer) Publish(ctx context.Context, ev ClubEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.ClubID, 10)),
		Value: payload,
	}
	return p.writer.WriteMessages(ctx, msg)
}
