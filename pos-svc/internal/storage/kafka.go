package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	msg, err := orderEventMessage(evt)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

// orderEventMessage keys by order id so one order's events stay in one partition.
func orderEventMessage(evt domain.OrderEvent) (kafka.Message, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(evt.OrderID)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(evt.Type)},
		},
	}, nil
}
