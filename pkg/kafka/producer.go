package kafka

import (
	"context"
	"log"
	"strings"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, key string, message []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: message,
	})
	if err != nil {
		log.Printf("kafka publish: %v", err)
		return err
	}
	return nil
}

func (p *Producer) Close() error { return p.writer.Close() }
