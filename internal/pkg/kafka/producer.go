package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

type Producer struct {
	client sarama.SyncProducer
}

func NewProducer(versionStr string, brokers []string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	client, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{client: client}, nil
}

func (p *Producer) Send(topic, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err := p.client.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}
