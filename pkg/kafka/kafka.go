package kafka

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	NotificationTopic         = "circulation.notifications"
	NotificationConsumerGroup = "notifier"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume keeps the consumer group session alive until ctx is done.
// A rebalance makes Consume return, so the handler is re-entered in a loop.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			log.Error("consumer.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
