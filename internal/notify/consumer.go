package notify

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type deliver func(ctx context.Context, event Event) error

// Consumer drains the notification topic and hands each event to the
// delivery callback. Undeliverable events are left unmarked and retried on
// the next claim.
type Consumer struct {
	deliverFn deliver
	log       *zap.Logger
	ready     chan bool
}

func NewConsumer(deliverFn deliver, log *zap.Logger) *Consumer {
	return &Consumer{
		deliverFn: deliverFn,
		log:       log.Named("consumer"),
		ready:     make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	close(consumer.ready)
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.deliverFn(context.Background(), event); err != nil {
				consumer.log.Error("deliver", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
