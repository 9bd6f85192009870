// The notifier worker consumes circulation notification events and delivers
// them. Delivery here is a structured log line; a real deployment swaps in
// mail or push without touching the circulation core.
package main

import (
	"context"
	stdLog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/config"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/pkg/kafka"
	"github.com/ostrenko/circulation-service/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "notifier")

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		stdLog.Fatal("kafka.NewConsumer ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliver := func(_ context.Context, event notify.Event) error {
		log.Info("deliver notification",
			zap.String("kind", string(event.Kind)),
			zap.String("recipient", event.Recipient),
			zap.String("role", string(event.Role)),
			zap.String("message", event.Message),
			zap.Time("at", event.At))
		return nil
	}
	go kafka.Consume(ctx, consumer, notify.NewConsumer(deliver, log), log, kafka.NotificationTopic)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sig

	cancel()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	log.Info("notifier stopped")
}
