package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/pkg/breaker"
	"github.com/ostrenko/circulation-service/pkg/kafka"
)

type Kind string

const (
	KindReturnRequested Kind = "RETURN_REQUESTED"
	KindRenewalRequest  Kind = "RENEWAL_REQUESTED"
	KindRenewalApproved Kind = "RENEWAL_APPROVED"
	KindRenewalRejected Kind = "RENEWAL_REJECTED"
	KindLoanOverdue     Kind = "LOAN_OVERDUE"
	KindPickupReady     Kind = "PICKUP_READY"
	KindPickupExpired   Kind = "PICKUP_EXPIRED"
)

// Event is one outbound notification. Dispatch happens after the owning
// transaction commits; delivery is best-effort.
type Event struct {
	Recipient string     `json:"recipient,omitempty"`
	Role      model.Role `json:"role,omitempty"`
	Kind      Kind       `json:"kind"`
	Message   string     `json:"message"`
	At        time.Time  `json:"at"`
}

func ToUser(username string, kind Kind, message string) Event {
	return Event{Recipient: username, Kind: kind, Message: message, At: time.Now().UTC()}
}

func ToLibrarians(kind Kind, message string) Event {
	return Event{Role: model.RoleLibrarian, Kind: kind, Message: message, At: time.Now().UTC()}
}

type Notifier interface {
	Notify(ctx context.Context, events ...Event)
}

// KafkaNotifier publishes events to the notification topic. Send failures are
// logged, never propagated: a down broker must not fail circulation.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	cb       breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaNotifier(producer sarama.SyncProducer, log *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		cb:       breaker.New(20, 30*time.Second, 0.5, 5),
		log:      log.Named("notifier"),
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, events ...Event) {
	for _, event := range events {
		event := event
		b, err := json.Marshal(event)
		if err != nil {
			n.log.Error("notify marshal", zap.Error(err))
			continue
		}
		if err := n.cb.Call(func() error {
			_, _, err := n.producer.SendMessage(&sarama.ProducerMessage{
				Topic: kafka.NotificationTopic,
				Value: sarama.ByteEncoder(b),
			})
			return err
		}); err != nil {
			n.log.Error("notify send", zap.Error(err), zap.String("kind", string(event.Kind)))
		}
	}
}

// LogNotifier writes events to the log only. Used when kafka is not
// configured, and in tests.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notifier")}
}

func (n *LogNotifier) Notify(_ context.Context, events ...Event) {
	for _, event := range events {
		n.log.Info("notification",
			zap.String("kind", string(event.Kind)),
			zap.String("recipient", event.Recipient),
			zap.String("role", string(event.Role)),
			zap.String("message", event.Message))
	}
}
