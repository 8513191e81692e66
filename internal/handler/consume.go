package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/model"
)

type notifyForCopy func(ctx context.Context, copyUid string) (int, error)

// Consumer reacts to copy-available events by fanning notifications out to
// the copy's subscribers.
type Consumer struct {
	notifyHandler notifyForCopy
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(notify notifyForCopy, log *zap.Logger) *Consumer {
	return &Consumer{
		notifyHandler: notify,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
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
			var ev model.CopyAvailableEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// Best effort: the event is marked consumed either way, a missed
			// notification is not a correctness problem.
			if n, err := consumer.notifyHandler(context.Background(), ev.CopyUid); err != nil {
				consumer.log.Error("notify for copy", zap.String("copyUid", ev.CopyUid), zap.Error(err))
			} else {
				consumer.log.Debug("copy-available handled",
					zap.String("copyUid", ev.CopyUid), zap.Int("notified", n))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
