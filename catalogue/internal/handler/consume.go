package handler

import (
	"context"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/pkg/kafka"
	"github.com/Astemirdum/book-catalogue/pkg/serializer"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Consumer applies loan messages to the catalogue.
type Consumer struct {
	loanSvc LoanService
	log     *zap.Logger
}

func NewConsumer(loanSvc LoanService, log *zap.Logger) *Consumer {
	return &Consumer{
		loanSvc: loanSvc,
		log:     log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
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
			if !consumer.handle(session.Context(), message.Value) {
				continue
			}
			consumer.log.Debug("message claimed",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports whether the message offset may be marked.
func (consumer *Consumer) handle(ctx context.Context, value []byte) bool {
	var msg kafka.LoanMsg
	if err := serializer.Unmarshal(value, &msg); err != nil {
		consumer.log.Error("bad loan message", zap.ByteString("value", value), zap.Error(err))
		return true
	}

	var err error
	if msg.IsReturn {
		_, err = consumer.loanSvc.ReturnBook(ctx, msg.BookID)
	} else {
		_, err = consumer.loanSvc.BorrowBook(ctx, msg.BookID)
	}
	switch {
	case err == nil:
		return true
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrConflict):
		consumer.log.Warn("loan rejected", zap.Int64("bookId", msg.BookID), zap.Bool("isReturn", msg.IsReturn), zap.Error(err))
		return true
	default:
		consumer.log.Error("loan", zap.Int64("bookId", msg.BookID), zap.Error(err))
		return false
	}
}
