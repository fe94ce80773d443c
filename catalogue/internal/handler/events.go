package handler

import (
	"strconv"
	"time"

	"github.com/Astemirdum/book-catalogue/pkg/kafka"
	"github.com/Astemirdum/book-catalogue/pkg/serializer"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EventLog records committed catalogue changes.
type EventLog interface {
	Log(ev kafka.BookEvent) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewEventLog(producer sarama.AsyncProducer, topic string) EventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(ev kafka.BookEvent) error {
	data, err := serializer.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case l.producer.Input() <- msg:
		return nil
	default:
		return errors.Errorf("producer input full, event %s dropped", ev.ID)
	}
}

type nopEventLog struct{}

func NopEventLog() EventLog { return nopEventLog{} }

func (nopEventLog) Log(kafka.BookEvent) error { return nil }

func (h *Handler) publish(typ kafka.EventType, bookID int64, status string) {
	ev := kafka.BookEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		BookID:    bookID,
		EventType: typ,
		Status:    status,
	}
	if err := h.events.Log(ev); err != nil {
		h.log.Warn("event log", zap.String("type", string(typ)), zap.Error(err))
	}
}
