package handler_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/handler"
	"github.com/Astemirdum/book-catalogue/pkg/kafka"
	"github.com/Astemirdum/book-catalogue/pkg/serializer"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEventLog_Log(t *testing.T) {
	t.Parallel()
	producer := mocks.NewAsyncProducer(t, nil)
	ev := kafka.BookEvent{
		ID:        "5f0c3e1c-36d5-4b7a-9d5e-8c1f0c6d2e11",
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		BookID:    42,
		EventType: kafka.EventBookBorrowed,
		Status:    "BORROWED",
	}
	producer.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.BookEvent
		if err := serializer.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.ID != ev.ID || got.BookID != ev.BookID || got.EventType != ev.EventType ||
			got.Status != ev.Status || !got.Timestamp.Equal(ev.Timestamp) {
			return errors.Errorf("unexpected event %+v", got)
		}
		return nil
	})

	require.NoError(t, handler.NewEventLog(producer, kafka.EventsTopic).Log(ev))
	require.NoError(t, producer.Close())
}

// stalledProducer never drains its input, like an async producer whose broker is down.
type stalledProducer struct {
	sarama.AsyncProducer
	input chan *sarama.ProducerMessage
}

func (p stalledProducer) Input() chan<- *sarama.ProducerMessage { return p.input }

func TestEventLog_LogDoesNotBlock(t *testing.T) {
	t.Parallel()
	producer := stalledProducer{input: make(chan *sarama.ProducerMessage, 1)}
	log := handler.NewEventLog(producer, kafka.EventsTopic)

	require.NoError(t, log.Log(kafka.BookEvent{ID: "first", BookID: 1, EventType: kafka.EventBookBorrowed}))

	done := make(chan error, 1)
	go func() { done <- log.Log(kafka.BookEvent{ID: "second", BookID: 1, EventType: kafka.EventBookReturned}) }()
	select {
	case err := <-done:
		require.ErrorContains(t, err, "second dropped")
	case <-time.After(time.Second):
		t.Fatal("Log blocked on a full producer input")
	}
	require.Len(t, producer.input, 1)
}

func TestNopEventLog(t *testing.T) {
	t.Parallel()
	require.NoError(t, handler.NopEventLog().Log(kafka.BookEvent{BookID: 1}))
}
