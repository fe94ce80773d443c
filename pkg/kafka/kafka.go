package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	LoansTopic  = "book-loans"
	EventsTopic = "catalogue-events"

	CatalogueConsumerGroup = "catalogue-consumer"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventBookRegistered EventType = "BOOK_REGISTERED"
	EventBookBorrowed   EventType = "BOOK_BORROWED"
	EventBookReturned   EventType = "BOOK_RETURNED"
	EventReviewAdded    EventType = "REVIEW_ADDED"
)

type BookEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	BookID    int64     `json:"bookId"`
	EventType EventType `json:"eventType"`
	Status    string    `json:"status,omitempty"`
}

// LoanMsg is published by the reservation side to borrow or return a book.
type LoanMsg struct {
	BookID   int64 `json:"bookId"`
	IsReturn bool  `json:"isReturn"`
}

func newConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_8_0_0
	return cfg
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := newConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := newConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume joins the group until ctx is done, rejoining after every rebalance.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "consumer group")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
