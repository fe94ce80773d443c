package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-catalogue/catalogue/config"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/handler"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/repository"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/server"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/service"
	"github.com/Astemirdum/book-catalogue/catalogue/migrations"
	"github.com/Astemirdum/book-catalogue/pkg/kafka"
	"github.com/Astemirdum/book-catalogue/pkg/logger"
	"github.com/Astemirdum/book-catalogue/pkg/postgres"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalogue")
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	g, gCtx := errgroup.WithContext(ctx)
	var (
		events   = handler.NopEventLog()
		producer sarama.AsyncProducer
		group    sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		g.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("event log", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
			}
			return nil
		})
		events = handler.NewEventLog(producer, kafka.EventsTopic)

		group, err = kafka.NewConsumer(cfg.Kafka, kafka.CatalogueConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		g.Go(func() error {
			return kafka.Consume(gCtx, group, handler.NewConsumer(svc, log), kafka.LoansTopic)
		})
	} else {
		log.Info("kafka disabled")
	}

	h := handler.New(svc, events, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case <-gCtx.Done():
		log.Error("background worker stopped, shutting down")
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if group != nil {
		if err = group.Close(); err != nil {
			log.Error("consumer group close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer close", zap.Error(err))
		}
	}
	if err = g.Wait(); err != nil {
		log.Error("background worker", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
