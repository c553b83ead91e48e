package app

import (
	"context"

	"am-hris/internal/bootstrap"
	"am-hris/internal/config"
	"am-hris/internal/messaging/kafka"
	"am-hris/internal/messaging/kafka/producer"
	"am-hris/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays committed outbox rows to Kafka.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := connection.ConnectGORMWithRetry(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.PollInterval)
	}()

	bootstrap.WaitForSignal(ctx, log)
	log.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
