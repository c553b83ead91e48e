package app

import (
	"context"

	"am-hris/internal/bootstrap"
	"am-hris/internal/config"
	"am-hris/internal/events"
	"am-hris/internal/messaging/kafka/consumer"
	"am-hris/internal/payroll"
	"am-hris/internal/shared/connection"
	"am-hris/internal/workday"

	"go.uber.org/zap"
)

// RunConsumer listens for approval decisions and drops the affected
// organization's cached payroll reports.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

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

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	calendarLoc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}
	payrollService := payroll.NewService(payroll.NewRepository(gormDB), rdb, workday.NewCalendar(calendarLoc))

	reader, err := connection.NewKafkaReader(ctx, cfg.Kafka, events.ApprovalDecidedTopic, log)
	if err != nil {
		return err
	}
	defer reader.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeApprovalDecided(ctx, reader, payrollService, logger)
	}()

	bootstrap.WaitForSignal(ctx, log)
	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
