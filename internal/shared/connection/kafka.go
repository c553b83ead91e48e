package connection

import (
	"context"
	"net"
	"strconv"

	"am-hris/internal/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConnectKafkaWithRetry waits for the first broker to accept a connection and
// returns a writer that routes on each message's Topic.
func ConnectKafkaWithRetry(ctx context.Context, cfg config.KafkaConfig, logger *zap.Logger) (*kafkago.Writer, error) {
	if err := waitForBroker(ctx, cfg, logger); err != nil {
		return nil, err
	}

	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}

// NewKafkaReader builds a consumer-group reader with manual commits.
func NewKafkaReader(ctx context.Context, cfg config.KafkaConfig, topic string, logger *zap.Logger) (*kafkago.Reader, error) {
	if err := waitForBroker(ctx, cfg, logger); err != nil {
		return nil, err
	}

	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        cfg.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	}), nil
}

func waitForBroker(ctx context.Context, cfg config.KafkaConfig, logger *zap.Logger) error {
	return retry(ctx, cfg.ConnectRetries, logger, "kafka", func() error {
		conn, err := kafkago.DialContext(ctx, "tcp", cfg.Brokers[0])
		if err != nil {
			return err
		}
		defer conn.Close()

		broker, err := conn.Controller()
		if err != nil {
			return err
		}
		logger.Info("kafka connected",
			zap.String("controller", net.JoinHostPort(broker.Host, strconv.Itoa(broker.Port))),
		)
		return nil
	})
}
