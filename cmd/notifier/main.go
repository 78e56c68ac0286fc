package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/browbeat/event-marketplace/cmd/config"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/utils/logger"
	"go.uber.org/zap"
)

// The notifier drains the marketplace queues: it completes accepted event
// requests once they are over and logs vendor and client notifications.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.RabbitMQ.Host == "" {
		logger.Fatal("RABBITMQ_HOST is required for the notifier")
	}
	if cfg.Auth.InternalAPIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required for the notifier")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Notifier.APIBaseURL,
		cfg.Auth.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("notifier running", zap.String("api", cfg.Notifier.APIBaseURL))

	<-ctx.Done()
	logger.Info("notifier stopped")
}
