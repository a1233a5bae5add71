// Command mailer drains the purchase notification queue and sends the emails.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/storefront-server/internal/cache"
	"github.com/dtroode/storefront-server/internal/config"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/notify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat)

	if cfg.AMQP.URL == "" {
		logger.Fatal("AMQP_URL is required")
	}
	if cfg.Mail.ResendAPIKey == "" {
		logger.Fatal("MAIL_RESEND_API_KEY is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}

	conn, err := notify.Dial(ctx, cfg.AMQP.URL, logger)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", "error", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("failed to open a channel", "error", err)
	}
	defer ch.Close()

	if err := notify.DeclareQueue(ch, cfg.AMQP.Queue); err != nil {
		logger.Fatal("failed to declare queue", "error", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		logger.Fatal("failed to set prefetch", "error", err)
	}

	deliveries, err := ch.Consume(
		cfg.AMQP.Queue, // queue
		"",             // consumer
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		logger.Fatal("failed to register a consumer", "error", err)
	}

	consumer := notify.NewConsumer(
		notify.NewMailer(cfg.Mail.ResendAPIKey, cfg.Mail.SenderEmail),
		cache.NewIdempotency(redisClient),
		notify.DefaultDedupTTL,
		logger,
	).WithRetryDelay(cfg.Mail.RetryDelay)

	logger.Info("Mailer: waiting for messages", "queue", cfg.AMQP.Queue)

	if err := consumer.Run(ctx, deliveries); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Mailer: consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
