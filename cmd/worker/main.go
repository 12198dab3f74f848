package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/zvrva/tourbooking/config"
	"github.com/zvrva/tourbooking/internal/app"
	"github.com/zvrva/tourbooking/internal/email"
	"github.com/zvrva/tourbooking/internal/kafka"
	"github.com/zvrva/tourbooking/internal/repository"
	"github.com/zvrva/tourbooking/internal/service/bookings"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		logger,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Warn("decode event", zap.Error(err))
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			logger.Warn("consumer stopped", zap.Error(err))
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.StaleSweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			cancelled, err := bookingService.CancelStalePending(ctx)
			if err != nil {
				logger.Error("cancel stale bookings", zap.Error(err))
				continue
			}
			if len(cancelled) > 0 {
				logger.Info("cancelled stale pending bookings", zap.Int("count", len(cancelled)))
			}
		case s := <-sig:
			logger.Info("received signal, shutting down", zap.Stringer("signal", s))
			return
		}
	}
}
