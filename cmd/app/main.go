package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/api"
	"github.com/zvrva/tourbooking/config"
	"github.com/zvrva/tourbooking/internal/app"
	"github.com/zvrva/tourbooking/internal/bootstrap"
	"github.com/zvrva/tourbooking/internal/cache"
	"github.com/zvrva/tourbooking/internal/kafka"
	"github.com/zvrva/tourbooking/internal/payment"
	"github.com/zvrva/tourbooking/internal/repository"
	"github.com/zvrva/tourbooking/internal/service/bookingflow"
	"github.com/zvrva/tourbooking/internal/service/bookings"
	"github.com/zvrva/tourbooking/internal/service/favorites"
	"github.com/zvrva/tourbooking/internal/service/packages"
	"github.com/zvrva/tourbooking/internal/service/reviews"
	"github.com/zvrva/tourbooking/internal/service/users"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.MigrationsDir != "" {
		migrator, err := app.NewMigrator(pool, cfg.Database.MigrationsDir)
		if err != nil {
			logger.Fatal("create migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}
		migrator.Close()
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.PackagesCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	packageRepo := repository.NewPackageRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	packageService := packages.NewPackageService(packageRepo, redisCache)
	reviewService := reviews.NewReviewService(reviewRepo, packageRepo)
	favoriteService := favorites.NewFavoriteService(favoriteRepo, packageRepo)
	userService := users.NewUserService(profileRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TTLHours)*time.Hour)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		logger,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	gateway := payment.NewKhaltiGateway(cfg.Khalti)
	flow := bookingflow.NewFlow(
		bookingRepo,
		gateway,
		producer,
		bookingflow.NewZapNotifier(logger),
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.SubmitTimeoutSeconds)*time.Second,
		time.Duration(cfg.Booking.PaymentTimeoutSeconds)*time.Second,
		logger,
		bookingflow.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	sessions := bookingflow.NewSessionStore(nil)

	handlers := bootstrap.Handlers{
		Auth:      api.NewAuthHandler(userService),
		Packages:  api.NewPackageHandler(packageService),
		Reviews:   api.NewReviewHandler(reviewService),
		Favorites: api.NewFavoriteHandler(favoriteService),
		Bookings:  api.NewBookingHandler(flow, sessions, packageService, bookingService),
		Admin:     api.NewAdminHandler(bookingService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
