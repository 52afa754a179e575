package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jmcdev/cryptomark-api/internal/config"
	"github.com/jmcdev/cryptomark-api/internal/handler"
	"github.com/jmcdev/cryptomark-api/internal/market"
	"github.com/jmcdev/cryptomark-api/internal/repository"
	"github.com/jmcdev/cryptomark-api/internal/server"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("MongoDB ping failed")
	}
	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)

	authUsecase := usecase.NewAuthUsecase(userRepo)
	userUsecase := usecase.NewUserUsecase(userRepo)
	bookmarkUsecase := usecase.NewBookmarkUsecase(userRepo)

	marketClient := market.NewClient(cfg.TrendingPoolsURL, cfg.TrendingTimeout, &logger)
	validate := validator.New()

	srv := server.New(cfg, &logger, server.Handlers{
		Auth:     handler.NewAuthHandler(authUsecase, validate, &logger),
		User:     handler.NewUserHandler(userUsecase, &logger),
		Bookmark: handler.NewBookmarkHandler(bookmarkUsecase, validate, &logger),
		Market:   handler.NewMarketHandler(marketClient, &logger),
		Health:   handler.NewHealthHandler(mongoPinger{client: client}),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
