package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SkillSwap/feed-service/internal/config"
	"github.com/SkillSwap/feed-service/internal/handler"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/repository/badgerrepo"
	"github.com/SkillSwap/feed-service/internal/repository/postgres"
	"github.com/SkillSwap/feed-service/internal/repository/redisrepo"
	"github.com/SkillSwap/feed-service/internal/server"
	"github.com/SkillSwap/feed-service/internal/service"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	kv, err := openStorage(ctx, logger)
	if err != nil {
		logger.Sugar().Panicf("failed to open storage: %s", err.Error())
	}
	defer kv.Close()

	st := store.New(service.LoadSnapshot(ctx, logger, kv))
	services := service.New(logger, st, kv)
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(srv *server.Server, cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(srv, serverConfig)

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func openStorage(ctx context.Context, logger *zap.Logger) (repository.KV, error) {
	storageConfig := config.StorageConfig{
		Driver:     viper.GetString("storage.driver"),
		BadgerPath: viper.GetString("storage.badger_path"),
	}

	switch storageConfig.Driver {
	case "", "badger":
		kv, err := badgerrepo.Open(badgerrepo.Config{
			Path:       storageConfig.BadgerPath,
			SyncWrites: true,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Successfully opened BadgerDB")
		return kv, nil
	case "redis":
		redisOptions := &redis.Options{
			Addr: os.Getenv("REDIS_ADDR"),
		}
		rdb := redis.NewClient(redisOptions)
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			return nil, err
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
		return redisrepo.New(rdb), nil
	case "postgres":
		dbConfig := config.DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		db, err := postgres.DB(ctx, dbConfig)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(ctx); err != nil {
			return nil, err
		}
		logger.Info("Successfully connected to PostgreSQL")
		return postgres.New(ctx, db)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", storageConfig.Driver)
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
