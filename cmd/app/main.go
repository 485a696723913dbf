package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/handler"
	"github.com/MohamedHany17m8/x-from-scratch/internal/imagestore"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"github.com/MohamedHany17m8/x-from-scratch/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Fatalf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to mongo: %s", err.Error())
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Sugar().Fatalf("failed to ping mongo: %s", err.Error())
	}
	db := client.Database(viper.GetString("mongo.database"))

	images, err := imagestore.New()
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize image store: %s", err.Error())
	}

	repo, err := repository.New(ctx, db)
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize mongo repositories: %s", err.Error())
	}
	services := service.New(logger, repo, images)
	handlers := handler.New(services, logger)

	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: handlers.InitRoutes(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("failed to run http server: %s", err.Error())
		}
	}()
	logger.Sugar().Infof("server is listening on port %s", viper.GetString("server.port"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to disconnect from mongo: %s", err.Error())
	}
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
