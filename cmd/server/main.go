package main

import (
	"context"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"log"
	"messenger/internal/chat"
	"messenger/internal/identity"
	"messenger/internal/realtime"
	"messenger/internal/server"
	"messenger/internal/storage"
	"os"
	"time"
)

func main() {
	// .env is optional, real environment wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("godotenv.Load: %v", err)
	}

	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("LOG_PRODUCTION") == "true" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("zap logger: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Application is starting")

	cfg := server.EnvConfig{}
	if err := env.Parse(&cfg); err != nil {
		sugar.Fatalf("Cannot parse env config: %v", err)
	}

	dbCfg := storage.Config{}
	if err := env.Parse(&dbCfg); err != nil {
		sugar.Fatalf("Cannot parse storage env config: %v", err)
	}

	store, err := storage.New(context.Background(), sugar, dbCfg, storage.ConnectionTimeout(30*time.Second))
	if err != nil {
		sugar.Fatalf("Cannot create Store instance: %v", err)
	}

	svc := chat.NewService(sugar, store)
	gateway := realtime.NewGateway(sugar, realtime.NewHub(sugar), svc, cfg.HandlerTimeout)

	serverOpts := []server.Option{
		server.WithEnvConfig(cfg),
		server.TimeoutHandler(cfg.HandlerTimeout, "Request timeout"),
		server.RegisterAfterShutdown(func() {
			sugar.Info("Closing store")
			store.Close()
			sugar.Info("Store is closed")
		}),
	}

	srv, err := server.NewServer(sugar, svc, gateway, identity.NewVerifier(cfg.JWTSecret), serverOpts...)
	if err != nil {
		sugar.Fatalf("Cannot create Server instance: %v", err)
	}

	if err := srv.Start(); err != nil {
		sugar.Fatalf("Cannot start http srv: %v", err)
	}
}
