package main

import (
	"context"
	"log"
	"time"

	"health-server/confs"
	"health-server/db"
	"health-server/logger"
	"health-server/server"
	"health-server/sessions"

	"go.uber.org/zap"
)

func main() {
	// load config
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "health-server")
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync()

	// connect to database Postgres
	database, err := db.Connect(zlog, cfg.LogLevel == "debug")
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// session registry lives in redis
	redisClient := sessions.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(ctx).Err()
	cancel()
	if err != nil {
		zlog.Fatal("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	// run server
	srv, err := server.NewServer(cfg, database, redisClient, zlog)
	if err != nil {
		zlog.Fatal("failed to build server", zap.Error(err))
	}
	if err := srv.Start(); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
