package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatlog_service/internal/chatlog/app"
	"chatlog_service/internal/chatlog/repository"
	"chatlog_service/internal/chatlog/router"
	"chatlog_service/pkg/config"
	"chatlog_service/pkg/database"
	"chatlog_service/pkg/logger"
	testtool "chatlog_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatLogService, config.EnvConfig.ChatLogServiceLogPath)
	defer logger.Log.Sync()

	cfg, err := config.LoadConfig[config.ChatLog](config.EnvConfig.ChatLogService, config.EnvConfig.ChatLogServiceYAMLPath, config.ChatLogDefaults())
	if err != nil {
		logger.Log.Fatal("Error loading config", zap.Error(err))
	}

	repo, closeRepo := newRepository(cfg)
	defer closeRepo()

	chatLogUC := app.NewChatLogUseCase(repo, cfg.DefaultLimit)

	testtool.StartPprof(cfg.PprofPort)

	r := fiber.New(fiber.Config{
		AppName:               config.EnvConfig.ChatLogService,
		DisableStartupMessage: config.IsProduction(),
	})
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ChatLogServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		logger.Log.Fatal("Failed to open access log file", zap.Error(err))
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	router.RegisterRoutes(r, app.NewChatLogHandler(chatLogUC))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Log.Info("Shutting down chatlog service", zap.String("signal", sig.String()))
		if err := r.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Log.Error("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("Chat log service listening", zap.String("port", cfg.Port), zap.String("store", cfg.Store))
	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// newRepository pick the store backend from config
func newRepository(cfg config.ChatLog) (repository.ChatLogRepository, func()) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := database.NewRedisClient(context.Background(), database.RedisConnection{
			Addr:          cfg.Redis.Addr,
			MasterName:    cfg.Redis.MasterName,
			SentinelAddrs: cfg.Redis.Sentinels,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.RedisDB,
			RetryCount:    3,
			RetryInterval: 2 * time.Second,
		})
		if err != nil {
			logger.Log.Fatal("Unable to connect to redis after retries", zap.String("address", cfg.Redis.Addr), zap.Error(err))
		}
		return repository.NewRedisChatLogRepository(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }
	case config.StoreMemory, "":
		return repository.NewMemoryChatLogRepository(), func() {}
	default:
		logger.Log.Fatal("Unknown chat log store", zap.String("store", cfg.Store))
		return nil, nil
	}
}
