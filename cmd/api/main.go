package main

import (
	"items-api/config"
	"items-api/internal/handler"
	"items-api/internal/redis"
	"items-api/internal/repository"
	"items-api/internal/server"
	"items-api/internal/services"
	"items-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)
	defer l.Logger.Sync()

	userRepo := repository.NewMemoryUserRepository()
	itemRepo := repository.NewMemoryItemRepository()

	authService := services.NewAuthService(userRepo, cfg)
	itemService := services.NewItemService(itemRepo)

	handlers := &server.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Items: handler.NewItemHandler(itemService),
	}

	var rateLimiter *redis.RateLimiter
	if cfg.RateLimitEnabled {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		limits := redis.DefaultRateLimitConfig()
		limits.AuthLimit = cfg.AuthRateLimit
		rateLimiter = redis.NewRateLimiter(client, limits)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, rateLimiter)

	if err := srv.Start(); err != nil {
		l.Errorf("server exited with error: %s", err)
	}
}
