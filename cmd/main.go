package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seino914/user-auth-service/config"
	"github.com/seino914/user-auth-service/db"
	"github.com/seino914/user-auth-service/internal/auth/domain"
	"github.com/seino914/user-auth-service/internal/auth/handler"
	pgrepo "github.com/seino914/user-auth-service/internal/auth/repository/postgres"
	redisrepo "github.com/seino914/user-auth-service/internal/auth/repository/redis"
	"github.com/seino914/user-auth-service/internal/auth/service"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Env == "development" {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	accountRepo := pgrepo.NewAccountRepository(pool)

	var blacklist domain.TokenBlacklist
	switch cfg.BlacklistBackend {
	case "redis":
		client, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logger.WithError(err).Fatal("redis connection failed")
		}
		defer client.Close()
		blacklist = redisrepo.NewBlacklist(client)
	default:
		blacklist = pgrepo.NewBlacklistRepository(pool)
	}

	tokenService := service.NewTokenService(cfg.TokenSecret)
	tokenService.TokenValidity = time.Duration(cfg.TokenExpiryHours) * time.Hour

	lockout := service.NewLockoutPolicy(cfg.MaxLoginAttempts, time.Duration(cfg.LockoutMinutes)*time.Minute)

	authService := service.NewAuthService(
		accountRepo,
		blacklist,
		tokenService,
		service.NewPasswordService(),
		lockout,
		logger,
	)

	go purgeLoop(ctx, authService, logger)

	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// purgeLoop trims expired blacklist records hourly. Purging is a size
// concern, not a correctness one, so failures only log.
func purgeLoop(ctx context.Context, authService *service.AuthService, logger *logrus.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authService.PurgeExpiredTokens(ctx); err != nil {
				logger.WithError(err).Error("blacklist purge failed")
			}
		}
	}
}
