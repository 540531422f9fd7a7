package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school-backend/internal/application/interfaces"
	"school-backend/internal/application/services"
	"school-backend/internal/config"
	delivery "school-backend/internal/delivery/http"
	"school-backend/internal/infrastructure"
	"school-backend/internal/infrastructure/cache"
	"school-backend/internal/infrastructure/db"
	"school-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogDir, "school-backend", cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	conn, err := db.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		appLog.Errorf("connect database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var userCache interfaces.UserCache
	redisCache, err := cache.NewRedisUserCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		appLog.Warnf("redis unavailable, caching disabled: %v", err)
	} else if redisCache != nil {
		userCache = redisCache
		defer redisCache.Close()
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	rateLimiter := infrastructure.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	userService := services.NewUserService(db.NewUserRepository(conn), userCache, jwtService, appLog)
	subjectService := services.NewSubjectService(db.NewSubjectRepository(conn))

	e := delivery.NewRouter(delivery.RouterDeps{
		UserService:    userService,
		SubjectService: subjectService,
		RateLimiter:    rateLimiter,
		Log:            appLog,
	})

	go func() {
		appLog.Infof("server listening on :%s", cfg.HTTPPort)
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Errorf("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLog.Errorf("shutdown: %v", err)
	}
}
