package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-attendance-log/config"
	"go-gin-attendance-log/internal/cache"
	"go-gin-attendance-log/internal/database"
	"go-gin-attendance-log/internal/handler"
	"go-gin-attendance-log/internal/notify"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/internal/repository"
	"go-gin-attendance-log/internal/service"
	"go-gin-attendance-log/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	defer logger.L.Sync()

	cfg := config.LoadConfig()
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone", zap.String("timezone", cfg.Server.Timezone), zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	feed, err := queue.NewChangeFeed(cfg.Feed.Backend, rdb, &queue.RedisStreamChangeFeedConfig{
		ReadBlockTime: cfg.Feed.BlockTime,
		MaxLen:        cfg.Feed.MaxLen,
	})
	if err != nil {
		log.Fatal("Invalid feed backend", zap.String("backend", cfg.Feed.Backend), zap.Error(err))
	}

	eventService := service.NewEventService(eventRepo, cache.NewRedisEventSnapshotCache(rdb, cfg.Cache.SnapshotTTL), feed)
	authService := service.NewAuthService(userRepo, cache.NewRedisSessionStore(rdb), cache.NewRedisTokenStore(rdb), notify.NewLogMailer(), cfg.Auth)

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(authService).RegisterRoutes(router)
	handler.NewEventHandler(eventService, authService, feed, location).RegisterRoutes(router)
	handler.NewStatsHandler(eventService, authService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
