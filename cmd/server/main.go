package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/internal/utils"
	"github.com/devfolio/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, env vars win over config.yaml either way
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Server.LogLevel)
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Errorf("failed to connect database: %v", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorf("failed to migrate database: %v", err)
		os.Exit(1)
	}
	if err := models.SeedDefaultData(); err != nil {
		logger.Errorf("failed to seed default data: %v", err)
		os.Exit(1)
	}

	db := models.GetDB()
	services.InitSystemLogger(db)
	cleanupCron := services.StartLogCleanupScheduler(db)

	// Notification pipeline: contact submissions are queued (Redis when
	// available, inline otherwise) and fanned out to email and Telegram.
	notifier := services.NewNotificationService(db, &cfg.Telegram)
	queue := services.InitTaskQueue(cfg)
	if syncQueue, ok := queue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notifier.ProcessNotifyTask)
	} else if worker := services.InitWorker(&cfg.Redis); worker != nil {
		worker.SetProcessor(notifier.ProcessNotifyTask)
		if err := worker.Start(); err != nil {
			logger.Errorf("failed to start worker: %v", err)
			os.Exit(1)
		}
	}

	authHandler := handlers.NewAuthHandler(db, cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Errorf("failed to ensure admin user: %v", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.Mode)
	r := setupRouter(cfg, authHandler)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Infof("devfolio backend listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}

	if worker := services.GetWorker(); worker != nil {
		worker.Stop()
	}
	if err := queue.Close(); err != nil {
		logger.Warnf("task queue close: %v", err)
	}
	cleanupCron.Stop()
	logger.Infof("shutdown complete")
}
