package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/cache"
	"github.com/syedhisham/live-courses-frontend/internal/config"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/session"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest"
	"github.com/syedhisham/live-courses-frontend/internal/transport/ws"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	logrus.Infof("backend API: %s", cfg.BackendURL)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("Failed to ping Redis: %v", err)
	}
	logrus.Info("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()

	// Backend API client and storage uploader
	api := backend.NewClient(cfg.BackendURL)
	uploader := backend.NewUploader()

	// Session identity cache
	identities := cache.NewIdentityCache(rdb, cfg.SessionTTL)
	sessions := session.NewProvider(identities)

	// Toast stores, pushed to the browser via the hub
	toasts := notify.NewRegistry(ws.ToastListenerFactory(wsHub))

	// Initialize services
	authSvc := service.NewAuthService(api, sessions, cfg.JWTSecret, cfg.SessionTTL)
	catalogSvc := service.NewCatalogService(api)
	paymentSvc := service.NewPaymentService(api)
	sessionSvc := service.NewLiveSessionService(api)
	wizardSvc := service.NewWizardService(api, uploader, sessionSvc, toasts)
	wizardSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:    authSvc,
		CatalogService: catalogSvc,
		PaymentService: paymentSvc,
		SessionService: sessionSvc,
		WizardService:  wizardSvc,
		Toasts:         toasts,
		WSHub:          wsHub,
		CookieName:     cfg.CookieName,
		CookieTTL:      cfg.SessionTTL,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logrus.Infof("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
