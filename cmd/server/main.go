package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/emma-alert/emma-broker/pkg/broker"
	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/config"
	emmaHttp "github.com/emma-alert/emma-broker/pkg/http"
)

func main() {
	// .env is a development convenience, production reads the real environment
	if err := godotenv.Load(); err != nil && common.IsDevelopment() {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	configPath := strings.TrimSpace(os.Getenv(common.EnvKeyMonitorConfig))
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Invalid configuration: " + err.Error())
	}

	logger := common.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	brokerCore, err := broker.New(ctx, broker.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}

	var limiterStore *broker.RateLimiterStore
	if cfg.Ingest.LimiterEnabled() {
		limiterStore = broker.NewRateLimiterStore(rate.Limit(cfg.Ingest.Rate), cfg.Ingest.Burst)
	}

	ms := &emmaHttp.MonitorServer{
		Server:           gin.Default(),
		Broker:           brokerCore,
		RateLimiterStore: limiterStore,
	}
	ms.Setup()

	if limiterStore != nil {
		logger.Info("http monitor created with:",
			zap.String("ingest_limiter",
				fmt.Sprintf("{\"rate\": %v, \"burst\": %v}", cfg.Ingest.Rate, cfg.Ingest.Burst)))
	} else {
		logger.Info("http monitor created without ingest rate limiting")
	}

	srv := &http.Server{
		Addr:    cfg.Monitor.HostPort,
		Handler: ms.Server,
	}

	go func() {
		logger.Info("Starting HTTP monitor on: " + cfg.Monitor.HostPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http monitor failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("Shutting down HTTP monitor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http monitor shutdown: " + err.Error())
	}

	brokerCore.Cleanup()
}
