package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tayaudrey222/yumstation/config"
	"github.com/tayaudrey222/yumstation/internal/api"
	"github.com/tayaudrey222/yumstation/internal/auth"
	"github.com/tayaudrey222/yumstation/internal/broker"
	"github.com/tayaudrey222/yumstation/internal/messaging"
	"github.com/tayaudrey222/yumstation/internal/redisclient"
	"github.com/tayaudrey222/yumstation/internal/service"
	"github.com/tayaudrey222/yumstation/internal/store"
	"github.com/tayaudrey222/yumstation/internal/util"
	"github.com/tayaudrey222/yumstation/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting yumstation")

	tp, err := util.InitTracer("yumstation", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.MenuTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)
	whatsapp := messaging.NewWhatsApp(cfg.Business.WhatsAppPhone)
	tokens := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	auditor := service.NewAuditor(db)
	catalogService := service.NewCatalogService(db, redisClient)
	orderService := service.NewOrderService(db, eventPublisher, whatsapp)
	inventoryService := service.NewInventoryService(db, redisClient, eventPublisher)
	lifecycleService := service.NewLifecycleService(db, inventoryService, auditor, eventPublisher)
	adminService := service.NewAdminService(db, auditor, tokens)
	statsService := service.NewStatsService(db)

	ctx := context.Background()
	if err := catalogService.SeedIfEmpty(ctx); err != nil {
		log.Printf("Failed to seed catalog: %v", err)
	}
	if err := inventoryService.SyncToMirror(ctx); err != nil {
		log.Printf("Failed to sync inventory to Redis: %v", err)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	notifierConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder, cfg.Kafka.ConsumerGroup)
	notifierWorker := worker.NewNotifierWorker(notifierConsumer, whatsapp)
	go func() {
		if err := notifierWorker.Start(workerCtx); err != nil {
			log.Printf("Notifier worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(catalogService, orderService, lifecycleService, inventoryService, adminService, statsService, auditor, tokens)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	notifierWorker.Stop()

	log.Println("Server exited")
}
