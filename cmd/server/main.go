package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arkagme/meeting-room-api/internal/application"
	"github.com/arkagme/meeting-room-api/internal/config"
	bookingDomain "github.com/arkagme/meeting-room-api/internal/domain/booking"
	"github.com/arkagme/meeting-room-api/internal/handler"
	"github.com/arkagme/meeting-room-api/internal/platform/database"
	"github.com/arkagme/meeting-room-api/internal/platform/health"
	"github.com/arkagme/meeting-room-api/internal/platform/kafka"
	"github.com/arkagme/meeting-room-api/internal/platform/logger"
	"github.com/arkagme/meeting-room-api/internal/platform/middleware"
	"github.com/arkagme/meeting-room-api/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "meeting-room-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting meeting-room-api",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	// Bootstrap schema and seed data
	if err := db.AutoMigrate(
		&repository.UserModel{},
		&repository.RoomModel{},
		&repository.BookingModel{},
	); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}
	log.Info("database schema ready")

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	// Initialize application services
	clock := bookingDomain.SystemClock{}
	bookingService := application.NewBookingService(
		bookingRepo,
		roomRepo,
		userRepo,
		clock,
		kafkaProducer,
		log,
	)
	roomService := application.NewRoomService(roomRepo, bookingRepo, log)
	userService := application.NewUserService(userRepo, kafkaProducer, log)

	// Seed the fixed room set on first start
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := roomService.SeedDefaultRooms(seedCtx); err != nil {
		seedCancel()
		log.Fatal("failed to seed rooms", zap.Error(err))
	}
	seedCancel()

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Meeting Room Booking API")
	})

	// Register health check routes
	healthHandler := health.NewHandler(db, "meeting-room-api")
	healthHandler.RegisterRoutes(router)

	// Register routes
	authHandler.RegisterRoutes(&router.RouterGroup)
	roomHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down meeting-room-api...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("meeting-room-api stopped")
}
