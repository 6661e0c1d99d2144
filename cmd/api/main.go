package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Alllfr/snap-journal/internal/config"
	"github.com/Alllfr/snap-journal/internal/db"
	"github.com/Alllfr/snap-journal/internal/handlers"
	"github.com/Alllfr/snap-journal/internal/media"
	"github.com/Alllfr/snap-journal/internal/middleware"
	"github.com/Alllfr/snap-journal/internal/session"
	"github.com/Alllfr/snap-journal/internal/store"
	"github.com/Alllfr/snap-journal/web"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize PostgreSQL
	postgresDB, err := db.InitPostgres()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer postgresDB.Close()

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Media storage root and background offloader
	storage, err := media.NewStorage(cfg.StorageRoot)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	journals := store.NewPGJournals(postgresDB, redisClient)
	sessions := session.NewManager(redisClient, postgresDB)

	offloader := media.NewOffloader(journals, storage, logger)
	offloadCron, err := offloader.Start(cfg.OffloadSchedule)
	if err != nil {
		log.Fatalf("Failed to start media offloader: %v", err)
	}

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.SetHTMLTemplate(web.Templates())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(postgresDB, sessions, logger)
	journalHandler := handlers.NewJournalHandler(journals, logger)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/journals")
	})

	// Auth surface
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Protected journal routes
	journalsGroup := router.Group("/journals")
	journalsGroup.Use(middleware.SessionMiddleware(sessions))
	{
		journalsGroup.GET("", journalHandler.ListJournals)
		journalsGroup.GET("/create", journalHandler.ShowCreateForm)
		journalsGroup.POST("", journalHandler.CreateJournal)
		journalsGroup.GET("/:id/edit", journalHandler.ShowEditForm)
		journalsGroup.PUT("/:id", journalHandler.UpdateJournal)
		journalsGroup.DELETE("/:id", journalHandler.DeleteJournal)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Widget assets and persisted media
	router.StaticFS("/static", web.StaticFS())
	router.Static("/storage", storage.Root())

	// Create HTTP server; the method-override wrapper lets HTML forms reach
	// the PUT and DELETE routes
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.MethodOverride(router),
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	offloadCron.Stop()

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}
