package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ggpradas-dev/blog-project/internal/config"
	"github.com/ggpradas-dev/blog-project/internal/handler"
	"github.com/ggpradas-dev/blog-project/internal/infrastructure/database"
	"github.com/ggpradas-dev/blog-project/internal/infrastructure/storage"
	"github.com/ggpradas-dev/blog-project/internal/logger"
	"github.com/ggpradas-dev/blog-project/internal/metrics"
	"github.com/ggpradas-dev/blog-project/internal/middleware"
	"github.com/ggpradas-dev/blog-project/internal/repository"
	"github.com/ggpradas-dev/blog-project/internal/service"
	"github.com/ggpradas-dev/blog-project/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Connect to object storage
	imageStorage, err := storage.NewS3ImageStorage(context.Background(), storage.S3Config{
		Endpoint:     cfg.StorageEndpoint,
		Region:       cfg.StorageRegion,
		Bucket:       cfg.StorageBucket,
		AccessKey:    cfg.StorageAccessKey,
		SecretKey:    cfg.StorageSecretKey,
		UsePathStyle: cfg.StorageUsePathStyle,
		KeyPrefix:    cfg.StorageKeyPrefix,
	})
	if err != nil {
		logger.Fatal("Failed to create object storage client",
			slog.String("error", err.Error()))
	}
	if err := imageStorage.EnsureBucket(context.Background()); err != nil {
		logger.Fatal("Failed to ensure storage bucket",
			slog.String("bucket", cfg.StorageBucket),
			slog.String("error", err.Error()))
	}

	// Initialize repository
	articleRepo := repository.NewPostgresArticleRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, imageStorage, v, cfg.SignedURLTTL)

	reconciler := service.NewReconciler(articleRepo, imageStorage, cfg.ReconcileDeleteOrphans)
	if cfg.ReconcileInterval > 0 {
		reconciler.Start(cfg.ReconcileInterval)
		defer reconciler.Stop()
	}

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, cfg.MaxUploadSize)
	healthHandler := handler.NewHealthHandler(pool, imageStorage)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Article routes
	router.POST("/articulo-nuevo", articleHandler.CreateArticle)
	router.GET("/articulos", articleHandler.ListArticles)
	router.GET("/articulos/:limit", articleHandler.ListArticles)
	router.GET("/articulo/:id", articleHandler.GetArticle)
	router.PUT("/articulo/:id", articleHandler.UpdateArticle)
	router.DELETE("/articulo/:id", articleHandler.DeleteArticle)
	router.POST("/nueva-imagen/:id", articleHandler.UploadImage)
	router.GET("/image/:file", articleHandler.GetImage)
	router.GET("/search/:term", articleHandler.SearchArticles)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
