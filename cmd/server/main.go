package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yolku/staffing-backend/internal/cache"
	"github.com/yolku/staffing-backend/internal/config"
	"github.com/yolku/staffing-backend/internal/database"
	"github.com/yolku/staffing-backend/internal/fixtures"
	"github.com/yolku/staffing-backend/internal/handlers"
	"github.com/yolku/staffing-backend/internal/middleware"
	"github.com/yolku/staffing-backend/internal/services"
	"github.com/yolku/staffing-backend/pkg/jwt"
	"github.com/yolku/staffing-backend/pkg/sanitize"
	"github.com/yolku/staffing-backend/pkg/validator"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Yolku Staffing Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(middleware.RequestLogger(logger))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")

	if cfg.Server.DemoMode {
		// Demo deployments serve the discovery endpoints from the seeded
		// fixture store. No database, no accounts, no cache.
		logger.Warn("Demo mode enabled, serving fixture data without a database")

		store := fixtures.DemoStore()
		discoveryService := services.NewDiscoveryService(store, nil, logger)
		positionHandler := handlers.NewPositionHandler(discoveryService, logger)

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"mode":      "demo",
				"version":   version,
				"timestamp": time.Now().Unix(),
			})
		})

		registerDiscoveryRoutes(v1, positionHandler)

		runServer(router, cfg, logger)
		return
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories need *sqlx.DB for named queries and struct scanning
	sqlxDB, ok := db.(*database.PostgresDB)
	if !ok {
		logger.Fatal("Failed to cast database connection to PostgresDB")
	}

	// Initialize the states cache. An empty Redis URL disables it.
	var stateCache *cache.StateCache
	if cfg.Redis.URL != "" {
		stateCache, err = cache.NewStateCache(cfg.Redis.URL, cfg.Redis.StateTTL, logger)
		if err != nil {
			logger.WithError(err).Warn("States cache disabled, continuing without Redis")
			stateCache = nil
		} else {
			defer stateCache.Close()
			logger.Info("States cache enabled")
		}
	}

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	phoneValidator := validator.NewPhoneValidator()
	cleaner := sanitize.NewCleaner()
	workerRepository := database.NewWorkerRepository(sqlxDB.DB)
	facilityRepository := database.NewFacilityRepository(sqlxDB.DB)
	positionRepository := database.NewPositionRepository(sqlxDB.DB)
	discoveryService := services.NewDiscoveryService(positionRepository, stateCache, logger)
	logger.Info("Services initialized")

	// Initialize handlers
	positionHandler := handlers.NewPositionHandler(discoveryService, logger)
	authHandler := handlers.NewAuthHandler(
		workerRepository,
		jwtService,
		phoneValidator,
		cfg.Security.BcryptCost,
		logger,
	)
	facilityHandler := handlers.NewFacilityHandler(
		facilityRepository,
		positionRepository,
		jwtService,
		phoneValidator,
		cleaner,
		stateCache,
		cfg.Security.BcryptCost,
		logger,
	)

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// Worker-facing discovery (public)
	registerDiscoveryRoutes(v1, positionHandler)

	// Worker accounts
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.POST("/verify", middleware.RequireWorker(jwtService), authHandler.Verify)
	}

	users := v1.Group("/users")
	users.Use(middleware.RequireWorker(jwtService))
	{
		users.GET("/profile", authHandler.GetProfile)
		users.PUT("/profile", authHandler.UpdateProfile)
	}

	// Facility accounts and console
	facilities := v1.Group("/facilities")
	{
		facilities.POST("/signup", facilityHandler.Signup)
		facilities.POST("/signin", facilityHandler.Signin)

		console := facilities.Group("")
		console.Use(middleware.RequireFacility(jwtService))
		{
			console.GET("/profile", facilityHandler.GetProfile)
			console.PUT("/profile", facilityHandler.UpdateProfile)
			console.GET("/positions", facilityHandler.ListPositions)
			console.POST("/positions", facilityHandler.CreatePosition)
			console.GET("/positions/:id", facilityHandler.GetPosition)
			console.PUT("/positions/:id", facilityHandler.UpdatePosition)
			console.DELETE("/positions/:id", facilityHandler.DeletePosition)
		}
	}

	runServer(router, cfg, logger)
}

// registerDiscoveryRoutes mounts the public position discovery endpoints.
// The static states route is registered before the id wildcard.
func registerDiscoveryRoutes(v1 *gin.RouterGroup, positionHandler *handlers.PositionHandler) {
	positions := v1.Group("/positions")
	{
		positions.GET("", positionHandler.ListPositions)
		positions.GET("/states/list", positionHandler.ListStates)
		positions.GET("/:id", positionHandler.GetPosition)
	}
}

func runServer(router *gin.Engine, cfg *config.Config, logger *logrus.Logger) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// healthCheckHandler reports service and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
