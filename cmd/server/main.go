package main

import (
	"ahmadaybb/exercise-tracker/internal/api"
	"ahmadaybb/exercise-tracker/internal/config"
	"ahmadaybb/exercise-tracker/internal/logging"
	"ahmadaybb/exercise-tracker/internal/repository"
	"ahmadaybb/exercise-tracker/internal/repository/memory"
	"ahmadaybb/exercise-tracker/internal/repository/mongo"
	"ahmadaybb/exercise-tracker/internal/service"
	"ahmadaybb/exercise-tracker/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Exercise Tracker API
// @version 1.0
// @description Registers users and records timestamped exercise entries, then serves filtered logs.
// @BasePath /api
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("FATAL: Could not set up logging: %v", err)
	}
	defer logCloser.Close()
	log.Println("Starting Exercise Tracker server...")

	// --- Storage ---
	var (
		userRepo     repository.UserRepository
		exerciseRepo repository.ExerciseRepository
		health       api.HealthCheck
	)
	switch cfg.Database.Driver {
	case "memory":
		log.Println("WARN: Using in-memory storage; data is lost on exit.")
		store := memory.NewStore()
		userRepo, exerciseRepo, health = store.Users(), store.Exercises(), store.Ping
	case "mongo", "":
		dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.Timeout)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Printf("Database connection established (%s).", cfg.Database.Name)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		for collection, err := range mongo.EnsureIndexes(ctx, appDB) {
			log.Printf("WARN: Failed to create indexes for collection %s: %v", collection, err)
		}
		cancel()

		userRepo = mongo.NewMongoUserRepository(appDB)
		exerciseRepo = mongo.NewMongoExerciseRepository(appDB)
		health = func(ctx context.Context) error { return mongo.Ping(ctx, dbClient) }
	default:
		log.Fatalf("FATAL: Unknown database driver %q", cfg.Database.Driver)
	}

	// --- Services ---
	services := api.Services{
		UserService:     service.NewUserService(userRepo),
		ExerciseService: service.NewExerciseService(userRepo, exerciseRepo),
		LogService:      service.NewLogService(userRepo, exerciseRepo),
		Health:          health,
	}
	if cfg.S3.Enabled() {
		objectStore, err := storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		services.ExportService = service.NewExportService(services.LogService, objectStore, cfg.S3.ExportExpiry)
	} else {
		log.Println("Log export disabled (no s3.bucket_name configured).")
	}

	// --- Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, services)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Your app is listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
