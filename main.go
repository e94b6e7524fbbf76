package main

import (
	"log"

	api "caresync/cmd/api"
	authdomain "caresync/internal/auth/domain"
	authRepo "caresync/internal/auth/repository"
	authUsecase "caresync/internal/auth/usecase"
	patientdomain "caresync/internal/patient/domain"
	patientRepo "caresync/internal/patient/repository"
	patientUsecase "caresync/internal/patient/usecase"
	therapistdomain "caresync/internal/therapist/domain"
	therapistRepo "caresync/internal/therapist/repository"
	therapistUsecase "caresync/internal/therapist/usecase"
	"caresync/pkg/config"
	"caresync/pkg/database"
	"caresync/pkg/logger"
	"caresync/pkg/ratelimit"
	"caresync/pkg/redis"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(logger.Config{
		Environment: cfg.Environment,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zl.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &therapistdomain.TherapistProfile{}, &patientdomain.PatientProfile{}); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis backs token revocation and rate limiting
	redisClient, err := redis.NewClient(cfg.RedisURL, zl)
	if err != nil {
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	revocationRepository := authRepo.NewTokenRevocationRepository(redisClient)
	therapistRepository := therapistRepo.NewTherapistRepository(db)
	patientRepository := patientRepo.NewPatientRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, revocationRepository, cfg, zl)
	therapistUsecaseInstance := therapistUsecase.NewTherapistUsecase(therapistRepository, userRepository, zl)
	patientUsecaseInstance := patientUsecase.NewPatientUsecase(patientRepository, userRepository, zl)

	limiter := ratelimit.NewRedisStore(redisClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, therapistUsecaseInstance, patientUsecaseInstance, limiter, cfg, db, zl)

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
