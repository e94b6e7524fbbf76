package api

import (
	"net/http"
	"time"

	authdelivery "caresync/internal/auth/delivery"
	authdomain "caresync/internal/auth/domain"
	patientdelivery "caresync/internal/patient/delivery"
	therapistdelivery "caresync/internal/therapist/delivery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const version = "1.0.0"

func (h *Handler) setupRoutes(r *gin.Engine) {
	authHandler := authdelivery.NewAuthHandler(h.authUsecase)
	therapistHandler := therapistdelivery.NewTherapistHandler(h.therapistUsecase)
	patientHandler := patientdelivery.NewPatientHandler(h.patientUsecase)

	r.GET("/", h.index)

	api := r.Group("/api")
	{
		api.GET("/health", h.health)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authdelivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.PATCH("/me", authdelivery.AuthMiddleware(h.authUsecase), authHandler.UpdateMe)
			auth.POST("/logout", authHandler.Logout)
		}

		// Therapist directory (public) and own-profile management (protected)
		therapists := api.Group("/therapists")
		{
			therapists.GET("", therapistHandler.List)
			therapists.PUT("/me",
				authdelivery.AuthMiddleware(h.authUsecase),
				authdelivery.RequireRole(authdomain.RoleTherapist),
				therapistHandler.UpsertMe)
			therapists.GET("/:id", therapistHandler.GetByID)
		}

		// Patient routes (protected, patient-only)
		patients := api.Group("/patients")
		patients.Use(authdelivery.AuthMiddleware(h.authUsecase), authdelivery.RequireRole(authdomain.RolePatient))
		{
			patients.GET("/me", patientHandler.GetMe)
			patients.PUT("/me", patientHandler.UpsertMe)
		}
	}
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "CareSync Backend API is running!",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"health":     "/api/health",
			"auth":       "/api/auth/*",
			"therapists": "/api/therapists",
		},
	})
}

func (h *Handler) health(c *gin.Context) {
	dbStatus := "connected"
	if err := pingDatabase(h.db); err != nil {
		dbStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
		"database":  dbStatus,
	})
}

func pingDatabase(db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
