package api

import (
	"net/http"

	authUsecase "caresync/internal/auth/usecase"
	patientUsecase "caresync/internal/patient/usecase"
	therapistUsecase "caresync/internal/therapist/usecase"
	"caresync/pkg/config"
	"caresync/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	therapistUsecase therapistUsecase.TherapistUsecase
	patientUsecase   patientUsecase.PatientUsecase
	limiter          ratelimit.CounterStore
	config           *config.Config
	db               *gorm.DB
	log              *zap.Logger
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	therapistUc therapistUsecase.TherapistUsecase,
	patientUc patientUsecase.PatientUsecase,
	limiter ratelimit.CounterStore,
	cfg *config.Config,
	db *gorm.DB,
	log *zap.Logger,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		therapistUsecase: therapistUc,
		patientUsecase:   patientUc,
		limiter:          limiter,
		config:           cfg,
		db:               db,
		log:              log.With(zap.String("module", "api")),
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.requestLogger())
	r.Use(corsMiddleware())

	if h.limiter != nil {
		r.Use(ratelimit.Middleware(h.limiter, h.config.RateLimitRequests, h.config.RateLimitWindow))
	}

	h.setupRoutes(r)

	return r.Run(addr)
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			h.log.Error("request failed", fields...)
		} else {
			h.log.Info("request", fields...)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
