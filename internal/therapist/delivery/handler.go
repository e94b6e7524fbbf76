package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "caresync/internal/auth/delivery"
	therapistdto "caresync/internal/therapist/dto"
	"caresync/internal/therapist/usecase"
	"caresync/pkg/validation"

	"github.com/gin-gonic/gin"
)

type TherapistHandler struct {
	therapistUsecase usecase.TherapistUsecase
}

func NewTherapistHandler(therapistUsecase usecase.TherapistUsecase) *TherapistHandler {
	return &TherapistHandler{
		therapistUsecase: therapistUsecase,
	}
}

func (h *TherapistHandler) List(c *gin.Context) {
	filter := &therapistdto.ListFilter{
		Specialization: c.Query("specialization"),
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		filter.PerPage = perPage
	}
	if v := c.Query("verified"); v != "" {
		if verified, err := strconv.ParseBool(v); err == nil {
			filter.Verified = &verified
		}
	}
	if r := c.Query("min_rating"); r != "" {
		if minRating, err := strconv.ParseFloat(r, 64); err == nil {
			filter.MinRating = minRating
		}
	}

	resp, err := h.therapistUsecase.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TherapistHandler) GetByID(c *gin.Context) {
	profile, err := h.therapistUsecase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTherapistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"therapist": profile})
}

func (h *TherapistHandler) UpsertMe(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req therapistdto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.Messages(err)})
		return
	}

	profile, err := h.therapistUsecase.UpsertOwnProfile(user, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"therapist": profile})
}
