package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgehero/backend/internal/domain"
)

// RecommendationUsecase is the slice of the recommendation service the
// handler needs; narrowed to an interface so tests can stub it
type RecommendationUsecase interface {
	Recommend(ctx context.Context, householdID string, opts domain.RecommendOptions) ([]*domain.MatchResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations RecommendationUsecase
}

// recommendRequest is the JSON body of a recommendation call
type recommendRequest struct {
	HouseholdID         string   `json:"householdId" binding:"required"`
	MaxResults          int      `json:"maxResults,omitempty"`
	MinMatchScore       float64  `json:"minMatchScore,omitempty"`
	UrgencyFocus        bool     `json:"urgencyFocus,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
}

// NewHandler creates a new HTTP handler
func NewHandler(recommendations RecommendationUsecase) *Handler {
	return &Handler{recommendations: recommendations}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fridgehero-backend",
		"version": "1.0.0",
	})
}

// Recommend handles recipe recommendation requests
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	opts := domain.RecommendOptions{
		MaxResults:          req.MaxResults,
		MinMatchScore:       req.MinMatchScore,
		UrgencyFocus:        req.UrgencyFocus,
		DietaryRestrictions: req.DietaryRestrictions,
	}

	results, err := h.recommendations.Recommend(c.Request.Context(), req.HouseholdID, opts)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// An empty list is a valid outcome of a sparse pantry, not an error
	if results == nil {
		results = []*domain.MatchResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrHouseholdNotFound), errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrBackendFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
