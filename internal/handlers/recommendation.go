package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/services"
)

type RecommendationHandler struct {
  log    *logger.Logger
  recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{
    log:    log.With("handler", "RecommendationHandler"),
    recSvc: recSvc,
  }
}

type generateRequest struct {
  ProfileID uuid.UUID `json:"profile_id" binding:"required"`
  Limit     int       `json:"limit"`
}

// POST /api/v1/recommendations
// Scores the full catalog against the profile and persists the result.
func (h *RecommendationHandler) Generate(c *gin.Context) {
  var body generateRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  recommendation, err := h.recSvc.Generate(c.Request.Context(), nil, body.ProfileID, body.Limit)
  if err != nil {
    h.log.Error("Generate recommendation failed", "error", err, "profile_id", body.ProfileID)
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, recommendation)
}

// GET /api/v1/recommendations/:id
// Returns a stored recommendation with display fields resolved live.
func (h *RecommendationHandler) GetByID(c *gin.Context) {
  recommendationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_recommendation_id", err)
    return
  }
  recommendation, err := h.recSvc.GetByID(c.Request.Context(), nil, recommendationID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, recommendation)
}
