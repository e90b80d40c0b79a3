package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/services"
)

type FeedbackHandler struct {
  log             *logger.Logger
  feedbackService services.FeedbackService
}

func NewFeedbackHandler(log *logger.Logger, feedbackService services.FeedbackService) *FeedbackHandler {
  return &FeedbackHandler{
    log:             log.With("handler", "FeedbackHandler"),
    feedbackService: feedbackService,
  }
}

// POST /api/v1/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
  var input services.FeedbackCreateInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  feedback, err := h.feedbackService.Create(c.Request.Context(), nil, input)
  if err != nil {
    h.log.Error("Create feedback failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, feedback)
}
