package handlers

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/services"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type TrajectoryHandler struct {
  log               *logger.Logger
  trajectoryService services.TrajectoryService
}

func NewTrajectoryHandler(log *logger.Logger, trajectoryService services.TrajectoryService) *TrajectoryHandler {
  return &TrajectoryHandler{
    log:               log.With("handler", "TrajectoryHandler"),
    trajectoryService: trajectoryService,
  }
}

// GET /api/v1/trajectories
func (h *TrajectoryHandler) List(c *gin.Context) {
  filters := repos.TrajectoryFilters{
    Outcome: types.Outcome(c.Query("outcome")),
    Area:    c.Query("area"),
  }
  if raw := c.Query("tags"); raw != "" {
    for _, tag := range strings.Split(raw, ",") {
      tag = strings.TrimSpace(tag)
      if tag != "" {
        filters.Tags = append(filters.Tags, tag)
      }
    }
  }

  page := queryInt(c, "page", 1)
  perPage := queryInt(c, "per_page", services.DefaultPerPage)

  listing, err := h.trajectoryService.List(c.Request.Context(), nil, filters, page, perPage)
  if err != nil {
    h.log.Error("List trajectories failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, listing)
}

// GET /api/v1/trajectories/:id
func (h *TrajectoryHandler) GetByID(c *gin.Context) {
  trajectoryID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_trajectory_id", err)
    return
  }
  trajectory, err := h.trajectoryService.GetByID(c.Request.Context(), nil, trajectoryID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, trajectory)
}
