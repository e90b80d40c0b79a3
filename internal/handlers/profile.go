package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/services"
)

type ProfileHandler struct {
  log            *logger.Logger
  profileService services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService) *ProfileHandler {
  return &ProfileHandler{
    log:            log.With("handler", "ProfileHandler"),
    profileService: profileService,
  }
}

// POST /api/v1/profiles
func (h *ProfileHandler) Create(c *gin.Context) {
  var input services.ProfileCreateInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  profile, err := h.profileService.Create(c.Request.Context(), nil, input)
  if err != nil {
    h.log.Error("Create profile failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, profile)
}

// GET /api/v1/profiles/:id
func (h *ProfileHandler) GetByID(c *gin.Context) {
  profileID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
    return
  }
  profile, err := h.profileService.GetByID(c.Request.Context(), nil, profileID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, profile)
}

// PATCH /api/v1/profiles/:id
func (h *ProfileHandler) Update(c *gin.Context) {
  profileID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
    return
  }
  var input services.ProfileUpdateInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  profile, err := h.profileService.Update(c.Request.Context(), nil, profileID, input)
  if err != nil {
    h.log.Error("Update profile failed", "error", err, "profile_id", profileID)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, profile)
}
