package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/services"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type ProgramHandler struct {
  log            *logger.Logger
  programService services.ProgramService
}

func NewProgramHandler(log *logger.Logger, programService services.ProgramService) *ProgramHandler {
  return &ProgramHandler{
    log:            log.With("handler", "ProgramHandler"),
    programService: programService,
  }
}

// GET /api/v1/programs
func (h *ProgramHandler) List(c *gin.Context) {
  filters := repos.ProgramFilters{
    Area:     c.Query("area"),
    Type:     types.ProgramType(c.Query("type")),
    Modality: types.Modality(c.Query("modality")),
    Province: c.Query("province"),
  }
  if raw := c.Query("work_compatible"); raw != "" {
    value, err := strconv.ParseBool(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_work_compatible", err)
      return
    }
    filters.WorkCompatible = &value
  }
  if raw := c.Query("max_duration"); raw != "" {
    value, err := strconv.ParseFloat(raw, 64)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_max_duration", err)
      return
    }
    filters.MaxDuration = &value
  }

  page := queryInt(c, "page", 1)
  perPage := queryInt(c, "per_page", services.DefaultPerPage)

  listing, err := h.programService.List(c.Request.Context(), nil, filters, page, perPage)
  if err != nil {
    h.log.Error("List programs failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, listing)
}

// GET /api/v1/programs/:id
func (h *ProgramHandler) GetByID(c *gin.Context) {
  programID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_program_id", err)
    return
  }
  program, err := h.programService.GetByID(c.Request.Context(), nil, programID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, program)
}

func queryInt(c *gin.Context, key string, defaultVal int) int {
  raw := c.Query(key)
  if raw == "" {
    return defaultVal
  }
  value, err := strconv.Atoi(raw)
  if err != nil {
    return defaultVal
  }
  return value
}
