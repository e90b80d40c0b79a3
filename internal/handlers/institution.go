package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/services"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type InstitutionHandler struct {
  log                *logger.Logger
  institutionService services.InstitutionService
}

func NewInstitutionHandler(log *logger.Logger, institutionService services.InstitutionService) *InstitutionHandler {
  return &InstitutionHandler{
    log:                log.With("handler", "InstitutionHandler"),
    institutionService: institutionService,
  }
}

// GET /api/v1/institutions
func (h *InstitutionHandler) List(c *gin.Context) {
  filters := repos.InstitutionFilters{
    Province: c.Query("province"),
    Type:     types.InstitutionType(c.Query("type")),
  }

  page := queryInt(c, "page", 1)
  perPage := queryInt(c, "per_page", services.DefaultPerPage)

  listing, err := h.institutionService.List(c.Request.Context(), nil, filters, page, perPage)
  if err != nil {
    h.log.Error("List institutions failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, listing)
}

// GET /api/v1/institutions/:id
func (h *InstitutionHandler) GetByID(c *gin.Context) {
  institutionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_institution_id", err)
    return
  }
  institution, err := h.institutionService.GetByID(c.Request.Context(), nil, institutionID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, institution)
}
