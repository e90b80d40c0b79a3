package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/rumbo-app/orientation-backend/internal/apierr"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type InstitutionListResponse struct {
  Items   []*types.Institution `json:"items"`
  Total   int64                `json:"total"`
  Page    int                  `json:"page"`
  PerPage int                  `json:"per_page"`
  Pages   int64                `json:"pages"`
}

type InstitutionService interface {
  List(ctx context.Context, tx *gorm.DB, filters repos.InstitutionFilters, page, perPage int) (*InstitutionListResponse, error)
  GetByID(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) (*types.Institution, error)
}

type institutionService struct {
  db              *gorm.DB
  log             *logger.Logger
  institutionRepo repos.InstitutionRepo
}

func NewInstitutionService(db *gorm.DB, baseLog *logger.Logger, institutionRepo repos.InstitutionRepo) InstitutionService {
  serviceLog := baseLog.With("service", "InstitutionService")
  return &institutionService{db: db, log: serviceLog, institutionRepo: institutionRepo}
}

func (is *institutionService) List(ctx context.Context, tx *gorm.DB, filters repos.InstitutionFilters, page, perPage int) (*InstitutionListResponse, error) {
  page, perPage = clampPagination(page, perPage)

  institutions, total, err := is.institutionRepo.List(ctx, tx, filters, page, perPage)
  if err != nil {
    is.log.Error("List institutions failed", "error", err)
    return nil, fmt.Errorf("list institutions: %w", err)
  }

  return &InstitutionListResponse{
    Items:   institutions,
    Total:   total,
    Page:    page,
    PerPage: perPage,
    Pages:   pageCount(total, perPage),
  }, nil
}

func (is *institutionService) GetByID(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) (*types.Institution, error) {
  institutions, err := is.institutionRepo.GetByIDs(ctx, tx, []uuid.UUID{institutionID})
  if err != nil {
    is.log.Error("GetByID institution failed", "error", err, "institution_id", institutionID)
    return nil, fmt.Errorf("get institution: %w", err)
  }
  if len(institutions) == 0 || institutions[0] == nil {
    return nil, apierr.InstitutionNotFound()
  }
  return institutions[0], nil
}
