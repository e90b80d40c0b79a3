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

const (
  DefaultPerPage = 20
  MaxPerPage     = 100
)

type ProgramListResponse struct {
  Items   []*types.Program `json:"items"`
  Total   int64            `json:"total"`
  Page    int              `json:"page"`
  PerPage int              `json:"per_page"`
  Pages   int64            `json:"pages"`
}

type ProgramService interface {
  List(ctx context.Context, tx *gorm.DB, filters repos.ProgramFilters, page, perPage int) (*ProgramListResponse, error)
  GetByID(ctx context.Context, tx *gorm.DB, programID uuid.UUID) (*types.Program, error)
}

type programService struct {
  db          *gorm.DB
  log         *logger.Logger
  programRepo repos.ProgramRepo
}

func NewProgramService(db *gorm.DB, baseLog *logger.Logger, programRepo repos.ProgramRepo) ProgramService {
  serviceLog := baseLog.With("service", "ProgramService")
  return &programService{db: db, log: serviceLog, programRepo: programRepo}
}

func (ps *programService) List(ctx context.Context, tx *gorm.DB, filters repos.ProgramFilters, page, perPage int) (*ProgramListResponse, error) {
  page, perPage = clampPagination(page, perPage)

  programs, total, err := ps.programRepo.List(ctx, tx, filters, page, perPage)
  if err != nil {
    ps.log.Error("List programs failed", "error", err)
    return nil, fmt.Errorf("list programs: %w", err)
  }

  return &ProgramListResponse{
    Items:   programs,
    Total:   total,
    Page:    page,
    PerPage: perPage,
    Pages:   pageCount(total, perPage),
  }, nil
}

func (ps *programService) GetByID(ctx context.Context, tx *gorm.DB, programID uuid.UUID) (*types.Program, error) {
  programs, err := ps.programRepo.GetByIDs(ctx, tx, []uuid.UUID{programID})
  if err != nil {
    ps.log.Error("GetByID program failed", "error", err, "program_id", programID)
    return nil, fmt.Errorf("get program: %w", err)
  }
  if len(programs) == 0 || programs[0] == nil {
    return nil, apierr.ProgramNotFound()
  }
  return programs[0], nil
}

func clampPagination(page, perPage int) (int, int) {
  if page < 1 {
    page = 1
  }
  if perPage < 1 {
    perPage = DefaultPerPage
  }
  if perPage > MaxPerPage {
    perPage = MaxPerPage
  }
  return page, perPage
}

func pageCount(total int64, perPage int) int64 {
  return (total + int64(perPage) - 1) / int64(perPage)
}
