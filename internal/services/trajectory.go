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

type TrajectoryListResponse struct {
  Items   []*types.Trajectory `json:"items"`
  Total   int64               `json:"total"`
  Page    int                 `json:"page"`
  PerPage int                 `json:"per_page"`
  Pages   int64               `json:"pages"`
}

type TrajectoryService interface {
  List(ctx context.Context, tx *gorm.DB, filters repos.TrajectoryFilters, page, perPage int) (*TrajectoryListResponse, error)
  GetByID(ctx context.Context, tx *gorm.DB, trajectoryID uuid.UUID) (*types.Trajectory, error)
}

type trajectoryService struct {
  db             *gorm.DB
  log            *logger.Logger
  trajectoryRepo repos.TrajectoryRepo
}

func NewTrajectoryService(db *gorm.DB, baseLog *logger.Logger, trajectoryRepo repos.TrajectoryRepo) TrajectoryService {
  serviceLog := baseLog.With("service", "TrajectoryService")
  return &trajectoryService{db: db, log: serviceLog, trajectoryRepo: trajectoryRepo}
}

func (ts *trajectoryService) List(ctx context.Context, tx *gorm.DB, filters repos.TrajectoryFilters, page, perPage int) (*TrajectoryListResponse, error) {
  page, perPage = clampPagination(page, perPage)

  trajectories, total, err := ts.trajectoryRepo.ListVerified(ctx, tx, filters, page, perPage)
  if err != nil {
    ts.log.Error("List trajectories failed", "error", err)
    return nil, fmt.Errorf("list trajectories: %w", err)
  }

  return &TrajectoryListResponse{
    Items:   trajectories,
    Total:   total,
    Page:    page,
    PerPage: perPage,
    Pages:   pageCount(total, perPage),
  }, nil
}

func (ts *trajectoryService) GetByID(ctx context.Context, tx *gorm.DB, trajectoryID uuid.UUID) (*types.Trajectory, error) {
  trajectories, err := ts.trajectoryRepo.GetByIDs(ctx, tx, []uuid.UUID{trajectoryID})
  if err != nil {
    ts.log.Error("GetByID trajectory failed", "error", err, "trajectory_id", trajectoryID)
    return nil, fmt.Errorf("get trajectory: %w", err)
  }
  if len(trajectories) == 0 || trajectories[0] == nil {
    return nil, apierr.TrajectoryNotFound()
  }
  return trajectories[0], nil
}
