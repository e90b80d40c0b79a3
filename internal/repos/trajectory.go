package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

// TrajectoryFilters narrows a trajectory listing. Zero values mean "no filter".
type TrajectoryFilters struct {
  Outcome types.Outcome
  Tags    []string
  Area    string
}

type TrajectoryRepo interface {
  Create(ctx context.Context, tx *gorm.DB, trajectories []*types.Trajectory) ([]*types.Trajectory, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, trajectoryIDs []uuid.UUID) ([]*types.Trajectory, error)
  // GetVerifiedByProgramID returns at most limit verified trajectories linked
  // to the program, in insertion order.
  GetVerifiedByProgramID(ctx context.Context, tx *gorm.DB, programID uuid.UUID, limit int) ([]*types.Trajectory, error)
  ListVerified(ctx context.Context, tx *gorm.DB, filters TrajectoryFilters, page, perPage int) ([]*types.Trajectory, int64, error)
}

type trajectoryRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTrajectoryRepo(db *gorm.DB, baseLog *logger.Logger) TrajectoryRepo {
  repoLog := baseLog.With("repo", "TrajectoryRepo")
  return &trajectoryRepo{db: db, log: repoLog}
}

func (tr *trajectoryRepo) Create(ctx context.Context, tx *gorm.DB, trajectories []*types.Trajectory) ([]*types.Trajectory, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(trajectories) == 0 {
    return []*types.Trajectory{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&trajectories).Error; err != nil {
    return nil, err
  }

  return trajectories, nil
}

func (tr *trajectoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, trajectoryIDs []uuid.UUID) ([]*types.Trajectory, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Trajectory
  if len(trajectoryIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("Program").
    Preload("Program.Institution").
    Where("id IN ?", trajectoryIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *trajectoryRepo) GetVerifiedByProgramID(ctx context.Context, tx *gorm.DB, programID uuid.UUID, limit int) ([]*types.Trajectory, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Trajectory
  query := transaction.WithContext(ctx).
    Where("program_id = ?", programID).
    Where("is_verified = ?", true).
    Order("created_at ASC")
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *trajectoryRepo) ListVerified(ctx context.Context, tx *gorm.DB, filters TrajectoryFilters, page, perPage int) ([]*types.Trajectory, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Trajectory{}).
    Where("is_verified = ?", true)
  if filters.Outcome != "" {
    query = query.Where("outcome = ?", filters.Outcome)
  }
  if filters.Area != "" {
    query = query.Joins("JOIN programs ON programs.id = trajectories.program_id").
      Where("programs.area = ?", filters.Area)
  }

  // Tag overlap is applied in memory: tags live in a JSON column and the
  // overlap operator differs between postgres and the sqlite test driver.
  if len(filters.Tags) > 0 {
    var all []*types.Trajectory
    if err := query.
      Preload("Program").
      Order("trajectories.created_at ASC").
      Find(&all).Error; err != nil {
      return nil, 0, err
    }
    matched := make([]*types.Trajectory, 0, len(all))
    for _, trajectory := range all {
      if overlapsTags(trajectory, filters.Tags) {
        matched = append(matched, trajectory)
      }
    }
    total := int64(len(matched))
    start := (page - 1) * perPage
    if start >= len(matched) {
      return []*types.Trajectory{}, total, nil
    }
    end := start + perPage
    if end > len(matched) {
      end = len(matched)
    }
    return matched[start:end], total, nil
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Trajectory
  offset := (page - 1) * perPage
  if err := query.
    Preload("Program").
    Order("trajectories.created_at ASC").
    Offset(offset).
    Limit(perPage).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func overlapsTags(trajectory *types.Trajectory, tags []string) bool {
  for _, tag := range tags {
    if trajectory.HasTag(tag) {
      return true
    }
  }
  return false
}
