package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

// ProgramFilters narrows a catalog listing. Zero values mean "no filter".
type ProgramFilters struct {
  Area           string
  Type           types.ProgramType
  Modality       types.Modality
  WorkCompatible *bool
  MaxDuration    *float64
  Province       string
}

type ProgramRepo interface {
  Create(ctx context.Context, tx *gorm.DB, programs []*types.Program) ([]*types.Program, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, programIDs []uuid.UUID) ([]*types.Program, error)
  // ListAll returns the full catalog in one read, institutions preloaded.
  ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Program, error)
  List(ctx context.Context, tx *gorm.DB, filters ProgramFilters, page, perPage int) ([]*types.Program, int64, error)
}

type programRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProgramRepo(db *gorm.DB, baseLog *logger.Logger) ProgramRepo {
  repoLog := baseLog.With("repo", "ProgramRepo")
  return &programRepo{db: db, log: repoLog}
}

func (pr *programRepo) Create(ctx context.Context, tx *gorm.DB, programs []*types.Program) ([]*types.Program, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(programs) == 0 {
    return []*types.Program{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&programs).Error; err != nil {
    return nil, err
  }

  return programs, nil
}

func (pr *programRepo) GetByIDs(ctx context.Context, tx *gorm.DB, programIDs []uuid.UUID) ([]*types.Program, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Program
  if len(programIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("Institution").
    Where("id IN ?", programIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *programRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Program, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Program
  if err := transaction.WithContext(ctx).
    Preload("Institution").
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *programRepo) List(ctx context.Context, tx *gorm.DB, filters ProgramFilters, page, perPage int) ([]*types.Program, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Program{})
  if filters.Area != "" {
    query = query.Where("area = ?", filters.Area)
  }
  if filters.Type != "" {
    query = query.Where("type = ?", filters.Type)
  }
  if filters.Modality != "" {
    query = query.Where("modality = ?", filters.Modality)
  }
  if filters.WorkCompatible != nil {
    query = query.Where("work_compatible = ?", *filters.WorkCompatible)
  }
  if filters.MaxDuration != nil {
    query = query.Where("duration_years <= ?", *filters.MaxDuration)
  }
  if filters.Province != "" {
    query = query.Joins("JOIN institutions ON institutions.id = programs.institution_id").
      Where("institutions.province = ?", filters.Province)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Program
  offset := (page - 1) * perPage
  if err := query.
    Preload("Institution").
    Order("programs.created_at ASC").
    Offset(offset).
    Limit(perPage).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
