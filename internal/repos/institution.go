package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

// InstitutionFilters narrows an institution listing. Zero values mean "no filter".
type InstitutionFilters struct {
  Province string
  Type     types.InstitutionType
}

type InstitutionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, institutions []*types.Institution) ([]*types.Institution, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, institutionIDs []uuid.UUID) ([]*types.Institution, error)
  List(ctx context.Context, tx *gorm.DB, filters InstitutionFilters, page, perPage int) ([]*types.Institution, int64, error)
}

type institutionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewInstitutionRepo(db *gorm.DB, baseLog *logger.Logger) InstitutionRepo {
  repoLog := baseLog.With("repo", "InstitutionRepo")
  return &institutionRepo{db: db, log: repoLog}
}

func (ir *institutionRepo) Create(ctx context.Context, tx *gorm.DB, institutions []*types.Institution) ([]*types.Institution, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  if len(institutions) == 0 {
    return []*types.Institution{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&institutions).Error; err != nil {
    return nil, err
  }

  return institutions, nil
}

func (ir *institutionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, institutionIDs []uuid.UUID) ([]*types.Institution, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var results []*types.Institution
  if len(institutionIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", institutionIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ir *institutionRepo) List(ctx context.Context, tx *gorm.DB, filters InstitutionFilters, page, perPage int) ([]*types.Institution, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  query := transaction.WithContext(ctx).Model(&types.Institution{})
  if filters.Province != "" {
    query = query.Where("province = ?", filters.Province)
  }
  if filters.Type != "" {
    query = query.Where("type = ?", filters.Type)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Institution
  offset := (page - 1) * perPage
  if err := query.
    Order("created_at ASC").
    Offset(offset).
    Limit(perPage).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
