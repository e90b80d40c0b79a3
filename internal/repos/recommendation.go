package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type RecommendationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, recommendations []*types.Recommendation) ([]*types.Recommendation, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, recommendationIDs []uuid.UUID) ([]*types.Recommendation, error)
}

type recommendationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
  repoLog := baseLog.With("repo", "RecommendationRepo")
  return &recommendationRepo{db: db, log: repoLog}
}

func (rr *recommendationRepo) Create(ctx context.Context, tx *gorm.DB, recommendations []*types.Recommendation) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if len(recommendations) == 0 {
    return []*types.Recommendation{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&recommendations).Error; err != nil {
    return nil, err
  }

  return recommendations, nil
}

func (rr *recommendationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, recommendationIDs []uuid.UUID) ([]*types.Recommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Recommendation
  if len(recommendationIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", recommendationIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
