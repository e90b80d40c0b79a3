package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type FeedbackRepo interface {
  Create(ctx context.Context, tx *gorm.DB, entries []*types.Feedback) ([]*types.Feedback, error)
}

type feedbackRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) FeedbackRepo {
  repoLog := baseLog.With("repo", "FeedbackRepo")
  return &feedbackRepo{db: db, log: repoLog}
}

func (fr *feedbackRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.Feedback) ([]*types.Feedback, error) {
  transaction := tx
  if transaction == nil {
    transaction = fr.db
  }

  if len(entries) == 0 {
    return []*types.Feedback{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
    return nil, err
  }

  return entries, nil
}
