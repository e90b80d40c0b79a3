package services

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/rumbo-app/orientation-backend/internal/apierr"
  "github.com/rumbo-app/orientation-backend/internal/logger"
  "github.com/rumbo-app/orientation-backend/internal/repos"
  "github.com/rumbo-app/orientation-backend/internal/types"
)

type FeedbackCreateInput struct {
  ProfileID  *uuid.UUID           `json:"profile_id"`
  TargetType types.FeedbackTarget `json:"target_type"`
  TargetID   uuid.UUID            `json:"target_id"`
  Rating     int                  `json:"rating"`
  Comment    string               `json:"comment"`
}

type FeedbackResponse struct {
  ID        uuid.UUID `json:"id"`
  CreatedAt time.Time `json:"created_at"`
  Message   string    `json:"message"`
}

type FeedbackService interface {
  Create(ctx context.Context, tx *gorm.DB, input FeedbackCreateInput) (*FeedbackResponse, error)
}

type feedbackService struct {
  db           *gorm.DB
  log          *logger.Logger
  feedbackRepo repos.FeedbackRepo
}

func NewFeedbackService(db *gorm.DB, baseLog *logger.Logger, feedbackRepo repos.FeedbackRepo) FeedbackService {
  serviceLog := baseLog.With("service", "FeedbackService")
  return &feedbackService{db: db, log: serviceLog, feedbackRepo: feedbackRepo}
}

func (fs *feedbackService) Create(ctx context.Context, tx *gorm.DB, input FeedbackCreateInput) (*FeedbackResponse, error) {
  if !input.TargetType.Valid() {
    return nil, apierr.New(http.StatusBadRequest, "invalid_target_type", errors.New("invalid target_type value"))
  }
  if input.TargetID == uuid.Nil {
    return nil, apierr.New(http.StatusBadRequest, "missing_target_id", errors.New("target_id is required"))
  }
  if input.Rating < 1 || input.Rating > 5 {
    return nil, apierr.New(http.StatusBadRequest, "invalid_rating", errors.New("rating must be between 1 and 5"))
  }

  now := time.Now().UTC()
  feedback := &types.Feedback{
    ID:         uuid.New(),
    ProfileID:  input.ProfileID,
    TargetType: input.TargetType,
    TargetID:   input.TargetID,
    Rating:     input.Rating,
    Comment:    input.Comment,
    CreatedAt:  now,
    UpdatedAt:  now,
  }
  if _, err := fs.feedbackRepo.Create(ctx, tx, []*types.Feedback{feedback}); err != nil {
    fs.log.Error("Create feedback failed", "error", err)
    return nil, fmt.Errorf("create feedback: %w", err)
  }

  return &FeedbackResponse{
    ID:        feedback.ID,
    CreatedAt: feedback.CreatedAt,
    Message:   "Thanks for your feedback!",
  }, nil
}
