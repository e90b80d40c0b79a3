package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Feedback struct {
  ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ProfileID  *uuid.UUID     `gorm:"type:uuid;column:profile_id" json:"profile_id,omitempty"`
  TargetType FeedbackTarget `gorm:"not null;column:target_type" json:"target_type"`
  TargetID   uuid.UUID      `gorm:"type:uuid;not null;column:target_id" json:"target_id"`
  Rating     int            `gorm:"not null;column:rating" json:"rating"`
  Comment    string         `gorm:"column:comment" json:"comment,omitempty"`
  CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (Feedback) TableName() string {
  return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
  if f.ID == uuid.Nil {
    f.ID = uuid.New()
  }
  return nil
}
