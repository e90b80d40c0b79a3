package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// Recommendation is the persisted snapshot of one generation run. Programs
// holds the self-describing JSON payload (program id, frozen score, reasons,
// matched trajectories); display fields are re-resolved on read, never stored.
type Recommendation struct {
  ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ProfileID uuid.UUID      `gorm:"type:uuid;not null;column:profile_id" json:"profile_id"`
  Programs  datatypes.JSON `gorm:"not null;column:programs" json:"programs"`
  CreatedAt time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (Recommendation) TableName() string {
  return "recommendations"
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
  if r.ID == uuid.Nil {
    r.ID = uuid.New()
  }
  return nil
}
