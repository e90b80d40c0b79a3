package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// Trajectory is an anonymized "life story" of a former student, optionally
// linked to the program they took. Only verified trajectories are ever shown
// or matched.
type Trajectory struct {
  ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
  ProgramID    *uuid.UUID                  `gorm:"type:uuid;column:program_id" json:"program_id,omitempty"`
  Program      *Program                    `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
  Title        string                      `gorm:"not null;column:title" json:"title"`
  Summary      string                      `gorm:"not null;column:summary" json:"summary"`
  Story        string                      `gorm:"not null;column:story" json:"story"`
  Challenges   string                      `gorm:"column:challenges" json:"challenges,omitempty"`
  Alternatives string                      `gorm:"column:alternatives" json:"alternatives,omitempty"`
  Outcome      Outcome                     `gorm:"not null;column:outcome" json:"outcome"`
  Tags         datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags,omitempty"`
  Context      datatypes.JSONMap           `gorm:"column:context" json:"context,omitempty"`
  YearStarted  *int                        `gorm:"column:year_started" json:"year_started,omitempty"`
  IsVerified   bool                        `gorm:"not null;default:false;column:is_verified" json:"is_verified"`
  CreatedAt    time.Time                   `gorm:"not null" json:"created_at"`
  UpdatedAt    time.Time                   `gorm:"not null" json:"updated_at"`
}

func (Trajectory) TableName() string {
  return "trajectories"
}

func (t *Trajectory) BeforeCreate(tx *gorm.DB) error {
  if t.ID == uuid.Nil {
    t.ID = uuid.New()
  }
  return nil
}

func (t *Trajectory) HasTag(tag string) bool {
  for _, existing := range t.Tags {
    if existing == tag {
      return true
    }
  }
  return false
}

// ContextBool reads an optional boolean out of the free-form context map.
func (t *Trajectory) ContextBool(key string) bool {
  if t.Context == nil {
    return false
  }
  val, ok := t.Context[key].(bool)
  return ok && val
}

// ContextString reads an optional string out of the free-form context map.
func (t *Trajectory) ContextString(key string) string {
  if t.Context == nil {
    return ""
  }
  val, _ := t.Context[key].(string)
  return val
}
