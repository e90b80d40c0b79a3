package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// Profile is an anonymous student profile. Every field is optional; scoring
// treats missing answers as "no contribution", never as an error.
type Profile struct {
  ID                 uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
  Province           string                       `gorm:"column:province" json:"province,omitempty"`
  Locality           string                       `gorm:"column:locality" json:"locality,omitempty"`
  WorksWhileStudying WorkWhileStudying            `gorm:"column:works_while_studying" json:"works_while_studying,omitempty"`
  PreferredModality  Modality                     `gorm:"column:preferred_modality" json:"preferred_modality,omitempty"`
  MaxWeeklyHours     *int                         `gorm:"column:max_weekly_hours" json:"max_weekly_hours,omitempty"`
  HasTechnicalDegree *bool                        `gorm:"column:has_technical_degree" json:"has_technical_degree,omitempty"`
  InterestAreas      datatypes.JSONSlice[string]  `gorm:"column:interest_areas" json:"interest_areas,omitempty"`
  CreatedAt          time.Time                    `gorm:"not null" json:"created_at"`
  UpdatedAt          time.Time                    `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string {
  return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}
