package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Program is one educational offering of an institution. The institution
// association is always preloaded by the catalog repo; scoring reads the
// institution's province off it.
type Program struct {
  ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  InstitutionID  uuid.UUID    `gorm:"type:uuid;not null;column:institution_id" json:"institution_id"`
  Institution    *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
  Name           string       `gorm:"not null;column:name" json:"name"`
  Type           ProgramType  `gorm:"not null;column:type" json:"type"`
  DurationYears  *float64     `gorm:"column:duration_years" json:"duration_years,omitempty"`
  Modality       Modality     `gorm:"not null;column:modality" json:"modality"`
  WeeklyHours    *int         `gorm:"column:weekly_hours" json:"weekly_hours,omitempty"`
  Shift          Shift        `gorm:"column:shift" json:"shift,omitempty"`
  Area           string       `gorm:"not null;column:area" json:"area"`
  WorkCompatible *bool        `gorm:"column:work_compatible" json:"work_compatible,omitempty"`
  Description    string       `gorm:"column:description" json:"description,omitempty"`
  Requirements   string       `gorm:"column:requirements" json:"requirements,omitempty"`
  CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
  UpdatedAt      time.Time    `gorm:"not null" json:"updated_at"`
}

func (Program) TableName() string {
  return "programs"
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}

// InstitutionProvince tolerates a missing preload instead of panicking.
func (p *Program) InstitutionProvince() string {
  if p.Institution == nil {
    return ""
  }
  return p.Institution.Province
}
