package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Institution struct {
  ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string          `gorm:"not null;column:name" json:"name"`
  ShortName string          `gorm:"column:short_name" json:"short_name,omitempty"`
  Type      InstitutionType `gorm:"not null;column:type" json:"type"`
  Province  string          `gorm:"not null;column:province" json:"province"`
  City      string          `gorm:"column:city" json:"city,omitempty"`
  Website   string          `gorm:"column:website" json:"website,omitempty"`
  IsPublic  bool            `gorm:"not null;default:true;column:is_public" json:"is_public"`
  CreatedAt time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (Institution) TableName() string {
  return "institutions"
}

func (i *Institution) BeforeCreate(tx *gorm.DB) error {
  if i.ID == uuid.Nil {
    i.ID = uuid.New()
  }
  return nil
}
