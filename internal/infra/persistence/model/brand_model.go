package model

import (
	"time"

	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
	Logo        string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
