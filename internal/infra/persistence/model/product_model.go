package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Deleting a brand nulls the
// reference instead of cascading, so orphaned products stay listed.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrandID     *uuid.UUID      `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Ram         string          `gorm:"type:varchar(10)"`
	Color       string          `gorm:"type:varchar(30)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand  *BrandModel         `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Images []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. The image column holds
// the storage key, not a URL.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Image     string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
