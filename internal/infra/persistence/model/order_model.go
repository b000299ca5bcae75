package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. TotalPrice is a persisted snapshot,
// never recomputed from the product row on read.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null;default:1;check:quantity > 0"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
