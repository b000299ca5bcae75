package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. The composite unique index on
// (product_id, user_id) guarantees at most one like per user per product and
// backs the toggle's idempotency under concurrent requests.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_product_user"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
