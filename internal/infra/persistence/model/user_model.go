package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(150)"`
	LastName     string    `gorm:"type:varchar(150)"`
	IsVerified   bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	JoinedAt     time.Time `gorm:"autoCreateTime"`

	Profile *UserProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type UserProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Image     string    `gorm:"type:varchar(255)"`
	Bio       string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(20)"`
	BirthDate *time.Time
	Address   string `gorm:"type:varchar(255)"`
	Telegram  string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
