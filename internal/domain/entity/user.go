package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID          int       `gorm:"not null;index" json:"role_id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"type:text;not null" json:"-"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	ThemePreference string    `gorm:"type:varchar(20);default:'light'" json:"theme_preference"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// IsActive reports whether the user account may log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
