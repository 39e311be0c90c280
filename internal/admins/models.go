package admins

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account that manages routes, buses, and trips.
type Admin struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string    `json:"-" gorm:"not null"` // hide in json
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name for Admin
func (Admin) TableName() string {
	return "admin_users"
}
