package schema

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents the admins table - administrative users with unrestricted access
type Admin struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// Username is the display name
	Username string `gorm:"column:username;not null;type:text"`
	// Email is the login email
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
