package schema

import (
	"time"

	"github.com/google/uuid"
)

// Party represents the parties table - suppliers that purchases are made from
type Party struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// Name is the supplier display name
	Name string `gorm:"column:name;not null;type:text"`
	// MobileNo is the contact number
	MobileNo string `gorm:"column:mobile_no;type:text"`
	// City is the supplier's city
	City string `gorm:"column:city;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Party model
func (Party) TableName() string {
	return "parties"
}
