package schema

import (
	"time"

	"github.com/google/uuid"
)

// Process represents the processes table - manufacturing steps a packet can
// be assigned under (e.g. "Laser Cutting", "Polishing").
type Process struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// Name is the process display name
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Process model
func (Process) TableName() string {
	return "processes"
}
