package schema

import (
	"time"

	"github.com/google/uuid"
)

// WorkingType identifies how a worker is paid
type WorkingType string

const (
	// WorkingTypePerJem pays per processed stone
	WorkingTypePerJem WorkingType = "perJem"
	// WorkingTypeFixedSalary pays a fixed monthly salary
	WorkingTypeFixedSalary WorkingType = "FixedSalary"
)

// Worker represents the workers table - shop-floor employees who receive
// packets from their manager.
type Worker struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// FirstName is the given name
	FirstName string `gorm:"column:first_name;not null;type:text"`
	// LastName is the family name
	LastName string `gorm:"column:last_name;type:text"`
	// ShortName is an optional unique abbreviation
	ShortName *string `gorm:"column:short_name;type:text;uniqueIndex"`
	// Email is the login email
	Email *string `gorm:"column:email;type:text;uniqueIndex"`
	// MobileNo is the contact number
	MobileNo string `gorm:"column:mobile_no;not null;type:text"`
	// Gender is Male, Female or Other
	Gender  string  `gorm:"column:gender;type:text"`
	Address Address `gorm:"embedded"`
	// ManagerID references the supervising manager. The visibility filter
	// expands a manager's scope through this column.
	ManagerID uuid.UUID `gorm:"column:manager_id;type:uuid;not null;index"`
	// WorkingType selects the pay scheme
	WorkingType WorkingType `gorm:"column:working_type;not null;type:text"`
	// Salary is the fixed monthly salary (FixedSalary workers only)
	Salary *float64 `gorm:"column:salary"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Manager   Manager   `gorm:"foreignKey:ManagerID"`
	Processes []Process `gorm:"many2many:worker_processes"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}
