package schema

import (
	"time"

	"github.com/google/uuid"
)

// Address holds the postal address fields shared by managers and workers
type Address struct {
	PermanentAddress string `gorm:"column:permanent_address;type:text" json:"permanentAddress"`
	PinCode          string `gorm:"column:pin_code;type:text" json:"pinCode"`
	City             string `gorm:"column:city;type:text" json:"city"`
	State            string `gorm:"column:state;type:text" json:"state"`
}

// Manager represents the managers table. A manager owns packets directly and
// supervises a set of workers; the one-hop worker set defines the manager's
// visibility scope.
type Manager struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// FirstName is the given name
	FirstName string `gorm:"column:first_name;not null;type:text"`
	// LastName is the family name
	LastName string `gorm:"column:last_name;type:text"`
	// ShortName is an optional unique abbreviation used on packet labels
	ShortName *string `gorm:"column:short_name;type:text;uniqueIndex"`
	// Email is the login email (nullable; a manager without credentials cannot log in)
	Email *string `gorm:"column:email;type:text;uniqueIndex"`
	// MobileNo is the contact number
	MobileNo string `gorm:"column:mobile_no;not null;type:text"`
	// Gender is Male, Female or Other
	Gender  string  `gorm:"column:gender;type:text"`
	Address Address `gorm:"embedded"`
	// Salary is the fixed monthly salary
	Salary *float64 `gorm:"column:salary"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Workers []Worker `gorm:"foreignKey:ManagerID"`
}

// TableName specifies the table name for the Manager model
func (Manager) TableName() string {
	return "managers"
}
