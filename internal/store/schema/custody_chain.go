package schema

import (
	"time"

	"github.com/google/uuid"
)

// CustodyChain represents the custody_chains table - one row per packet
// number that has ever been transferred. Transfer records append to the chain
// in sequence order; the chain row itself never mutates beyond updated_at.
type CustodyChain struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// PacketNo is the packet number this chain tracks, unique per chain
	PacketNo string `gorm:"column:packet_no;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when the first transfer was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the last transfer was appended
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Transfers []TransferRecord `gorm:"foreignKey:ChainID"`
}

// TableName specifies the table name for the CustodyChain model
func (CustodyChain) TableName() string {
	return "custody_chains"
}
