package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
)

// Purchase represents the purchases table - a lot bought from a supplier,
// later split into packets. Pieces caps how many packets may be attached.
type Purchase struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// PurchaseType is roughPurchase or rejectionPurchase
	PurchaseType domain.PurchaseType `gorm:"column:purchase_type;not null;type:text"`
	// PartyID references the supplier the lot was bought from
	PartyID *uuid.UUID `gorm:"column:party_id;type:uuid;index"`
	// JanganNo is the supplier's lot number, unique across purchases
	JanganNo string `gorm:"column:jangan_no;not null;uniqueIndex;type:text"`
	// StoneID references the stone kind in lookup_values
	StoneID *uuid.UUID `gorm:"column:stone_id;type:uuid"`
	// Rate is the purchase rate per carat
	Rate float64 `gorm:"column:rate"`
	// Duration is the payment term in days
	Duration int `gorm:"column:duration"`
	// Pieces is the declared number of packets in the lot. Attaching more
	// packets than this fails.
	Pieces int `gorm:"column:pieces;not null"`
	// TotalWeight is the declared carat weight of the lot
	TotalWeight float64 `gorm:"column:total_weight"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Party   *Party   `gorm:"foreignKey:PartyID"`
	Stone   *LookupValue `gorm:"foreignKey:StoneID"`
	Packets []Packet `gorm:"foreignKey:PurchaseID"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
