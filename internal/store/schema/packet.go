package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
)

// Packet represents the packets table - a parcel of rough or polished stones
// tracked through the manufacturing workflow. Grading attributes reference
// rows in lookup_values.
type Packet struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// PacketNo is the human-facing packet number, unique across the system
	PacketNo string `gorm:"column:packet_no;not null;uniqueIndex;type:text"`
	// StockWeight is the current carat weight in stock
	StockWeight float64 `gorm:"column:stock_weight;not null"`
	// PolishWeight is the expected carat weight after polishing
	PolishWeight float64 `gorm:"column:polish_weight"`
	// Pieces is the number of stones in the packet
	Pieces int `gorm:"column:pieces;not null;default:1"`

	// Grading attribute references into lookup_values
	ShapeID        *uuid.UUID `gorm:"column:shape_id;type:uuid"`
	ColorID        *uuid.UUID `gorm:"column:color_id;type:uuid"`
	PurityID       *uuid.UUID `gorm:"column:purity_id;type:uuid"`
	CutID          *uuid.UUID `gorm:"column:cut_id;type:uuid"`
	PolishID       *uuid.UUID `gorm:"column:polish_id;type:uuid"`
	SymmetryID     *uuid.UUID `gorm:"column:symmetry_id;type:uuid"`
	FluorescenceID *uuid.UUID `gorm:"column:fluorescence_id;type:uuid"`
	TableID        *uuid.UUID `gorm:"column:table_id;type:uuid"`

	// Discount is the percentage discount off the Rapaport rate
	Discount float64 `gorm:"column:discount"`
	// RapoRate is the Rapaport list rate per carat
	RapoRate float64 `gorm:"column:rapo_rate"`
	// Rate is the effective rate per carat after discount
	Rate float64 `gorm:"column:rate"`
	// EstValue is the estimated value of the packet
	EstValue float64 `gorm:"column:est_value"`
	// PurchaseRate is the rate the packet was purchased at
	PurchaseRate float64 `gorm:"column:purchase_rate"`

	// Status is hold until the packet enters the workflow, then active
	Status domain.PacketStatus `gorm:"column:status;not null;type:text;default:'hold'"`
	// CurrentOwnerID references the actor currently holding the packet
	CurrentOwnerID *uuid.UUID `gorm:"column:current_owner_id;type:uuid;index"`
	// OwnerKind tags which actor table CurrentOwnerID points into
	OwnerKind domain.ActorKind `gorm:"column:owner_kind;type:text"`
	// PurchaseID references the purchase this packet was split from
	PurchaseID *uuid.UUID `gorm:"column:purchase_id;type:uuid;index"`

	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Shape        *LookupValue `gorm:"foreignKey:ShapeID"`
	Color        *LookupValue `gorm:"foreignKey:ColorID"`
	Purity       *LookupValue `gorm:"foreignKey:PurityID"`
	Cut          *LookupValue `gorm:"foreignKey:CutID"`
	Polish       *LookupValue `gorm:"foreignKey:PolishID"`
	Symmetry     *LookupValue `gorm:"foreignKey:SymmetryID"`
	Fluorescence *LookupValue `gorm:"foreignKey:FluorescenceID"`
	Table        *LookupValue `gorm:"foreignKey:TableID"`
}

// TableName specifies the table name for the Packet model
func (Packet) TableName() string {
	return "packets"
}
