package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gemveer/inventory/internal/domain"
)

// TransferRecord represents the transfer_records table - one custody handover
// of a packet. Records are append-only; a cancelled transfer is marked via
// CancelByID rather than deleted.
type TransferRecord struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// TransactionNo is the human-facing transfer number, unique per record
	TransactionNo string `gorm:"column:transaction_no;not null;uniqueIndex;type:text"`
	// ChainID references the custody chain this record belongs to
	ChainID uuid.UUID `gorm:"column:chain_id;type:uuid;not null;uniqueIndex:idx_transfer_records_chain_seq"`
	// Seq is the position of this record within its chain, starting at 1
	Seq int `gorm:"column:seq;not null;uniqueIndex:idx_transfer_records_chain_seq"`
	// PacketNo denormalizes the chain's packet number for listing queries
	PacketNo string `gorm:"column:packet_no;not null;index;type:text"`
	// ProcessID references the process the packet was handed over for
	ProcessID *uuid.UUID `gorm:"column:process_id;type:uuid"`

	// FromID references the actor releasing custody
	FromID uuid.UUID `gorm:"column:from_id;type:uuid;not null;index"`
	// FromKind tags which actor table FromID points into
	FromKind domain.ActorKind `gorm:"column:from_kind;not null;type:text"`
	// ToID references the actor receiving custody
	ToID uuid.UUID `gorm:"column:to_id;type:uuid;not null;index"`
	// ToKind tags which actor table ToID points into
	ToKind domain.ActorKind `gorm:"column:to_kind;not null;type:text"`

	// PrevWeight is the packet weight before the handover
	PrevWeight *float64 `gorm:"column:prev_weight"`
	// NewWeight is the packet weight after the handover
	NewWeight *float64 `gorm:"column:new_weight"`
	// Grading is a snapshot of the packet's grading attributes at handover
	Grading datatypes.JSON `gorm:"column:grading;type:jsonb"`
	// CancelByID references the actor who cancelled this transfer, if any
	CancelByID *uuid.UUID `gorm:"column:cancel_by_id;type:uuid"`

	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Process *Process `gorm:"foreignKey:ProcessID"`
}

// TableName specifies the table name for the TransferRecord model
func (TransferRecord) TableName() string {
	return "transfer_records"
}
