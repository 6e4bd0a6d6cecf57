package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
)

// LookupValue represents the lookup_values table - master data rows for the
// grading attribute tables (shape, color, purity, cut, polish, symmetry,
// fluorescence, table, stone), unified under a kind column.
type LookupValue struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// Kind identifies which attribute table this row belongs to
	Kind domain.LookupKind `gorm:"column:kind;not null;type:text;uniqueIndex:idx_lookup_values_kind_name"`
	// Name is the display value (e.g. "Round", "VVS1", "D")
	Name string `gorm:"column:name;not null;type:text;uniqueIndex:idx_lookup_values_kind_name"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the LookupValue model
func (LookupValue) TableName() string {
	return "lookup_values"
}
