package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
)

// Credential represents the credentials table - login secrets for actors.
// Kept separate from the actor tables so that creating/deleting an actor and
// its credential is one explicit transactional sequence.
type Credential struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// ActorID references the admin/manager/worker this credential belongs to
	ActorID uuid.UUID `gorm:"column:actor_id;type:uuid;not null;uniqueIndex:idx_credentials_actor"`
	// ActorKind tags which actor table ActorID points into
	ActorKind domain.ActorKind `gorm:"column:actor_kind;not null;type:text;uniqueIndex:idx_credentials_actor"`
	// Email is the login email
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// PasswordHash is the bcrypt hash of the password
	PasswordHash string `gorm:"column:password_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}
