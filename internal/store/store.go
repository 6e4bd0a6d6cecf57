package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store/schema"
)

// RecordTransferInput bundles everything needed to append one custody
// handover to a packet's chain.
type RecordTransferInput struct {
	// TransactionNo is the pre-generated transfer number
	TransactionNo string
	// PacketNo identifies the chain the record appends to
	PacketNo string
	// ProcessID is the process the packet is handed over for, if any
	ProcessID *uuid.UUID
	// FromID and FromKind identify the releasing actor
	FromID   uuid.UUID
	FromKind domain.ActorKind
	// ToID and ToKind identify the receiving actor
	ToID   uuid.UUID
	ToKind domain.ActorKind
	// PrevWeight and NewWeight bracket the handover, if measured
	PrevWeight *float64
	NewWeight  *float64
	// Grading is a snapshot of the packet's grading attributes
	Grading datatypes.JSON
}

// CreateManagerInput bundles a manager row with its optional login password
type CreateManagerInput struct {
	Manager schema.Manager
	// PasswordHash is the bcrypt hash to store as the manager's credential.
	// Empty means the manager has no login.
	PasswordHash string
}

// CreateWorkerInput bundles a worker row with its process assignments and
// optional login password
type CreateWorkerInput struct {
	Worker schema.Worker
	// ProcessIDs are the processes the worker is assigned to
	ProcessIDs []uuid.UUID
	// PasswordHash is the bcrypt hash to store as the worker's credential.
	// Empty means the worker has no login.
	PasswordHash string
}

// ListTransfersFilter narrows a transfer listing. A nil ActorIDs means no
// actor restriction; callers enforcing visibility pass the allowed set.
type ListTransfersFilter struct {
	// ActorIDs restricts to records where either side is in the set
	ActorIDs []uuid.UUID
	// PacketNo restricts to a single packet's records
	PacketNo string
	// Offset and Limit paginate the result
	Offset int
	Limit  int
}

// ListPacketsFilter narrows a packet listing. A nil OwnerIDs means no owner
// restriction; callers enforcing visibility pass the allowed set.
type ListPacketsFilter struct {
	// OwnerIDs restricts to packets currently held by one of the actors
	OwnerIDs []uuid.UUID
	// Status restricts to a single packet status
	Status domain.PacketStatus
	// PurchaseID restricts to packets split from one purchase
	PurchaseID *uuid.UUID
	// Offset and Limit paginate the result
	Offset int
	Limit  int
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// Store defines the interface for database operations
type Store interface {
	// GetAdminByID retrieves an admin by its ID
	GetAdminByID(ctx context.Context, id uuid.UUID) (*schema.Admin, error)
	// GetManagerByID retrieves a manager by its ID
	GetManagerByID(ctx context.Context, id uuid.UUID) (*schema.Manager, error)
	// GetWorkerByID retrieves a worker by its ID
	GetWorkerByID(ctx context.Context, id uuid.UUID) (*schema.Worker, error)
	// GetWorkerIDsByManagerID retrieves the IDs of a manager's direct workers
	GetWorkerIDsByManagerID(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)

	// CreateManager creates a manager and its credential in one transaction
	CreateManager(ctx context.Context, input CreateManagerInput) (*schema.Manager, error)
	// UpdateManager applies the given column updates to a manager
	UpdateManager(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// DeleteManager deletes a manager and its credential in one transaction
	DeleteManager(ctx context.Context, id uuid.UUID) error
	// ListManagers retrieves all managers
	ListManagers(ctx context.Context, offset, limit int) ([]*schema.Manager, error)

	// CreateWorker creates a worker, its process assignments and its
	// credential in one transaction
	CreateWorker(ctx context.Context, input CreateWorkerInput) (*schema.Worker, error)
	// UpdateWorker applies the given column updates to a worker
	UpdateWorker(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// DeleteWorker deletes a worker, its process assignments and its
	// credential in one transaction
	DeleteWorker(ctx context.Context, id uuid.UUID) error
	// ListWorkers retrieves workers, optionally restricted to the given
	// managers. A nil managerIDs means no restriction.
	ListWorkers(ctx context.Context, managerIDs []uuid.UUID, offset, limit int) ([]*schema.Worker, error)

	// CreateAdmin creates an admin and its credential in one transaction
	CreateAdmin(ctx context.Context, admin schema.Admin, passwordHash string) (*schema.Admin, error)
	// GetCredentialByEmail retrieves a credential by its login email
	GetCredentialByEmail(ctx context.Context, email string) (*schema.Credential, error)

	// RecordTransfer appends one handover to the packet's custody chain,
	// creating the chain if it does not exist, and moves the packet to the
	// receiving actor, all in one transaction
	RecordTransfer(ctx context.Context, input RecordTransferInput) (*schema.TransferRecord, error)
	// GetCustodyChainByPacketNo retrieves a chain with its records in
	// sequence order
	GetCustodyChainByPacketNo(ctx context.Context, packetNo string) (*schema.CustodyChain, error)
	// GetTransferByTransactionNo retrieves a single transfer record
	GetTransferByTransactionNo(ctx context.Context, transactionNo string) (*schema.TransferRecord, error)
	// ListTransfers retrieves transfer records matching the filter, newest
	// first
	ListTransfers(ctx context.Context, filter ListTransfersFilter) ([]*schema.TransferRecord, error)
	// CancelTransfer marks a transfer record as cancelled by the given actor
	CancelTransfer(ctx context.Context, transactionNo string, byID uuid.UUID) error

	// CreatePacket creates a packet
	CreatePacket(ctx context.Context, packet *schema.Packet) error
	// GetPacketByID retrieves a packet by its ID
	GetPacketByID(ctx context.Context, id uuid.UUID) (*schema.Packet, error)
	// GetPacketByPacketNo retrieves a packet by its packet number
	GetPacketByPacketNo(ctx context.Context, packetNo string) (*schema.Packet, error)
	// UpdatePacket applies the given column updates to a packet
	UpdatePacket(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// DeletePacket deletes a packet. Its custody chain survives.
	DeletePacket(ctx context.Context, id uuid.UUID) error
	// ListPackets retrieves packets matching the filter, newest first
	ListPackets(ctx context.Context, filter ListPacketsFilter) ([]*schema.Packet, error)

	// CreatePurchase creates a purchase
	CreatePurchase(ctx context.Context, purchase *schema.Purchase) error
	// GetPurchaseByID retrieves a purchase with its party, stone and packets
	GetPurchaseByID(ctx context.Context, id uuid.UUID) (*schema.Purchase, error)
	// UpdatePurchase applies the given column updates to a purchase
	UpdatePurchase(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// DeletePurchase deletes a purchase. Packets split from it survive.
	DeletePurchase(ctx context.Context, id uuid.UUID) error
	// ListPurchases retrieves purchases, newest first
	ListPurchases(ctx context.Context, offset, limit int) ([]*schema.Purchase, error)
	// AddPacketsToPurchase attaches packets to a purchase, enforcing the
	// purchase's declared piece count, in one transaction
	AddPacketsToPurchase(ctx context.Context, purchaseID uuid.UUID, packets []*schema.Packet) error

	// CreateLookupValue creates a lookup value
	CreateLookupValue(ctx context.Context, value *schema.LookupValue) error
	// ListLookupValues retrieves all lookup values of a kind
	ListLookupValues(ctx context.Context, kind domain.LookupKind) ([]*schema.LookupValue, error)
	// GetLookupValuesByIDs retrieves lookup values by their IDs
	GetLookupValuesByIDs(ctx context.Context, ids []uuid.UUID) ([]*schema.LookupValue, error)
	// DeleteLookupValue deletes a lookup value
	DeleteLookupValue(ctx context.Context, id uuid.UUID) error

	// CreateProcess creates a process
	CreateProcess(ctx context.Context, process *schema.Process) error
	// ListProcesses retrieves all processes
	ListProcesses(ctx context.Context) ([]*schema.Process, error)
	// DeleteProcess deletes a process
	DeleteProcess(ctx context.Context, id uuid.UUID) error

	// CreateParty creates a party
	CreateParty(ctx context.Context, party *schema.Party) error
	// ListParties retrieves all parties
	ListParties(ctx context.Context) ([]*schema.Party, error)
}
