package executor

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/identity"
	"github.com/gemveer/inventory/internal/messaging"
	"github.com/gemveer/inventory/internal/packetnum"
	"github.com/gemveer/inventory/internal/store"
)

// Executor is the interface for the API executor. It owns all business
// logic; handlers only parse transport concerns and delegate here.
type Executor interface {
	// Login verifies credentials and mints a session token
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// RecordTransfer appends a custody handover after resolving both parties
	RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*dto.RecordTransferResponse, error)
	// GetHistory returns the full custody history of a packet, subject to
	// the requester's visibility
	GetHistory(ctx context.Context, requester domain.Requester, packetNo string) (*dto.HistoryResponse, error)
	// GetTransfer returns a single transfer record, subject to visibility
	GetTransfer(ctx context.Context, requester domain.Requester, transactionNo string) (*dto.TransferResponse, error)
	// ListTransfers returns the transfers visible to the requester
	ListTransfers(ctx context.Context, requester domain.Requester, offset, limit int) (*dto.TransferListResponse, error)
	// CancelTransfer marks a transfer as cancelled by the requester
	CancelTransfer(ctx context.Context, requester domain.Requester, transactionNo string) error

	// CreatePacket creates a standalone packet
	CreatePacket(ctx context.Context, requester domain.Requester, req dto.CreatePacketRequest) (*dto.PacketResponse, error)
	// GetPacketByNo returns a single packet; a requester outside the
	// packet's visibility gets a forbidden error, not a not-found
	GetPacketByNo(ctx context.Context, requester domain.Requester, packetNo string) (*dto.PacketResponse, error)
	// UpdatePacket applies a partial update to a packet
	UpdatePacket(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdatePacketRequest) (*dto.PacketResponse, error)
	// DeletePacket deletes a packet; its custody chain survives
	DeletePacket(ctx context.Context, requester domain.Requester, id uuid.UUID) error
	// ListPackets returns the packets visible to the requester
	ListPackets(ctx context.Context, requester domain.Requester, status domain.PacketStatus, offset, limit int) (*dto.PacketListResponse, error)

	// CreatePurchase creates a purchase lot
	CreatePurchase(ctx context.Context, requester domain.Requester, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	// GetPurchase returns a purchase with its packets
	GetPurchase(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.PurchaseResponse, error)
	// UpdatePurchase applies a partial update to a purchase
	UpdatePurchase(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error)
	// ListPurchases returns all purchases
	ListPurchases(ctx context.Context, requester domain.Requester, offset, limit int) (*dto.PurchaseListResponse, error)
	// DeletePurchase deletes a purchase; attached packets survive
	DeletePurchase(ctx context.Context, requester domain.Requester, id uuid.UUID) error
	// AddPacketsToPurchase creates packets under a purchase, stamped with
	// the requester as initial owner
	AddPacketsToPurchase(ctx context.Context, requester domain.Requester, purchaseID uuid.UUID, req dto.AddPacketsRequest) (*dto.PacketListResponse, error)

	// CreateManager creates a manager and optionally its login credential
	CreateManager(ctx context.Context, requester domain.Requester, req dto.CreateManagerRequest) (*dto.ManagerResponse, error)
	// GetManager returns a single manager
	GetManager(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.ManagerResponse, error)
	// UpdateManager applies a partial update to a manager
	UpdateManager(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdateManagerRequest) (*dto.ManagerResponse, error)
	// DeleteManager deletes a manager and its credential
	DeleteManager(ctx context.Context, requester domain.Requester, id uuid.UUID) error
	// ListManagers returns all managers
	ListManagers(ctx context.Context, requester domain.Requester, offset, limit int) ([]*dto.ManagerResponse, error)

	// CreateWorker creates a worker, its process assignments and optionally
	// its login credential
	CreateWorker(ctx context.Context, requester domain.Requester, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	// GetWorker returns a single worker
	GetWorker(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.WorkerResponse, error)
	// UpdateWorker applies a partial update to a worker
	UpdateWorker(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdateWorkerRequest) (*dto.WorkerResponse, error)
	// DeleteWorker deletes a worker and its credential
	DeleteWorker(ctx context.Context, requester domain.Requester, id uuid.UUID) error
	// ListWorkers returns the workers visible to the requester
	ListWorkers(ctx context.Context, requester domain.Requester, offset, limit int) ([]*dto.WorkerResponse, error)

	// CreateLookupValue creates one lookup table row
	CreateLookupValue(ctx context.Context, requester domain.Requester, kind domain.LookupKind, req dto.CreateLookupValueRequest) (*dto.LookupValueResponse, error)
	// ListLookupValues returns all rows of one lookup table
	ListLookupValues(ctx context.Context, kind domain.LookupKind) ([]dto.LookupValueResponse, error)
	// DeleteLookupValue deletes one lookup table row
	DeleteLookupValue(ctx context.Context, requester domain.Requester, id uuid.UUID) error

	// CreateProcess creates a process
	CreateProcess(ctx context.Context, requester domain.Requester, req dto.CreateProcessRequest) (*dto.ProcessResponse, error)
	// ListProcesses returns all processes
	ListProcesses(ctx context.Context) ([]dto.ProcessResponse, error)
	// DeleteProcess deletes a process
	DeleteProcess(ctx context.Context, requester domain.Requester, id uuid.UUID) error

	// CreateParty creates a supplier
	CreateParty(ctx context.Context, requester domain.Requester, req dto.CreatePartyRequest) (*dto.PartyResponse, error)
	// ListParties returns all suppliers
	ListParties(ctx context.Context) ([]dto.PartyResponse, error)
}

type executor struct {
	store     store.Store
	resolver  *identity.Resolver
	publisher messaging.Publisher
	numbers   *packetnum.Generator
	tokens    *auth.TokenIssuer
	// pool bounds the concurrent per-packet validation work in batch
	// operations
	pool pond.Pool
}

// NewExecutor creates the shared executor
func NewExecutor(s store.Store, resolver *identity.Resolver, publisher messaging.Publisher, numbers *packetnum.Generator, tokens *auth.TokenIssuer) Executor {
	return &executor{
		store:     s,
		resolver:  resolver,
		publisher: publisher,
		numbers:   numbers,
		tokens:    tokens,
		pool:      pond.NewPool(10),
	}
}

// requireAdmin rejects any requester that is not an admin. Master data and
// actor records are admin-managed.
func (e *executor) requireAdmin(requester domain.Requester) error {
	if requester.Role != domain.RoleAdmin {
		return apierrors.NewForbiddenError("Admin access required")
	}
	return nil
}

// scopeFor computes the requester's visibility scope
func (e *executor) scopeFor(ctx context.Context, requester domain.Requester) (identity.Scope, error) {
	scope, err := identity.ComputeScope(ctx, e.store, requester)
	if err != nil {
		return identity.Scope{}, apierrors.NewDatabaseError("Failed to compute visibility scope", err.Error())
	}
	return scope, nil
}

// actorNameResolver returns a resolver that renders deleted actors as
// unknown. Lookups within one request are memoized.
func (e *executor) actorNameResolver(ctx context.Context) dto.ActorNameResolver {
	type key struct {
		kind domain.ActorKind
		id   uuid.UUID
	}
	cache := make(map[key]string)

	return func(kind domain.ActorKind, id uuid.UUID) string {
		k := key{kind: kind, id: id}
		if name, ok := cache[k]; ok {
			return name
		}

		name := dto.UnknownActorName
		switch kind {
		case domain.ActorKindAdmin:
			if admin, err := e.store.GetAdminByID(ctx, id); err == nil && admin != nil {
				name = admin.Username
			}
		case domain.ActorKindManager:
			if manager, err := e.store.GetManagerByID(ctx, id); err == nil && manager != nil {
				name = displayName(manager.FirstName, manager.LastName)
			}
		case domain.ActorKindWorker:
			if worker, err := e.store.GetWorkerByID(ctx, id); err == nil && worker != nil {
				name = displayName(worker.FirstName, worker.LastName)
			}
		}

		cache[k] = name
		return name
	}
}

// ownerSummary builds the display summary for a packet's current owner
func (e *executor) ownerSummary(ctx context.Context, ownerID *uuid.UUID, kind domain.ActorKind) *dto.ActorSummary {
	if ownerID == nil {
		return nil
	}
	return &dto.ActorSummary{
		ID:   ownerID.String(),
		Kind: kind,
		Name: e.actorNameResolver(ctx)(kind, *ownerID),
	}
}

// Login verifies credentials and mints a session token
func (e *executor) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	credential, err := e.store.GetCredentialByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to look up credentials", err.Error())
	}
	if credential == nil {
		return nil, apierrors.NewUnauthorizedError("Invalid email or password")
	}

	if err := auth.VerifyPassword(credential.PasswordHash, req.Password); err != nil {
		return nil, apierrors.NewUnauthorizedError("Invalid email or password")
	}

	role := credential.ActorKind.Role()
	token, err := e.tokens.Issue(credential.ActorID, role)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to issue token", err.Error())
	}

	return &dto.LoginResponse{
		Token:   token,
		ActorID: credential.ActorID.String(),
		Role:    role,
	}, nil
}

func displayName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
