package domain

import (
	"github.com/google/uuid"
)

// ActorKind identifies which actor table a reference resolves to
type ActorKind string

const (
	// ActorKindAdmin represents an administrator
	ActorKindAdmin ActorKind = "admin"
	// ActorKindManager represents a manager
	ActorKindManager ActorKind = "manager"
	// ActorKindWorker represents a worker (shop-floor employee)
	ActorKindWorker ActorKind = "worker"
)

// Role returns the requester role corresponding to this actor kind
func (k ActorKind) Role() Role {
	switch k {
	case ActorKindAdmin:
		return RoleAdmin
	case ActorKindManager:
		return RoleManager
	case ActorKindWorker:
		return RoleWorker
	}
	return ""
}

// Role is the caller-supplied role of a requester. It mirrors ActorKind but
// is kept separate because it arrives from the transport boundary and may be
// anything; an unrecognized role must fail closed.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWorker  Role = "employee"
)

// Known reports whether the role is one of the recognized roles.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWorker:
		return true
	}
	return false
}

// Requester is the authenticated identity of the caller, built once at the
// transport boundary and passed explicitly into every scoped operation.
type Requester struct {
	ID   uuid.UUID
	Role Role
}

// Anonymous reports whether the requester carries no usable identity.
func (r Requester) Anonymous() bool {
	return r.ID == uuid.Nil && r.Role == ""
}

// ParseActorID validates an opaque identifier against the store's native key
// shape. A malformed id never reaches the database; resolution simply fails.
func ParseActorID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrActorNotFound
	}
	return id, nil
}

// PacketStatus is the lifecycle status of a packet
type PacketStatus string

const (
	// PacketStatusHold means the packet is in stock, not being worked on
	PacketStatusHold PacketStatus = "hold"
	// PacketStatusActive means the packet is assigned and in process
	PacketStatusActive PacketStatus = "active"
)

// PurchaseType identifies the acquisition category of a purchase
type PurchaseType string

const (
	PurchaseTypeRough     PurchaseType = "roughPurchase"
	PurchaseTypeRejection PurchaseType = "rejectionPurchase"
)

// LookupKind identifies a grading attribute lookup table
type LookupKind string

const (
	LookupKindShape        LookupKind = "shape"
	LookupKindColor        LookupKind = "color"
	LookupKindPurity       LookupKind = "purity"
	LookupKindCut          LookupKind = "cut"
	LookupKindPolish       LookupKind = "polish"
	LookupKindSymmetry     LookupKind = "symmetry"
	LookupKindFluorescence LookupKind = "fluorescence"
	LookupKindTable        LookupKind = "table"
	LookupKindStone        LookupKind = "stone"
)

// LookupKinds lists every valid lookup kind, in display order.
var LookupKinds = []LookupKind{
	LookupKindShape,
	LookupKindColor,
	LookupKindPurity,
	LookupKindCut,
	LookupKindPolish,
	LookupKindSymmetry,
	LookupKindFluorescence,
	LookupKindTable,
	LookupKindStone,
}

// Valid reports whether k names a known lookup kind.
func (k LookupKind) Valid() bool {
	for _, known := range LookupKinds {
		if k == known {
			return true
		}
	}
	return false
}
