package dto

import (
	"encoding/json"
	"time"

	"github.com/gemveer/inventory/internal/domain"
)

// UnknownActorName is rendered when a referenced actor no longer exists.
// History reads must not fail because a linked record was deleted.
const UnknownActorName = "unknown"

// ActorSummary is the display-friendly form of a resolved actor reference
type ActorSummary struct {
	ID   string           `json:"id"`
	Kind domain.ActorKind `json:"kind,omitempty"`
	Name string           `json:"name"`
}

// TransferResponse is one custody handover in a history or listing
type TransferResponse struct {
	TransactionNo string          `json:"transactionNo"`
	PacketNo      string          `json:"packetNo"`
	Seq           int             `json:"seq"`
	Process       *string         `json:"process,omitempty"`
	From          ActorSummary    `json:"from"`
	To            ActorSummary    `json:"to"`
	PrevWeight    *float64        `json:"prevWeight,omitempty"`
	NewWeight     *float64        `json:"newWeight,omitempty"`
	Grading       json.RawMessage `json:"grading,omitempty"`
	CancelledBy   *string         `json:"cancelledBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RecordTransferResponse is returned after a transfer is recorded
type RecordTransferResponse struct {
	TransactionID string `json:"transactionId"`
	TransactionNo string `json:"transactionNo"`
	AssignID      string `json:"assignId"`
}

// HistoryResponse is the full ordered custody history of a packet
type HistoryResponse struct {
	PacketNo  string             `json:"packetNo"`
	ChainID   string             `json:"chainId"`
	Transfers []TransferResponse `json:"transfers"`
}

// TransferListResponse is a visibility-filtered transfer listing
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// PacketResponse is the display form of a packet, with grading attribute
// references resolved to their display names
type PacketResponse struct {
	ID           string              `json:"id"`
	PacketNo     string              `json:"packetNo"`
	StockWeight  float64             `json:"stockWeight"`
	PolishWeight float64             `json:"polishWeight"`
	Pieces       int                 `json:"pieces"`
	Shape        *string             `json:"shape,omitempty"`
	Color        *string             `json:"color,omitempty"`
	Purity       *string             `json:"purity,omitempty"`
	Cut          *string             `json:"cut,omitempty"`
	Polish       *string             `json:"polish,omitempty"`
	Symmetry     *string             `json:"symmetry,omitempty"`
	Fluorescence *string             `json:"fluorescence,omitempty"`
	Table        *string             `json:"table,omitempty"`
	Discount     float64             `json:"discount"`
	RapoRate     float64             `json:"rapoRate"`
	Rate         float64             `json:"rate"`
	EstValue     float64             `json:"estValue"`
	PurchaseRate float64             `json:"purchaseRate"`
	Status       domain.PacketStatus `json:"status"`
	CurrentOwner *ActorSummary       `json:"currentOwner,omitempty"`
	PurchaseID   *string             `json:"purchaseId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// PacketListResponse is a visibility-filtered packet listing
type PacketListResponse struct {
	Packets []PacketResponse `json:"packets"`
}

// PurchaseResponse is the display form of a purchase
type PurchaseResponse struct {
	ID           string              `json:"id"`
	PurchaseType domain.PurchaseType `json:"purchaseType"`
	Party        *string             `json:"party,omitempty"`
	JanganNo     string              `json:"janganNo"`
	Stone        *string             `json:"stone,omitempty"`
	Rate         float64             `json:"rate"`
	Duration     int                 `json:"duration"`
	Pieces       int                 `json:"pieces"`
	TotalWeight  float64             `json:"totalWeight"`
	PacketNos    []string            `json:"packetNos"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// PurchaseListResponse lists purchases
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// AddressResponse mirrors the embedded address fields
type AddressResponse struct {
	PermanentAddress string `json:"permanentAddress"`
	PinCode          string `json:"pinCode"`
	City             string `json:"city"`
	State            string `json:"state"`
}

// ManagerResponse is the display form of a manager
type ManagerResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	ShortName *string         `json:"shortName,omitempty"`
	Email     *string         `json:"email,omitempty"`
	MobileNo  string          `json:"mobileNo"`
	Gender    string          `json:"gender"`
	Address   AddressResponse `json:"address"`
	Salary    *float64        `json:"salary,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// WorkerResponse is the display form of a worker
type WorkerResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	ShortName   *string         `json:"shortName,omitempty"`
	Email       *string         `json:"email,omitempty"`
	MobileNo    string          `json:"mobileNo"`
	Gender      string          `json:"gender"`
	Address     AddressResponse `json:"address"`
	ManagerID   string          `json:"managerId"`
	WorkingType string          `json:"workingType"`
	Salary      *float64        `json:"salary,omitempty"`
	Processes   []string        `json:"processes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Token   string      `json:"token"`
	ActorID string      `json:"actorId"`
	Role    domain.Role `json:"role"`
}

// LookupValueResponse is one lookup table row
type LookupValueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProcessResponse is one process row
type ProcessResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PartyResponse is one supplier row
type PartyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MobileNo string `json:"mobileNo"`
	City     string `json:"city"`
}
