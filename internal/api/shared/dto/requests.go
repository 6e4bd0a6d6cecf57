package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RecordTransferRequest is the body of POST /assign-packet. From and To are
// opaque actor identifiers resolved server-side.
type RecordTransferRequest struct {
	PacketNo   string          `json:"packetNo" binding:"required"`
	From       string          `json:"from" binding:"required"`
	To         string          `json:"to" binding:"required"`
	ProcessID  *uuid.UUID      `json:"processId"`
	PrevWeight *float64        `json:"prevWeight"`
	NewWeight  *float64        `json:"newWeight"`
	Grading    json.RawMessage `json:"grading"`
}

// CreatePacketRequest is the body of POST /packet and the element type of
// AddPacketsRequest. An empty PacketNo means the server generates one.
type CreatePacketRequest struct {
	PacketNo       string     `json:"packetNo"`
	StockWeight    float64    `json:"stockWeight" binding:"required"`
	PolishWeight   float64    `json:"polishWeight"`
	Pieces         int        `json:"pieces"`
	ShapeID        *uuid.UUID `json:"shapeId"`
	ColorID        *uuid.UUID `json:"colorId"`
	PurityID       *uuid.UUID `json:"purityId"`
	CutID          *uuid.UUID `json:"cutId"`
	PolishID       *uuid.UUID `json:"polishId"`
	SymmetryID     *uuid.UUID `json:"symmetryId"`
	FluorescenceID *uuid.UUID `json:"fluorescenceId"`
	TableID        *uuid.UUID `json:"tableId"`
	Discount       float64    `json:"discount"`
	RapoRate       float64    `json:"rapoRate"`
	Rate           float64    `json:"rate"`
	EstValue       float64    `json:"estValue"`
	PurchaseRate   float64    `json:"purchaseRate"`
}

// UpdatePacketRequest is the body of PUT /packet/:id. Nil fields are left
// untouched.
type UpdatePacketRequest struct {
	StockWeight    *float64   `json:"stockWeight"`
	PolishWeight   *float64   `json:"polishWeight"`
	Pieces         *int       `json:"pieces"`
	ShapeID        *uuid.UUID `json:"shapeId"`
	ColorID        *uuid.UUID `json:"colorId"`
	PurityID       *uuid.UUID `json:"purityId"`
	CutID          *uuid.UUID `json:"cutId"`
	PolishID       *uuid.UUID `json:"polishId"`
	SymmetryID     *uuid.UUID `json:"symmetryId"`
	FluorescenceID *uuid.UUID `json:"fluorescenceId"`
	TableID        *uuid.UUID `json:"tableId"`
	Discount       *float64   `json:"discount"`
	RapoRate       *float64   `json:"rapoRate"`
	Rate           *float64   `json:"rate"`
	EstValue       *float64   `json:"estValue"`
	PurchaseRate   *float64   `json:"purchaseRate"`
}

// CreatePurchaseRequest is the body of POST /purchase
type CreatePurchaseRequest struct {
	PurchaseType string     `json:"purchaseType" binding:"required"`
	PartyID      *uuid.UUID `json:"partyId"`
	JanganNo     string     `json:"janganNo" binding:"required"`
	StoneID      *uuid.UUID `json:"stoneId"`
	Rate         float64    `json:"rate"`
	Duration     int        `json:"duration"`
	Pieces       int        `json:"pieces" binding:"required"`
	TotalWeight  float64    `json:"totalWeight"`
}

// UpdatePurchaseRequest is the body of PUT /purchase/:id. Nil fields are
// left untouched.
type UpdatePurchaseRequest struct {
	PurchaseType *string    `json:"purchaseType"`
	PartyID      *uuid.UUID `json:"partyId"`
	JanganNo     *string    `json:"janganNo"`
	StoneID      *uuid.UUID `json:"stoneId"`
	Rate         *float64   `json:"rate"`
	Duration     *int       `json:"duration"`
	Pieces       *int       `json:"pieces"`
	TotalWeight  *float64   `json:"totalWeight"`
}

// AddPacketsRequest is the body of POST /purchase/:id/packets. The created
// packets are stamped with the requester as initial owner.
type AddPacketsRequest struct {
	Packets []CreatePacketRequest `json:"packets" binding:"required"`
}

// AddressRequest mirrors the embedded address fields of managers and workers
type AddressRequest struct {
	PermanentAddress string `json:"permanentAddress"`
	PinCode          string `json:"pinCode"`
	City             string `json:"city"`
	State            string `json:"state"`
}

// CreateManagerRequest is the body of POST /manager
type CreateManagerRequest struct {
	FirstName string         `json:"firstName" binding:"required"`
	LastName  string         `json:"lastName"`
	ShortName *string        `json:"shortName"`
	Email     *string        `json:"email"`
	Password  string         `json:"password"`
	MobileNo  string         `json:"mobileNo" binding:"required"`
	Gender    string         `json:"gender"`
	Address   AddressRequest `json:"address"`
	Salary    *float64       `json:"salary"`
}

// UpdateManagerRequest is the body of PUT /manager/:id
type UpdateManagerRequest struct {
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	ShortName *string         `json:"shortName"`
	MobileNo  *string         `json:"mobileNo"`
	Gender    *string         `json:"gender"`
	Address   *AddressRequest `json:"address"`
	Salary    *float64        `json:"salary"`
}

// CreateWorkerRequest is the body of POST /employee
type CreateWorkerRequest struct {
	FirstName   string         `json:"firstName" binding:"required"`
	LastName    string         `json:"lastName"`
	ShortName   *string        `json:"shortName"`
	Email       *string        `json:"email"`
	Password    string         `json:"password"`
	MobileNo    string         `json:"mobileNo" binding:"required"`
	Gender      string         `json:"gender"`
	Address     AddressRequest `json:"address"`
	ManagerID   uuid.UUID      `json:"managerId" binding:"required"`
	WorkingType string         `json:"workingType" binding:"required"`
	Salary      *float64       `json:"salary"`
	ProcessIDs  []uuid.UUID    `json:"processIds"`
}

// UpdateWorkerRequest is the body of PUT /employee/:id
type UpdateWorkerRequest struct {
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	ShortName   *string         `json:"shortName"`
	MobileNo    *string         `json:"mobileNo"`
	Gender      *string         `json:"gender"`
	Address     *AddressRequest `json:"address"`
	ManagerID   *uuid.UUID      `json:"managerId"`
	WorkingType *string         `json:"workingType"`
	Salary      *float64        `json:"salary"`
}

// CreateLookupValueRequest is the body of POST /lookup/:kind
type CreateLookupValueRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProcessRequest is the body of POST /process
type CreateProcessRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatePartyRequest is the body of POST /party
type CreatePartyRequest struct {
	Name     string `json:"name" binding:"required"`
	MobileNo string `json:"mobileNo"`
	City     string `json:"city"`
}
