package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store/schema"
)

// ActorNameResolver returns the display name for an actor reference, or
// UnknownActorName when the actor no longer exists
type ActorNameResolver func(kind domain.ActorKind, id uuid.UUID) string

// MapTransferToDTO maps a transfer record to its display form. Dangling
// actor and process references render as unknown instead of failing.
func MapTransferToDTO(record *schema.TransferRecord, resolveName ActorNameResolver) TransferResponse {
	resp := TransferResponse{
		TransactionNo: record.TransactionNo,
		PacketNo:      record.PacketNo,
		Seq:           record.Seq,
		From: ActorSummary{
			ID:   record.FromID.String(),
			Kind: record.FromKind,
			Name: resolveName(record.FromKind, record.FromID),
		},
		To: ActorSummary{
			ID:   record.ToID.String(),
			Kind: record.ToKind,
			Name: resolveName(record.ToKind, record.ToID),
		},
		PrevWeight: record.PrevWeight,
		NewWeight:  record.NewWeight,
		Grading:    json.RawMessage(record.Grading),
		CreatedAt:  record.CreatedAt,
	}

	if record.ProcessID != nil {
		name := UnknownActorName
		if record.Process != nil {
			name = record.Process.Name
		}
		resp.Process = &name
	}

	if record.CancelByID != nil {
		cancelledBy := record.CancelByID.String()
		resp.CancelledBy = &cancelledBy
	}

	return resp
}

// MapChainToDTO maps a custody chain with its records to a history response
func MapChainToDTO(chain *schema.CustodyChain, resolveName ActorNameResolver) *HistoryResponse {
	transfers := make([]TransferResponse, 0, len(chain.Transfers))
	for i := range chain.Transfers {
		transfers = append(transfers, MapTransferToDTO(&chain.Transfers[i], resolveName))
	}

	return &HistoryResponse{
		PacketNo:  chain.PacketNo,
		ChainID:   chain.ID.String(),
		Transfers: transfers,
	}
}

// MapPacketToDTO maps a packet to its display form. Grading references are
// resolved from the preloaded associations; a dangling reference renders as
// unknown.
func MapPacketToDTO(packet *schema.Packet, owner *ActorSummary) *PacketResponse {
	resp := &PacketResponse{
		ID:           packet.ID.String(),
		PacketNo:     packet.PacketNo,
		StockWeight:  packet.StockWeight,
		PolishWeight: packet.PolishWeight,
		Pieces:       packet.Pieces,
		Shape:        lookupName(packet.ShapeID, packet.Shape),
		Color:        lookupName(packet.ColorID, packet.Color),
		Purity:       lookupName(packet.PurityID, packet.Purity),
		Cut:          lookupName(packet.CutID, packet.Cut),
		Polish:       lookupName(packet.PolishID, packet.Polish),
		Symmetry:     lookupName(packet.SymmetryID, packet.Symmetry),
		Fluorescence: lookupName(packet.FluorescenceID, packet.Fluorescence),
		Table:        lookupName(packet.TableID, packet.Table),
		Discount:     packet.Discount,
		RapoRate:     packet.RapoRate,
		Rate:         packet.Rate,
		EstValue:     packet.EstValue,
		PurchaseRate: packet.PurchaseRate,
		Status:       packet.Status,
		CurrentOwner: owner,
		CreatedAt:    packet.CreatedAt,
		UpdatedAt:    packet.UpdatedAt,
	}

	if packet.PurchaseID != nil {
		purchaseID := packet.PurchaseID.String()
		resp.PurchaseID = &purchaseID
	}

	return resp
}

// MapPurchaseToDTO maps a purchase to its display form
func MapPurchaseToDTO(purchase *schema.Purchase) *PurchaseResponse {
	resp := &PurchaseResponse{
		ID:           purchase.ID.String(),
		PurchaseType: purchase.PurchaseType,
		JanganNo:     purchase.JanganNo,
		Rate:         purchase.Rate,
		Duration:     purchase.Duration,
		Pieces:       purchase.Pieces,
		TotalWeight:  purchase.TotalWeight,
		PacketNos:    make([]string, 0, len(purchase.Packets)),
		CreatedAt:    purchase.CreatedAt,
	}

	if purchase.PartyID != nil {
		name := UnknownActorName
		if purchase.Party != nil {
			name = purchase.Party.Name
		}
		resp.Party = &name
	}
	if purchase.StoneID != nil {
		name := UnknownActorName
		if purchase.Stone != nil {
			name = purchase.Stone.Name
		}
		resp.Stone = &name
	}

	for _, packet := range purchase.Packets {
		resp.PacketNos = append(resp.PacketNos, packet.PacketNo)
	}

	return resp
}

// MapManagerToDTO maps a manager to its display form
func MapManagerToDTO(manager *schema.Manager) *ManagerResponse {
	return &ManagerResponse{
		ID:        manager.ID.String(),
		FirstName: manager.FirstName,
		LastName:  manager.LastName,
		ShortName: manager.ShortName,
		Email:     manager.Email,
		MobileNo:  manager.MobileNo,
		Gender:    manager.Gender,
		Address:   mapAddress(manager.Address),
		Salary:    manager.Salary,
		CreatedAt: manager.CreatedAt,
	}
}

// MapWorkerToDTO maps a worker to its display form
func MapWorkerToDTO(worker *schema.Worker) *WorkerResponse {
	processes := make([]string, 0, len(worker.Processes))
	for _, process := range worker.Processes {
		processes = append(processes, process.Name)
	}

	return &WorkerResponse{
		ID:          worker.ID.String(),
		FirstName:   worker.FirstName,
		LastName:    worker.LastName,
		ShortName:   worker.ShortName,
		Email:       worker.Email,
		MobileNo:    worker.MobileNo,
		Gender:      worker.Gender,
		Address:     mapAddress(worker.Address),
		ManagerID:   worker.ManagerID.String(),
		WorkingType: string(worker.WorkingType),
		Salary:      worker.Salary,
		Processes:   processes,
		CreatedAt:   worker.CreatedAt,
	}
}

// MapLookupValueToDTO maps a lookup value to its display form
func MapLookupValueToDTO(value *schema.LookupValue) LookupValueResponse {
	return LookupValueResponse{ID: value.ID.String(), Name: value.Name}
}

// MapProcessToDTO maps a process to its display form
func MapProcessToDTO(process *schema.Process) ProcessResponse {
	return ProcessResponse{ID: process.ID.String(), Name: process.Name}
}

// MapPartyToDTO maps a party to its display form
func MapPartyToDTO(party *schema.Party) PartyResponse {
	return PartyResponse{
		ID:       party.ID.String(),
		Name:     party.Name,
		MobileNo: party.MobileNo,
		City:     party.City,
	}
}

func lookupName(id *uuid.UUID, value *schema.LookupValue) *string {
	if id == nil {
		return nil
	}
	name := UnknownActorName
	if value != nil {
		name = value.Name
	}
	return &name
}

func mapAddress(address schema.Address) AddressResponse {
	return AddressResponse{
		PermanentAddress: address.PermanentAddress,
		PinCode:          address.PinCode,
		City:             address.City,
		State:            address.State,
	}
}
