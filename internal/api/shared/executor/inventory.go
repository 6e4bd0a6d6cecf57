package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/api/shared/constants"
	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store"
	"github.com/gemveer/inventory/internal/store/schema"
)

// CreatePacket creates a standalone packet. An empty packet number is
// generated server-side, retrying on the unlikely collision; an explicit
// duplicate number is a conflict the caller must resolve.
func (e *executor) CreatePacket(ctx context.Context, requester domain.Requester, req dto.CreatePacketRequest) (*dto.PacketResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	packet, err := e.buildPacket(ctx, req)
	if err != nil {
		return nil, err
	}

	generated := packet.PacketNo == ""
	operation := func() error {
		if generated {
			packet.PacketNo = e.numbers.PacketNo()
		}
		err := e.store.CreatePacket(ctx, packet)
		if err != nil && generated && errors.Is(err, domain.ErrDuplicatePacketNo) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		if errors.Is(err, domain.ErrDuplicatePacketNo) {
			return nil, apierrors.NewConflictError("Packet number already exists", packet.PacketNo)
		}
		return nil, apierrors.NewDatabaseError("Failed to create packet", err.Error())
	}

	created, err := e.store.GetPacketByID(ctx, packet.ID)
	if err != nil || created == nil {
		return dto.MapPacketToDTO(packet, nil), nil
	}
	return dto.MapPacketToDTO(created, e.ownerSummary(ctx, created.CurrentOwnerID, created.OwnerKind)), nil
}

// GetPacketByNo returns a single packet. A requester whose scope does not
// cover the packet's current owner is rejected with a forbidden error rather
// than a not-found.
func (e *executor) GetPacketByNo(ctx context.Context, requester domain.Requester, packetNo string) (*dto.PacketResponse, error) {
	packet, err := e.store.GetPacketByPacketNo(ctx, packetNo)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get packet", err.Error())
	}
	if packet == nil {
		return nil, apierrors.NewNotFoundError("Packet not found", packetNo)
	}

	scope, err := e.scopeFor(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !scope.All {
		if packet.CurrentOwnerID == nil || !scope.Allows(*packet.CurrentOwnerID) {
			return nil, apierrors.NewForbiddenError("Not authorized for this packet")
		}
	}

	return dto.MapPacketToDTO(packet, e.ownerSummary(ctx, packet.CurrentOwnerID, packet.OwnerKind)), nil
}

// UpdatePacket applies a partial update to a packet
func (e *executor) UpdatePacket(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdatePacketRequest) (*dto.PacketResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	packet, err := e.store.GetPacketByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get packet", err.Error())
	}
	if packet == nil {
		return nil, apierrors.NewNotFoundError("Packet not found", id.String())
	}

	updates := packetUpdates(req)
	if len(updates) > 0 {
		if err := e.store.UpdatePacket(ctx, id, updates); err != nil {
			return nil, apierrors.NewDatabaseError("Failed to update packet", err.Error())
		}
	}

	updated, err := e.store.GetPacketByID(ctx, id)
	if err != nil || updated == nil {
		return nil, apierrors.NewDatabaseError("Failed to reload packet")
	}
	return dto.MapPacketToDTO(updated, e.ownerSummary(ctx, updated.CurrentOwnerID, updated.OwnerKind)), nil
}

// DeletePacket deletes a packet. The custody chain keyed by its packet
// number survives for audit.
func (e *executor) DeletePacket(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}

	packet, err := e.store.GetPacketByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError("Failed to get packet", err.Error())
	}
	if packet == nil {
		return apierrors.NewNotFoundError("Packet not found", id.String())
	}

	if err := e.store.DeletePacket(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete packet", err.Error())
	}
	return nil
}

// ListPackets returns the packets visible to the requester. An unrecognized
// role sees an empty list.
func (e *executor) ListPackets(ctx context.Context, requester domain.Requester, status domain.PacketStatus, offset, limit int) (*dto.PacketListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_PACKETS_LIMIT
	}

	scope, err := e.scopeFor(ctx, requester)
	if err != nil {
		return nil, err
	}
	if scope.Empty() {
		return &dto.PacketListResponse{Packets: []dto.PacketResponse{}}, nil
	}

	filter := store.ListPacketsFilter{Status: status, Offset: offset, Limit: limit}
	if !scope.All {
		filter.OwnerIDs = scope.ActorIDs
	}

	packets, err := e.store.ListPackets(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list packets", err.Error())
	}

	responses := make([]dto.PacketResponse, 0, len(packets))
	for _, packet := range packets {
		responses = append(responses, *dto.MapPacketToDTO(packet, e.ownerSummary(ctx, packet.CurrentOwnerID, packet.OwnerKind)))
	}
	return &dto.PacketListResponse{Packets: responses}, nil
}

// CreatePurchase creates a purchase lot
func (e *executor) CreatePurchase(ctx context.Context, requester domain.Requester, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	purchaseType := domain.PurchaseType(req.PurchaseType)
	if purchaseType != domain.PurchaseTypeRough && purchaseType != domain.PurchaseTypeRejection {
		return nil, apierrors.NewValidationError(fmt.Sprintf("unknown purchase type: %s", req.PurchaseType))
	}
	if req.Pieces <= 0 {
		return nil, apierrors.NewValidationError("pieces must be positive")
	}

	purchase := &schema.Purchase{
		PurchaseType: purchaseType,
		PartyID:      req.PartyID,
		JanganNo:     req.JanganNo,
		StoneID:      req.StoneID,
		Rate:         req.Rate,
		Duration:     req.Duration,
		Pieces:       req.Pieces,
		TotalWeight:  req.TotalWeight,
	}
	if err := e.store.CreatePurchase(ctx, purchase); err != nil {
		if errors.Is(err, domain.ErrDuplicateJanganNo) {
			return nil, apierrors.NewConflictError("Jangan number already exists", req.JanganNo)
		}
		return nil, apierrors.NewDatabaseError("Failed to create purchase", err.Error())
	}

	return dto.MapPurchaseToDTO(purchase), nil
}

// GetPurchase returns a purchase with its packets
func (e *executor) GetPurchase(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.PurchaseResponse, error) {
	if requester.Role != domain.RoleAdmin && requester.Role != domain.RoleManager {
		return nil, apierrors.NewForbiddenError("Not authorized for purchases")
	}

	purchase, err := e.store.GetPurchaseByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get purchase", err.Error())
	}
	if purchase == nil {
		return nil, apierrors.NewNotFoundError("Purchase not found", id.String())
	}
	return dto.MapPurchaseToDTO(purchase), nil
}

// UpdatePurchase applies a partial update to a purchase
func (e *executor) UpdatePurchase(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	purchase, err := e.store.GetPurchaseByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get purchase", err.Error())
	}
	if purchase == nil {
		return nil, apierrors.NewNotFoundError("Purchase not found", id.String())
	}

	updates := make(map[string]interface{})
	if req.PurchaseType != nil {
		purchaseType := domain.PurchaseType(*req.PurchaseType)
		if purchaseType != domain.PurchaseTypeRough && purchaseType != domain.PurchaseTypeRejection {
			return nil, apierrors.NewValidationError(fmt.Sprintf("unknown purchase type: %s", *req.PurchaseType))
		}
		updates["purchase_type"] = purchaseType
	}
	if req.Pieces != nil {
		if *req.Pieces <= 0 {
			return nil, apierrors.NewValidationError("pieces must be positive")
		}
		// The declared count may not drop below the packets already attached
		if *req.Pieces < len(purchase.Packets) {
			return nil, apierrors.NewConflictError("Purchase piece count below attached packets")
		}
		updates["pieces"] = *req.Pieces
	}
	if req.PartyID != nil {
		updates["party_id"] = *req.PartyID
	}
	if req.JanganNo != nil {
		updates["jangan_no"] = *req.JanganNo
	}
	if req.StoneID != nil {
		updates["stone_id"] = *req.StoneID
	}
	if req.Rate != nil {
		updates["rate"] = *req.Rate
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.TotalWeight != nil {
		updates["total_weight"] = *req.TotalWeight
	}

	if len(updates) > 0 {
		if err := e.store.UpdatePurchase(ctx, id, updates); err != nil {
			if errors.Is(err, domain.ErrDuplicateJanganNo) {
				return nil, apierrors.NewConflictError("Jangan number already exists")
			}
			return nil, apierrors.NewDatabaseError("Failed to update purchase", err.Error())
		}
	}

	updated, err := e.store.GetPurchaseByID(ctx, id)
	if err != nil || updated == nil {
		return nil, apierrors.NewDatabaseError("Failed to reload purchase")
	}
	return dto.MapPurchaseToDTO(updated), nil
}

// ListPurchases returns all purchases
func (e *executor) ListPurchases(ctx context.Context, requester domain.Requester, offset, limit int) (*dto.PurchaseListResponse, error) {
	if requester.Role != domain.RoleAdmin && requester.Role != domain.RoleManager {
		return nil, apierrors.NewForbiddenError("Not authorized for purchases")
	}
	if limit <= 0 {
		limit = constants.DEFAULT_PURCHASES_LIMIT
	}

	purchases, err := e.store.ListPurchases(ctx, offset, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list purchases", err.Error())
	}

	responses := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		responses = append(responses, *dto.MapPurchaseToDTO(purchase))
	}
	return &dto.PurchaseListResponse{Purchases: responses}, nil
}

// DeletePurchase deletes a purchase. Packets split from it survive.
func (e *executor) DeletePurchase(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}

	purchase, err := e.store.GetPurchaseByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError("Failed to get purchase", err.Error())
	}
	if purchase == nil {
		return apierrors.NewNotFoundError("Purchase not found", id.String())
	}

	if err := e.store.DeletePurchase(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete purchase", err.Error())
	}
	return nil
}

// AddPacketsToPurchase creates packets under a purchase, stamped with the
// requester as initial owner. The purchase's declared piece count caps the
// batch; packet numbers are regenerated and the whole batch retried on a
// generation collision.
func (e *executor) AddPacketsToPurchase(ctx context.Context, requester domain.Requester, purchaseID uuid.UUID, req dto.AddPacketsRequest) (*dto.PacketListResponse, error) {
	if requester.Role != domain.RoleAdmin && requester.Role != domain.RoleManager {
		return nil, apierrors.NewForbiddenError("Not authorized for purchases")
	}
	if len(req.Packets) == 0 {
		return nil, apierrors.NewValidationError("packets must not be empty")
	}
	if len(req.Packets) > constants.MAX_PACKETS_PER_REQUEST {
		return nil, apierrors.NewValidationError(fmt.Sprintf("at most %d packets per request", constants.MAX_PACKETS_PER_REQUEST))
	}

	owner, err := e.resolver.Resolve(ctx, requester.ID.String())
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid requester: %s", requester.ID))
		}
		return nil, apierrors.NewDatabaseError("Failed to resolve requester", err.Error())
	}

	// Build and validate the batch concurrently; each packet checks its own
	// grading references.
	packets := make([]*schema.Packet, len(req.Packets))
	group := e.pool.NewGroupContext(ctx)
	for i := range req.Packets {
		i := i
		group.SubmitErr(func() error {
			packet, err := e.buildPacket(ctx, req.Packets[i])
			if err != nil {
				return err
			}
			packet.CurrentOwnerID = &owner.ID
			packet.OwnerKind = owner.Kind
			packets[i] = packet
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, apierrors.NewDatabaseError("Failed to validate packets", err.Error())
	}

	generated := make([]bool, len(packets))
	for i, packet := range packets {
		generated[i] = packet.PacketNo == ""
	}

	operation := func() error {
		for i, packet := range packets {
			if generated[i] {
				packet.PacketNo = e.numbers.PacketNo()
			}
			packet.ID = uuid.Nil
		}
		err := e.store.AddPacketsToPurchase(ctx, purchaseID, packets)
		if err != nil && errors.Is(err, domain.ErrDuplicatePacketNo) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		switch {
		case errors.Is(err, domain.ErrPurchaseNotFound):
			return nil, apierrors.NewNotFoundError("Purchase not found", purchaseID.String())
		case errors.Is(err, domain.ErrPurchaseFull):
			return nil, apierrors.NewConflictError("Purchase piece count exceeded")
		case errors.Is(err, domain.ErrDuplicatePacketNo):
			return nil, apierrors.NewConflictError("Packet number already exists")
		default:
			return nil, apierrors.NewDatabaseError("Failed to add packets", err.Error())
		}
	}

	ownerSummary := &dto.ActorSummary{
		ID:   owner.ID.String(),
		Kind: owner.Kind,
		Name: owner.DisplayName,
	}
	responses := make([]dto.PacketResponse, 0, len(packets))
	for _, packet := range packets {
		responses = append(responses, *dto.MapPacketToDTO(packet, ownerSummary))
	}
	return &dto.PacketListResponse{Packets: responses}, nil
}

// buildPacket maps a create request to a schema row after checking that
// every referenced grading value exists
func (e *executor) buildPacket(ctx context.Context, req dto.CreatePacketRequest) (*schema.Packet, error) {
	refs := collectLookupIDs(req)
	if len(refs) > 0 {
		values, err := e.store.GetLookupValuesByIDs(ctx, refs)
		if err != nil {
			return nil, apierrors.NewDatabaseError("Failed to check grading references", err.Error())
		}
		if len(values) != len(refs) {
			return nil, apierrors.NewValidationError("unknown grading reference")
		}
	}

	pieces := req.Pieces
	if pieces <= 0 {
		pieces = 1
	}

	return &schema.Packet{
		PacketNo:       req.PacketNo,
		StockWeight:    req.StockWeight,
		PolishWeight:   req.PolishWeight,
		Pieces:         pieces,
		ShapeID:        req.ShapeID,
		ColorID:        req.ColorID,
		PurityID:       req.PurityID,
		CutID:          req.CutID,
		PolishID:       req.PolishID,
		SymmetryID:     req.SymmetryID,
		FluorescenceID: req.FluorescenceID,
		TableID:        req.TableID,
		Discount:       req.Discount,
		RapoRate:       req.RapoRate,
		Rate:           req.Rate,
		EstValue:       req.EstValue,
		PurchaseRate:   req.PurchaseRate,
		Status:         domain.PacketStatusHold,
	}, nil
}

func collectLookupIDs(req dto.CreatePacketRequest) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, id := range []*uuid.UUID{
		req.ShapeID, req.ColorID, req.PurityID, req.CutID,
		req.PolishID, req.SymmetryID, req.FluorescenceID, req.TableID,
	} {
		if id != nil && !seen[*id] {
			seen[*id] = true
			ids = append(ids, *id)
		}
	}
	return ids
}

func packetUpdates(req dto.UpdatePacketRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	if req.StockWeight != nil {
		updates["stock_weight"] = *req.StockWeight
	}
	if req.PolishWeight != nil {
		updates["polish_weight"] = *req.PolishWeight
	}
	if req.Pieces != nil {
		updates["pieces"] = *req.Pieces
	}
	if req.ShapeID != nil {
		updates["shape_id"] = *req.ShapeID
	}
	if req.ColorID != nil {
		updates["color_id"] = *req.ColorID
	}
	if req.PurityID != nil {
		updates["purity_id"] = *req.PurityID
	}
	if req.CutID != nil {
		updates["cut_id"] = *req.CutID
	}
	if req.PolishID != nil {
		updates["polish_id"] = *req.PolishID
	}
	if req.SymmetryID != nil {
		updates["symmetry_id"] = *req.SymmetryID
	}
	if req.FluorescenceID != nil {
		updates["fluorescence_id"] = *req.FluorescenceID
	}
	if req.TableID != nil {
		updates["table_id"] = *req.TableID
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.RapoRate != nil {
		updates["rapo_rate"] = *req.RapoRate
	}
	if req.Rate != nil {
		updates["rate"] = *req.Rate
	}
	if req.EstValue != nil {
		updates["est_value"] = *req.EstValue
	}
	if req.PurchaseRate != nil {
		updates["purchase_rate"] = *req.PurchaseRate
	}
	return updates
}
