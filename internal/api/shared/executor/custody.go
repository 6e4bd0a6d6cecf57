package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gemveer/inventory/internal/api/shared/constants"
	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/identity"
	"github.com/gemveer/inventory/internal/logger"
	"github.com/gemveer/inventory/internal/messaging"
	"github.com/gemveer/inventory/internal/store"
	"github.com/gemveer/inventory/internal/store/schema"
)

// RecordTransfer appends a custody handover after resolving both parties.
// A side that fails to resolve rejects the whole operation with an error
// naming that side and the offending id.
func (e *executor) RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*dto.RecordTransferResponse, error) {
	from, err := e.resolver.Resolve(ctx, req.From)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid sender: %s", req.From))
		}
		return nil, apierrors.NewDatabaseError("Failed to resolve sender", err.Error())
	}

	to, err := e.resolver.Resolve(ctx, req.To)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid receiver: %s", req.To))
		}
		return nil, apierrors.NewDatabaseError("Failed to resolve receiver", err.Error())
	}

	input := store.RecordTransferInput{
		PacketNo:   req.PacketNo,
		ProcessID:  req.ProcessID,
		FromID:     from.ID,
		FromKind:   from.Kind,
		ToID:       to.ID,
		ToKind:     to.Kind,
		PrevWeight: req.PrevWeight,
		NewWeight:  req.NewWeight,
		Grading:    datatypes.JSON(req.Grading),
	}

	// Transaction numbers are generated here; retry with a fresh candidate
	// on the unlikely collision instead of failing the request.
	var record *schema.TransferRecord
	operation := func() error {
		input.TransactionNo = e.numbers.TransactionNo()
		created, err := e.store.RecordTransfer(ctx, input)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateTransactionNo) {
				return err
			}
			return backoff.Permanent(err)
		}
		record = created
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		return nil, apierrors.NewDatabaseError("Failed to record transfer", err.Error())
	}

	// The transfer is durable at this point; a publish failure only loses
	// the notification, never the record.
	event := &messaging.TransferEvent{
		TransactionNo: record.TransactionNo,
		PacketNo:      record.PacketNo,
		FromID:        record.FromID.String(),
		FromKind:      record.FromKind,
		ToID:          record.ToID.String(),
		ToKind:        record.ToKind,
		RecordedAt:    record.CreatedAt,
	}
	if err := e.publisher.PublishTransfer(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish transfer event"),
			zap.String("transaction_no", record.TransactionNo))
	}

	return &dto.RecordTransferResponse{
		TransactionID: record.ID.String(),
		TransactionNo: record.TransactionNo,
		AssignID:      record.ChainID.String(),
	}, nil
}

// GetHistory returns the full custody history of a packet. A requester whose
// scope covers neither the packet's current owner nor any party of the chain
// is rejected with a forbidden error; the packet's existence is not a secret,
// access to it is.
func (e *executor) GetHistory(ctx context.Context, requester domain.Requester, packetNo string) (*dto.HistoryResponse, error) {
	chain, err := e.store.GetCustodyChainByPacketNo(ctx, packetNo)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get custody history", err.Error())
	}
	if chain == nil {
		return nil, apierrors.NewNotFoundError("No custody history for packet", packetNo)
	}

	scope, err := e.scopeFor(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !scope.All {
		if allowed, err := e.historyVisible(ctx, scope, chain); err != nil {
			return nil, err
		} else if !allowed {
			return nil, apierrors.NewForbiddenError("Not authorized for this packet")
		}
	}

	return dto.MapChainToDTO(chain, e.actorNameResolver(ctx)), nil
}

// historyVisible reports whether the scope covers the packet's current owner
// or either party of any record in the chain
func (e *executor) historyVisible(ctx context.Context, scope identity.Scope, chain *schema.CustodyChain) (bool, error) {
	packet, err := e.store.GetPacketByPacketNo(ctx, chain.PacketNo)
	if err != nil {
		return false, apierrors.NewDatabaseError("Failed to get packet", err.Error())
	}
	if packet != nil && packet.CurrentOwnerID != nil && scope.Allows(*packet.CurrentOwnerID) {
		return true, nil
	}

	for i := range chain.Transfers {
		if scope.Allows(chain.Transfers[i].FromID) || scope.Allows(chain.Transfers[i].ToID) {
			return true, nil
		}
	}
	return false, nil
}

// GetTransfer returns a single transfer record, subject to visibility
func (e *executor) GetTransfer(ctx context.Context, requester domain.Requester, transactionNo string) (*dto.TransferResponse, error) {
	record, err := e.store.GetTransferByTransactionNo(ctx, transactionNo)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get transfer", err.Error())
	}
	if record == nil {
		return nil, apierrors.NewNotFoundError("Transfer not found", transactionNo)
	}

	scope, err := e.scopeFor(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !scope.All && !scope.Allows(record.FromID) && !scope.Allows(record.ToID) {
		return nil, apierrors.NewForbiddenError("Not authorized for this transfer")
	}

	resp := dto.MapTransferToDTO(record, e.actorNameResolver(ctx))
	return &resp, nil
}

// ListTransfers returns the transfers visible to the requester. An
// unrecognized role sees an empty list, never the unfiltered set.
func (e *executor) ListTransfers(ctx context.Context, requester domain.Requester, offset, limit int) (*dto.TransferListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_TRANSFERS_LIMIT
	}

	scope, err := e.scopeFor(ctx, requester)
	if err != nil {
		return nil, err
	}
	if scope.Empty() {
		return &dto.TransferListResponse{Transfers: []dto.TransferResponse{}}, nil
	}

	filter := store.ListTransfersFilter{Offset: offset, Limit: limit}
	if !scope.All {
		filter.ActorIDs = scope.ActorIDs
	}

	records, err := e.store.ListTransfers(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list transfers", err.Error())
	}

	resolveName := e.actorNameResolver(ctx)
	transfers := make([]dto.TransferResponse, 0, len(records))
	for _, record := range records {
		transfers = append(transfers, dto.MapTransferToDTO(record, resolveName))
	}

	return &dto.TransferListResponse{Transfers: transfers}, nil
}

// CancelTransfer marks a transfer as cancelled by the requester. Admin only:
// cancellation is an administrative correction, not a workflow step.
func (e *executor) CancelTransfer(ctx context.Context, requester domain.Requester, transactionNo string) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}

	err := e.store.CancelTransfer(ctx, transactionNo, requester.ID)
	if err != nil {
		if errors.Is(err, domain.ErrHistoryNotFound) {
			return apierrors.NewNotFoundError("Transfer not found", transactionNo)
		}
		return apierrors.NewDatabaseError("Failed to cancel transfer", err.Error())
	}

	logger.InfoCtx(ctx, "Transfer cancelled",
		zap.String("transaction_no", transactionNo),
		zap.String("cancelled_by", requester.ID.String()))
	return nil
}
