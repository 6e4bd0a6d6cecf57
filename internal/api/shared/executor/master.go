package executor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store/schema"
)

// CreateLookupValue creates one row in a grading lookup table
func (e *executor) CreateLookupValue(ctx context.Context, requester domain.Requester, kind domain.LookupKind, req dto.CreateLookupValueRequest) (*dto.LookupValueResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, apierrors.NewValidationError("unknown lookup kind: " + string(kind))
	}

	value := &schema.LookupValue{Kind: kind, Name: req.Name}
	if err := e.store.CreateLookupValue(ctx, value); err != nil {
		if errors.Is(err, domain.ErrDuplicateLookupValue) {
			return nil, apierrors.NewConflictError("Value already exists", req.Name)
		}
		return nil, apierrors.NewDatabaseError("Failed to create lookup value", err.Error())
	}

	resp := dto.MapLookupValueToDTO(value)
	return &resp, nil
}

// ListLookupValues returns all rows of one grading lookup table
func (e *executor) ListLookupValues(ctx context.Context, kind domain.LookupKind) ([]dto.LookupValueResponse, error) {
	if !kind.Valid() {
		return nil, apierrors.NewValidationError("unknown lookup kind: " + string(kind))
	}

	values, err := e.store.ListLookupValues(ctx, kind)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list lookup values", err.Error())
	}

	responses := make([]dto.LookupValueResponse, 0, len(values))
	for _, value := range values {
		responses = append(responses, dto.MapLookupValueToDTO(value))
	}
	return responses, nil
}

// DeleteLookupValue deletes one lookup table row. Packets referencing it
// render the attribute as unknown afterwards.
func (e *executor) DeleteLookupValue(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}
	if err := e.store.DeleteLookupValue(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete lookup value", err.Error())
	}
	return nil
}

// CreateProcess creates a process
func (e *executor) CreateProcess(ctx context.Context, requester domain.Requester, req dto.CreateProcessRequest) (*dto.ProcessResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	process := &schema.Process{Name: req.Name}
	if err := e.store.CreateProcess(ctx, process); err != nil {
		if errors.Is(err, domain.ErrDuplicateLookupValue) {
			return nil, apierrors.NewConflictError("Process already exists", req.Name)
		}
		return nil, apierrors.NewDatabaseError("Failed to create process", err.Error())
	}

	resp := dto.MapProcessToDTO(process)
	return &resp, nil
}

// ListProcesses returns all processes
func (e *executor) ListProcesses(ctx context.Context) ([]dto.ProcessResponse, error) {
	processes, err := e.store.ListProcesses(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list processes", err.Error())
	}

	responses := make([]dto.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		responses = append(responses, dto.MapProcessToDTO(process))
	}
	return responses, nil
}

// DeleteProcess deletes a process. Transfers referencing it render the
// process as unknown afterwards.
func (e *executor) DeleteProcess(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}
	if err := e.store.DeleteProcess(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete process", err.Error())
	}
	return nil
}

// CreateParty creates a supplier
func (e *executor) CreateParty(ctx context.Context, requester domain.Requester, req dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	party := &schema.Party{Name: req.Name, MobileNo: req.MobileNo, City: req.City}
	if err := e.store.CreateParty(ctx, party); err != nil {
		return nil, apierrors.NewDatabaseError("Failed to create party", err.Error())
	}

	resp := dto.MapPartyToDTO(party)
	return &resp, nil
}

// ListParties returns all suppliers
func (e *executor) ListParties(ctx context.Context) ([]dto.PartyResponse, error) {
	parties, err := e.store.ListParties(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list parties", err.Error())
	}

	responses := make([]dto.PartyResponse, 0, len(parties))
	for _, party := range parties {
		responses = append(responses, dto.MapPartyToDTO(party))
	}
	return responses, nil
}
