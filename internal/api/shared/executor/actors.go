package executor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/api/shared/constants"
	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store"
	"github.com/gemveer/inventory/internal/store/schema"
)

// CreateManager creates a manager and, when an email and password are given,
// its login credential in the same transaction
func (e *executor) CreateManager(ctx context.Context, requester domain.Requester, req dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	input := store.CreateManagerInput{
		Manager: schema.Manager{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			ShortName: req.ShortName,
			Email:     req.Email,
			MobileNo:  req.MobileNo,
			Gender:    req.Gender,
			Address:   mapAddressRequest(req.Address),
			Salary:    req.Salary,
		},
	}

	if req.Password != "" {
		if req.Email == nil {
			return nil, apierrors.NewValidationError("email is required for a login")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to hash password", err.Error())
		}
		input.PasswordHash = hash
	}

	manager, err := e.store.CreateManager(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apierrors.NewConflictError("Email or short name already in use")
		}
		return nil, apierrors.NewDatabaseError("Failed to create manager", err.Error())
	}

	return dto.MapManagerToDTO(manager), nil
}

// GetManager returns a single manager
func (e *executor) GetManager(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.ManagerResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	manager, err := e.store.GetManagerByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get manager", err.Error())
	}
	if manager == nil {
		return nil, apierrors.NewNotFoundError("Manager not found", id.String())
	}
	return dto.MapManagerToDTO(manager), nil
}

// UpdateManager applies a partial update to a manager
func (e *executor) UpdateManager(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}

	manager, err := e.store.GetManagerByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get manager", err.Error())
	}
	if manager == nil {
		return nil, apierrors.NewNotFoundError("Manager not found", id.String())
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.ShortName != nil {
		updates["short_name"] = *req.ShortName
	}
	if req.MobileNo != nil {
		updates["mobile_no"] = *req.MobileNo
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Address != nil {
		updates["permanent_address"] = req.Address.PermanentAddress
		updates["pin_code"] = req.Address.PinCode
		updates["city"] = req.Address.City
		updates["state"] = req.Address.State
	}

	if len(updates) > 0 {
		if err := e.store.UpdateManager(ctx, id, updates); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return nil, apierrors.NewConflictError("Short name already in use")
			}
			return nil, apierrors.NewDatabaseError("Failed to update manager", err.Error())
		}
	}

	updated, err := e.store.GetManagerByID(ctx, id)
	if err != nil || updated == nil {
		return nil, apierrors.NewDatabaseError("Failed to reload manager")
	}
	return dto.MapManagerToDTO(updated), nil
}

// DeleteManager deletes a manager and its credential. Workers keep their
// manager reference; history renders the missing manager as unknown.
func (e *executor) DeleteManager(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := e.requireAdmin(requester); err != nil {
		return err
	}

	manager, err := e.store.GetManagerByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError("Failed to get manager", err.Error())
	}
	if manager == nil {
		return apierrors.NewNotFoundError("Manager not found", id.String())
	}

	if err := e.store.DeleteManager(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete manager", err.Error())
	}
	return nil
}

// ListManagers returns all managers
func (e *executor) ListManagers(ctx context.Context, requester domain.Requester, offset, limit int) ([]*dto.ManagerResponse, error) {
	if err := e.requireAdmin(requester); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = constants.DEFAULT_ACTORS_LIMIT
	}

	managers, err := e.store.ListManagers(ctx, offset, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list managers", err.Error())
	}

	responses := make([]*dto.ManagerResponse, 0, len(managers))
	for _, manager := range managers {
		responses = append(responses, dto.MapManagerToDTO(manager))
	}
	return responses, nil
}

// CreateWorker creates a worker under a manager. Managers may only create
// workers under themselves.
func (e *executor) CreateWorker(ctx context.Context, requester domain.Requester, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if err := e.requireManagerScope(requester, req.ManagerID); err != nil {
		return nil, err
	}

	manager, err := e.store.GetManagerByID(ctx, req.ManagerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get manager", err.Error())
	}
	if manager == nil {
		return nil, apierrors.NewNotFoundError("Manager not found", req.ManagerID.String())
	}

	workingType := schema.WorkingType(req.WorkingType)
	if workingType != schema.WorkingTypePerJem && workingType != schema.WorkingTypeFixedSalary {
		return nil, apierrors.NewValidationError("unknown working type: " + req.WorkingType)
	}

	input := store.CreateWorkerInput{
		Worker: schema.Worker{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			ShortName:   req.ShortName,
			Email:       req.Email,
			MobileNo:    req.MobileNo,
			Gender:      req.Gender,
			Address:     mapAddressRequest(req.Address),
			ManagerID:   req.ManagerID,
			WorkingType: workingType,
			Salary:      req.Salary,
		},
		ProcessIDs: req.ProcessIDs,
	}

	if req.Password != "" {
		if req.Email == nil {
			return nil, apierrors.NewValidationError("email is required for a login")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to hash password", err.Error())
		}
		input.PasswordHash = hash
	}

	worker, err := e.store.CreateWorker(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apierrors.NewConflictError("Email or short name already in use")
		}
		return nil, apierrors.NewDatabaseError("Failed to create worker", err.Error())
	}

	return dto.MapWorkerToDTO(worker), nil
}

// GetWorker returns a single worker. Managers only see their own workers.
func (e *executor) GetWorker(ctx context.Context, requester domain.Requester, id uuid.UUID) (*dto.WorkerResponse, error) {
	worker, err := e.store.GetWorkerByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get worker", err.Error())
	}
	if worker == nil {
		return nil, apierrors.NewNotFoundError("Worker not found", id.String())
	}

	switch requester.Role {
	case domain.RoleAdmin:
	case domain.RoleManager:
		if worker.ManagerID != requester.ID {
			return nil, apierrors.NewForbiddenError("Not authorized for this worker")
		}
	case domain.RoleWorker:
		if worker.ID != requester.ID {
			return nil, apierrors.NewForbiddenError("Not authorized for this worker")
		}
	default:
		return nil, apierrors.NewForbiddenError("Not authorized for this worker")
	}

	return dto.MapWorkerToDTO(worker), nil
}

// UpdateWorker applies a partial update to a worker. Managers only update
// their own workers.
func (e *executor) UpdateWorker(ctx context.Context, requester domain.Requester, id uuid.UUID, req dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := e.store.GetWorkerByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get worker", err.Error())
	}
	if worker == nil {
		return nil, apierrors.NewNotFoundError("Worker not found", id.String())
	}
	if err := e.requireManagerScope(requester, worker.ManagerID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.ShortName != nil {
		updates["short_name"] = *req.ShortName
	}
	if req.MobileNo != nil {
		updates["mobile_no"] = *req.MobileNo
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.WorkingType != nil {
		updates["working_type"] = *req.WorkingType
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.ManagerID != nil {
		// Reassignment between managers is an admin action
		if requester.Role != domain.RoleAdmin {
			return nil, apierrors.NewForbiddenError("Only admins may reassign workers")
		}
		updates["manager_id"] = *req.ManagerID
	}
	if req.Address != nil {
		updates["permanent_address"] = req.Address.PermanentAddress
		updates["pin_code"] = req.Address.PinCode
		updates["city"] = req.Address.City
		updates["state"] = req.Address.State
	}

	if len(updates) > 0 {
		if err := e.store.UpdateWorker(ctx, id, updates); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return nil, apierrors.NewConflictError("Short name already in use")
			}
			return nil, apierrors.NewDatabaseError("Failed to update worker", err.Error())
		}
	}

	updated, err := e.store.GetWorkerByID(ctx, id)
	if err != nil || updated == nil {
		return nil, apierrors.NewDatabaseError("Failed to reload worker")
	}
	return dto.MapWorkerToDTO(updated), nil
}

// DeleteWorker deletes a worker and its credential
func (e *executor) DeleteWorker(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	worker, err := e.store.GetWorkerByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError("Failed to get worker", err.Error())
	}
	if worker == nil {
		return apierrors.NewNotFoundError("Worker not found", id.String())
	}
	if err := e.requireManagerScope(requester, worker.ManagerID); err != nil {
		return err
	}

	if err := e.store.DeleteWorker(ctx, id); err != nil {
		return apierrors.NewDatabaseError("Failed to delete worker", err.Error())
	}
	return nil
}

// ListWorkers returns the workers visible to the requester: admins see all,
// managers their own, workers nothing
func (e *executor) ListWorkers(ctx context.Context, requester domain.Requester, offset, limit int) ([]*dto.WorkerResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_ACTORS_LIMIT
	}

	var managerIDs []uuid.UUID
	switch requester.Role {
	case domain.RoleAdmin:
		managerIDs = nil
	case domain.RoleManager:
		managerIDs = []uuid.UUID{requester.ID}
	default:
		return []*dto.WorkerResponse{}, nil
	}

	workers, err := e.store.ListWorkers(ctx, managerIDs, offset, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list workers", err.Error())
	}

	responses := make([]*dto.WorkerResponse, 0, len(workers))
	for _, worker := range workers {
		responses = append(responses, dto.MapWorkerToDTO(worker))
	}
	return responses, nil
}

// requireManagerScope allows admins unconditionally and managers only when
// acting on their own subordinates
func (e *executor) requireManagerScope(requester domain.Requester, managerID uuid.UUID) error {
	switch requester.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleManager:
		if requester.ID == managerID {
			return nil
		}
		return apierrors.NewForbiddenError("Not authorized for this manager's workers")
	default:
		return apierrors.NewForbiddenError("Manager or admin access required")
	}
}

func mapAddressRequest(req dto.AddressRequest) schema.Address {
	return schema.Address{
		PermanentAddress: req.PermanentAddress,
		PinCode:          req.PinCode,
		City:             req.City,
		State:            req.State,
	}
}
