package executor_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store"
	"github.com/gemveer/inventory/internal/store/schema"
)

func TestCreateManager(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin is forbidden", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.exec.CreateManager(ctx, managerRequester(), dto.CreateManagerRequest{
			FirstName: "Ramesh",
			MobileNo:  "9876543210",
		})
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("password without email fails validation", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.exec.CreateManager(ctx, adminRequester(), dto.CreateManagerRequest{
			FirstName: "Ramesh",
			MobileNo:  "9876543210",
			Password:  "s3cret",
		})
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		tm := setupTestExecutor(t)
		email := "ramesh@example.com"

		tm.store.EXPECT().CreateManager(ctx, gomock.Any()).Return(nil, domain.ErrDuplicateEmail)

		_, err := tm.exec.CreateManager(ctx, adminRequester(), dto.CreateManagerRequest{
			FirstName: "Ramesh",
			MobileNo:  "9876543210",
			Email:     &email,
			Password:  "s3cret",
		})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})

	t.Run("login credential carries a verifiable hash", func(t *testing.T) {
		tm := setupTestExecutor(t)
		email := "ramesh@example.com"

		tm.store.EXPECT().CreateManager(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateManagerInput) (*schema.Manager, error) {
				assert.NoError(t, auth.VerifyPassword(input.PasswordHash, "s3cret"))
				manager := input.Manager
				manager.ID = uuid.New()
				return &manager, nil
			})

		resp, err := tm.exec.CreateManager(ctx, adminRequester(), dto.CreateManagerRequest{
			FirstName: "Ramesh",
			LastName:  "Patel",
			MobileNo:  "9876543210",
			Email:     &email,
			Password:  "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ramesh", resp.FirstName)
		require.NotNil(t, resp.Email)
		assert.Equal(t, email, *resp.Email)
	})
}

func TestCreateWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("manager may not create workers under another manager", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.exec.CreateWorker(ctx, managerRequester(), dto.CreateWorkerRequest{
			FirstName:   "Suresh",
			MobileNo:    "9876543210",
			ManagerID:   uuid.New(),
			WorkingType: string(schema.WorkingTypePerJem),
		})
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("unknown working type fails validation", func(t *testing.T) {
		tm := setupTestExecutor(t)
		requester := managerRequester()

		tm.store.EXPECT().GetManagerByID(ctx, requester.ID).Return(&schema.Manager{
			ID: requester.ID, FirstName: "Ramesh",
		}, nil)

		_, err := tm.exec.CreateWorker(ctx, requester, dto.CreateWorkerRequest{
			FirstName:   "Suresh",
			MobileNo:    "9876543210",
			ManagerID:   requester.ID,
			WorkingType: "hourly",
		})
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
	})

	t.Run("unknown manager is a not found", func(t *testing.T) {
		tm := setupTestExecutor(t)
		managerID := uuid.New()

		tm.store.EXPECT().GetManagerByID(ctx, managerID).Return(nil, nil)

		_, err := tm.exec.CreateWorker(ctx, adminRequester(), dto.CreateWorkerRequest{
			FirstName:   "Suresh",
			MobileNo:    "9876543210",
			ManagerID:   managerID,
			WorkingType: string(schema.WorkingTypePerJem),
		})
		requireAPIError(t, err, apierrors.ErrCodeNotFound)
	})

	t.Run("manager creates a worker under itself", func(t *testing.T) {
		tm := setupTestExecutor(t)
		requester := managerRequester()
		processID := uuid.New()

		tm.store.EXPECT().GetManagerByID(ctx, requester.ID).Return(&schema.Manager{
			ID: requester.ID, FirstName: "Ramesh",
		}, nil)
		tm.store.EXPECT().CreateWorker(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateWorkerInput) (*schema.Worker, error) {
				assert.Equal(t, requester.ID, input.Worker.ManagerID)
				assert.Equal(t, []uuid.UUID{processID}, input.ProcessIDs)
				worker := input.Worker
				worker.ID = uuid.New()
				return &worker, nil
			})

		resp, err := tm.exec.CreateWorker(ctx, requester, dto.CreateWorkerRequest{
			FirstName:   "Suresh",
			MobileNo:    "9876543210",
			ManagerID:   requester.ID,
			WorkingType: string(schema.WorkingTypePerJem),
			ProcessIDs:  []uuid.UUID{processID},
		})
		require.NoError(t, err)
		assert.Equal(t, "Suresh", resp.FirstName)
		assert.Equal(t, requester.ID.String(), resp.ManagerID)
	})
}

func TestGetWorker(t *testing.T) {
	ctx := context.Background()

	buildWorker := func(managerID uuid.UUID) *schema.Worker {
		return &schema.Worker{
			ID:          uuid.New(),
			FirstName:   "Suresh",
			ManagerID:   managerID,
			WorkingType: schema.WorkingTypePerJem,
		}
	}

	t.Run("manager sees its own worker", func(t *testing.T) {
		tm := setupTestExecutor(t)
		requester := managerRequester()
		worker := buildWorker(requester.ID)

		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(worker, nil)

		resp, err := tm.exec.GetWorker(ctx, requester, worker.ID)
		require.NoError(t, err)
		assert.Equal(t, worker.ID.String(), resp.ID)
	})

	t.Run("manager is forbidden from another manager's worker", func(t *testing.T) {
		tm := setupTestExecutor(t)
		worker := buildWorker(uuid.New())

		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(worker, nil)

		_, err := tm.exec.GetWorker(ctx, managerRequester(), worker.ID)
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("worker sees itself and nobody else", func(t *testing.T) {
		tm := setupTestExecutor(t)
		worker := buildWorker(uuid.New())

		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(worker, nil).Times(2)

		_, err := tm.exec.GetWorker(ctx, domain.Requester{ID: worker.ID, Role: domain.RoleWorker}, worker.ID)
		require.NoError(t, err)

		_, err = tm.exec.GetWorker(ctx, workerRequester(), worker.ID)
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})
}

func TestUpdateWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("manager may not reassign its worker", func(t *testing.T) {
		tm := setupTestExecutor(t)
		requester := managerRequester()
		worker := &schema.Worker{
			ID:        uuid.New(),
			FirstName: "Suresh",
			ManagerID: requester.ID,
		}
		otherManager := uuid.New()

		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(worker, nil)

		_, err := tm.exec.UpdateWorker(ctx, requester, worker.ID, dto.UpdateWorkerRequest{
			ManagerID: &otherManager,
		})
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("admin reassigns a worker", func(t *testing.T) {
		tm := setupTestExecutor(t)
		worker := &schema.Worker{
			ID:        uuid.New(),
			FirstName: "Suresh",
			ManagerID: uuid.New(),
		}
		otherManager := uuid.New()

		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(worker, nil)
		tm.store.EXPECT().UpdateWorker(ctx, worker.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
				assert.Equal(t, otherManager, updates["manager_id"])
				return nil
			})
		reassigned := *worker
		reassigned.ManagerID = otherManager
		tm.store.EXPECT().GetWorkerByID(ctx, worker.ID).Return(&reassigned, nil)

		resp, err := tm.exec.UpdateWorker(ctx, adminRequester(), worker.ID, dto.UpdateWorkerRequest{
			ManagerID: &otherManager,
		})
		require.NoError(t, err)
		assert.Equal(t, otherManager.String(), resp.ManagerID)
	})
}

func TestListWorkers(t *testing.T) {
	ctx := context.Background()

	t.Run("worker sees an empty list without a query", func(t *testing.T) {
		tm := setupTestExecutor(t)

		workers, err := tm.exec.ListWorkers(ctx, workerRequester(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, workers)
	})

	t.Run("admin lists without a manager filter", func(t *testing.T) {
		tm := setupTestExecutor(t)

		tm.store.EXPECT().ListWorkers(ctx, nil, 0, 10).Return(nil, nil)

		workers, err := tm.exec.ListWorkers(ctx, adminRequester(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, workers)
	})

	t.Run("manager lists only its own workers", func(t *testing.T) {
		tm := setupTestExecutor(t)
		requester := managerRequester()

		tm.store.EXPECT().ListWorkers(ctx, []uuid.UUID{requester.ID}, 0, 10).Return([]*schema.Worker{
			{ID: uuid.New(), FirstName: "Suresh", ManagerID: requester.ID},
		}, nil)

		workers, err := tm.exec.ListWorkers(ctx, requester, 0, 10)
		require.NoError(t, err)
		require.Len(t, workers, 1)
		assert.Equal(t, "Suresh", workers[0].FirstName)
	})
}

func TestLookupValues(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin may not create values", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.exec.CreateLookupValue(ctx, workerRequester(), domain.LookupKindShape, dto.CreateLookupValueRequest{Name: "Round"})
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("unknown kind fails validation", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.exec.CreateLookupValue(ctx, adminRequester(), "carat", dto.CreateLookupValueRequest{Name: "1.0"})
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed)

		_, err = tm.exec.ListLookupValues(ctx, "carat")
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
	})

	t.Run("duplicate value is a conflict", func(t *testing.T) {
		tm := setupTestExecutor(t)

		tm.store.EXPECT().CreateLookupValue(ctx, gomock.Any()).Return(domain.ErrDuplicateLookupValue)

		_, err := tm.exec.CreateLookupValue(ctx, adminRequester(), domain.LookupKindShape, dto.CreateLookupValueRequest{Name: "Round"})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})

	t.Run("admin creates a value", func(t *testing.T) {
		tm := setupTestExecutor(t)

		tm.store.EXPECT().CreateLookupValue(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, value *schema.LookupValue) error {
				assert.Equal(t, domain.LookupKindShape, value.Kind)
				value.ID = uuid.New()
				return nil
			})

		resp, err := tm.exec.CreateLookupValue(ctx, adminRequester(), domain.LookupKindShape, dto.CreateLookupValueRequest{Name: "Round"})
		require.NoError(t, err)
		assert.Equal(t, "Round", resp.Name)
	})
}
