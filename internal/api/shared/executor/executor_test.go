package executor_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemveer/inventory/internal/api/shared/dto"
	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
	"github.com/gemveer/inventory/internal/api/shared/executor"
	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/identity"
	"github.com/gemveer/inventory/internal/logger"
	"github.com/gemveer/inventory/internal/mocks"
	"github.com/gemveer/inventory/internal/packetnum"
	"github.com/gemveer/inventory/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testExecutorMocks contains everything needed to test the executor
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	tokens    *auth.TokenIssuer
	exec      executor.Executor
}

// setupTestExecutor creates the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	return &testExecutorMocks{
		ctrl:      ctrl,
		store:     mockStore,
		publisher: mockPublisher,
		tokens:    tokens,
		exec: executor.NewExecutor(
			mockStore,
			identity.NewResolver(mockStore),
			mockPublisher,
			packetnum.NewGenerator(),
			tokens,
		),
	}
}

// requireAPIError asserts that err is an APIError carrying the given code
func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func adminRequester() domain.Requester {
	return domain.Requester{ID: uuid.New(), Role: domain.RoleAdmin}
}

func managerRequester() domain.Requester {
	return domain.Requester{ID: uuid.New(), Role: domain.RoleManager}
}

func workerRequester() domain.Requester {
	return domain.Requester{ID: uuid.New(), Role: domain.RoleWorker}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		tm := setupTestExecutor(t)

		tm.store.EXPECT().GetCredentialByEmail(ctx, "nobody@example.com").Return(nil, nil)

		_, err := tm.exec.Login(ctx, dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		requireAPIError(t, err, apierrors.ErrCodeUnauthorized)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		tm := setupTestExecutor(t)
		hash, err := auth.HashPassword("right")
		require.NoError(t, err)

		tm.store.EXPECT().GetCredentialByEmail(ctx, "boss@example.com").Return(&schema.Credential{
			ActorID:      uuid.New(),
			ActorKind:    domain.ActorKindAdmin,
			Email:        "boss@example.com",
			PasswordHash: hash,
		}, nil)

		_, err = tm.exec.Login(ctx, dto.LoginRequest{
			Email:    "boss@example.com",
			Password: "wrong",
		})
		requireAPIError(t, err, apierrors.ErrCodeUnauthorized)
	})

	t.Run("successful login mints a parseable token", func(t *testing.T) {
		tm := setupTestExecutor(t)
		workerID := uuid.New()
		hash, err := auth.HashPassword("s3cret")
		require.NoError(t, err)

		tm.store.EXPECT().GetCredentialByEmail(ctx, "suresh@example.com").Return(&schema.Credential{
			ActorID:      workerID,
			ActorKind:    domain.ActorKindWorker,
			Email:        "suresh@example.com",
			PasswordHash: hash,
		}, nil)

		resp, err := tm.exec.Login(ctx, dto.LoginRequest{
			Email:    "suresh@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, workerID.String(), resp.ActorID)
		assert.Equal(t, domain.RoleWorker, resp.Role)

		requester, err := tm.tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, workerID, requester.ID)
		assert.Equal(t, domain.RoleWorker, requester.Role)
	})
}
