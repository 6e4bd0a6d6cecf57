package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/identity"
	"github.com/gemveer/inventory/internal/mocks"
	"github.com/gemveer/inventory/internal/store/schema"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("admin wins without probing further", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(&schema.Admin{
			ID:       id,
			Username: "boss",
		}, nil)

		actor, err := identity.NewResolver(mockStore).Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, domain.ActorKindAdmin, actor.Kind)
		assert.Equal(t, id, actor.ID)
		assert.Equal(t, "boss", actor.DisplayName)
	})

	t.Run("falls through to manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(nil, nil)
		mockStore.EXPECT().GetManagerByID(ctx, id).Return(&schema.Manager{
			ID:        id,
			FirstName: "Ramesh",
			LastName:  "Patel",
		}, nil)

		actor, err := identity.NewResolver(mockStore).Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, domain.ActorKindManager, actor.Kind)
		assert.Equal(t, "Ramesh Patel", actor.DisplayName)
	})

	t.Run("falls through to worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(nil, nil)
		mockStore.EXPECT().GetManagerByID(ctx, id).Return(nil, nil)
		mockStore.EXPECT().GetWorkerByID(ctx, id).Return(&schema.Worker{
			ID:        id,
			FirstName: "Suresh",
		}, nil)

		actor, err := identity.NewResolver(mockStore).Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, domain.ActorKindWorker, actor.Kind)
		assert.Equal(t, "Suresh", actor.DisplayName)
	})

	t.Run("unknown id in every table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(nil, nil)
		mockStore.EXPECT().GetManagerByID(ctx, id).Return(nil, nil)
		mockStore.EXPECT().GetWorkerByID(ctx, id).Return(nil, nil)

		_, err := identity.NewResolver(mockStore).Resolve(ctx, id.String())
		assert.ErrorIs(t, err, domain.ErrActorNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)

		_, err := identity.NewResolver(mockStore).Resolve(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrActorNotFound)
	})

	t.Run("probe failure is not a not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()
		dbErr := errors.New("connection reset")

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(nil, dbErr)

		_, err := identity.NewResolver(mockStore).Resolve(ctx, id.String())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrActorNotFound)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockStore(ctrl)
		id := uuid.New()

		mockStore.EXPECT().GetAdminByID(ctx, id).Return(nil, nil).Times(2)
		mockStore.EXPECT().GetManagerByID(ctx, id).Return(&schema.Manager{
			ID:        id,
			FirstName: "Ramesh",
		}, nil).Times(2)

		resolver := identity.NewResolver(mockStore)
		first, err := resolver.Resolve(ctx, id.String())
		require.NoError(t, err)
		second, err := resolver.Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
