package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemveer/inventory/internal/domain"
)

func TestPassword(t *testing.T) {
	t.Run("hash verifies against the original", func(t *testing.T) {
		hash, err := HashPassword("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)
		assert.NoError(t, VerifyPassword(hash, "s3cret"))
	})

	t.Run("mismatch maps to invalid credentials", func(t *testing.T) {
		hash, err := HashPassword("s3cret")
		require.NoError(t, err)
		assert.ErrorIs(t, VerifyPassword(hash, "wrong"), domain.ErrInvalidCredentials)
	})

	t.Run("garbage hash maps to invalid credentials", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPassword("not-a-hash", "s3cret"), domain.ErrInvalidCredentials)
	})
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("round trip preserves the requester", func(t *testing.T) {
		actorID := uuid.New()

		token, err := issuer.Issue(actorID, domain.RoleManager)
		require.NoError(t, err)

		requester, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, actorID, requester.ID)
		assert.Equal(t, domain.RoleManager, requester.Role)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := issuer.Issue(uuid.New(), domain.RoleAdmin)
		require.NoError(t, err)

		other := NewTokenIssuer("other-secret", time.Hour)
		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		shortLived := NewTokenIssuer("test-secret", -time.Minute)
		token, err := shortLived.Issue(uuid.New(), domain.RoleWorker)
		require.NoError(t, err)

		_, err = shortLived.Parse(token)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := issuer.Parse("garbage")
		assert.Error(t, err)
	})
}
