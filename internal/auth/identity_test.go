package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher("pepper-123")

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.Compare(hash, "s3cret"))
	assert.False(t, hasher.Compare(hash, "wrong"))

	// a different pepper invalidates every existing hash
	other := NewPasswordHasher("different-pepper")
	assert.False(t, other.Compare(hash, "s3cret"))
}

func TestTokenIssuer(t *testing.T) {
	account := &models.Account{
		ID:       uuid.New(),
		Role:     models.RoleCandidate,
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
	}

	t.Run("round trip", func(t *testing.T) {
		issuer := NewTokenIssuer("jwt-secret", time.Hour)

		token, err := issuer.Issue(account)
		require.NoError(t, err)

		identity, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, identity.ID)
		assert.Equal(t, models.RoleCandidate, identity.Role)
		assert.Equal(t, "Ravi Kumar", identity.FullName)
		assert.Equal(t, "ravi@example.com", identity.Email)
		assert.False(t, identity.IsAnonymous())
		assert.True(t, identity.IsCandidate())
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		issuer := NewTokenIssuer("jwt-secret", time.Hour)
		token, err := issuer.Issue(account)
		require.NoError(t, err)

		other := NewTokenIssuer("another-secret", time.Hour)
		_, err = other.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		issuer := NewTokenIssuer("jwt-secret", -time.Minute)
		token, err := issuer.Issue(account)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		issuer := NewTokenIssuer("jwt-secret", time.Hour)

		_, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestIdentityZeroValue(t *testing.T) {
	var identity Identity

	assert.True(t, identity.IsAnonymous())
	assert.False(t, identity.IsCandidate())
	assert.False(t, identity.IsRecruiter())
}
