package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taxi-service/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	driver := &model.Driver{ID: uuid.New(), Username: "admin_username", IsStaff: true}
	issuer := NewIssuer("secret", time.Hour)

	token, expiresAt, err := issuer.Issue(driver)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := NewParser("secret").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, driver.ID, claims.UserID)
	assert.Equal(t, "admin_username", claims.Username)
	assert.True(t, claims.IsStaff)
}

func TestParseRejects(t *testing.T) {
	driver := &model.Driver{ID: uuid.New(), Username: "driver"}

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewIssuer("secret", time.Hour).Issue(driver)
		require.NoError(t, err)

		_, err = NewParser("other").Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		issuer := NewIssuer("secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, err := issuer.Issue(driver)
		require.NoError(t, err)

		_, err = NewParser("secret").Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: driver.ID}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewParser("secret").Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Username: "ghost"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewParser("secret").Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewParser("secret").Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)
	assert.True(t, h.Check(hashed, "password123"))
	assert.False(t, h.Check(hashed, "password124"))
	assert.False(t, h.Check("not-a-hash", "password123"))

	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
}
