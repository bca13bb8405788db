package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taxi-service/internal/repository/memory"
	"taxi-service/internal/service"
	"taxi-service/internal/validation"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "createsuperuser"}, names)
}

func TestCreateSuperuserFlags(t *testing.T) {
	cmd := createSuperuserCmd()

	for _, name := range []string{"username", "password", "email"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestCreateSuperuser(t *testing.T) {
	stores := memory.NewStores()

	driver, err := createSuperuser(context.Background(), stores, bcrypt.MinCost, service.CreateSuperuserInput{
		Username: "admin",
		Password: "admin-password",
		Email:    "admin@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", driver.Username)
	assert.True(t, driver.IsStaff)
	assert.True(t, driver.IsSuperuser)
	assert.Empty(t, driver.LicenseNumber)

	_, err = createSuperuser(context.Background(), stores, bcrypt.MinCost, service.CreateSuperuserInput{
		Username: "admin",
		Password: "admin-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalid))
}
