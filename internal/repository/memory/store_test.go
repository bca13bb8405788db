package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/search"
)

func usernames(drivers []model.Driver) []string {
	out := make([]string, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, d.Username)
	}
	return out
}

func mustManufacturer(t *testing.T, s *Store, name, country string) *model.Manufacturer {
	t.Helper()
	m := &model.Manufacturer{Name: name, Country: country}
	require.NoError(t, s.Manufacturers().Create(context.Background(), m))
	return m
}

func mustDriver(t *testing.T, s *Store, username, license string) *model.Driver {
	t.Helper()
	d := &model.Driver{Username: username, LicenseNumber: license, IsActive: true}
	require.NoError(t, s.Drivers().Create(context.Background(), d))
	return d
}

func TestDriverStore_ListSearch(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustDriver(t, s, "user2", "ABC54321")
	mustDriver(t, s, "user1", "ABC12345")

	all, err := s.Drivers().List(ctx, repository.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"user1", "user2"}, usernames(all.Items))
	assert.Equal(t, int64(2), all.Page.Total)

	found, err := s.Drivers().List(ctx, repository.ListParams{Query: "user2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user2"}, usernames(found.Items))

	found, err = s.Drivers().List(ctx, repository.ListParams{Query: "USER"})
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)
}

func TestDriverStore_Pagination(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, name := range []string{"e", "d", "c", "b", "a"} {
		mustDriver(t, s, name, "")
	}

	first, err := s.Drivers().List(ctx, repository.ListParams{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, usernames(first.Items))
	assert.Equal(t, 3, first.Page.NumPages)

	last, err := s.Drivers().List(ctx, repository.ListParams{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, usernames(last.Items))

	_, err = s.Drivers().List(ctx, repository.ListParams{Page: 4, PageSize: 2})
	assert.ErrorIs(t, err, search.ErrInvalidPage)
}

func TestDriverStore_Uniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustDriver(t, s, "driver", "AAA12345")

	err := s.Drivers().Create(ctx, &model.Driver{Username: "driver"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = s.Drivers().Create(ctx, &model.Driver{Username: "other", LicenseNumber: "AAA12345"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// superusers without a license do not collide with each other
	mustDriver(t, s, "admin1", "")
	mustDriver(t, s, "admin2", "")

	other := mustDriver(t, s, "other", "BBB12345")
	err = s.Drivers().UpdateLicenseNumber(ctx, other.ID, "AAA12345")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	require.NoError(t, s.Drivers().UpdateLicenseNumber(ctx, other.ID, "CCC12345"))

	got, err := s.Drivers().GetByUsername(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "CCC12345", got.LicenseNumber)

	_, err = s.Drivers().GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCarStore_DriversAndCascade(t *testing.T) {
	ctx := context.Background()
	s := New()
	renault := mustManufacturer(t, s, "Renault", "France")
	bob := mustDriver(t, s, "bob", "AAA12345")
	alice := mustDriver(t, s, "alice", "BBB12345")

	car := &model.Car{Model: "Scenic", ManufacturerID: renault.ID, Drivers: []model.Driver{*bob, *alice}}
	require.NoError(t, s.Cars().Create(ctx, car))

	got, err := s.Cars().GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Manufacturer)
	assert.Equal(t, "Renault", got.Manufacturer.Name)
	assert.Equal(t, []string{"alice", "bob"}, usernames(got.Drivers))

	require.NoError(t, s.Cars().RemoveDriver(ctx, car.ID, bob.ID))
	got, err = s.Cars().GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(got.Drivers))

	withCars, err := s.Drivers().GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, withCars.Cars, 1)
	assert.Equal(t, "Scenic", withCars.Cars[0].Model)

	require.NoError(t, s.Drivers().Delete(ctx, alice.ID))
	got, err = s.Cars().GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Drivers)

	require.NoError(t, s.Manufacturers().Delete(ctx, renault.ID))
	_, err = s.Cars().GetByID(ctx, car.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	total, err := s.Cars().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCarStore_RejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	s := New()
	renault := mustManufacturer(t, s, "Renault", "France")

	err := s.Cars().Create(ctx, &model.Car{Model: "Logan", ManufacturerID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = s.Cars().Create(ctx, &model.Car{
		Model:          "Logan",
		ManufacturerID: renault.ID,
		Drivers:        []model.Driver{{ID: uuid.New()}},
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = s.Cars().AddDriver(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestManufacturerStore(t *testing.T) {
	ctx := context.Background()
	s := New()
	renault := mustManufacturer(t, s, "Renault", "France")
	mustManufacturer(t, s, "Peugeot", "France")

	err := s.Manufacturers().Create(ctx, &model.Manufacturer{Name: "Renault", Country: "Spain"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	found, err := s.Manufacturers().List(ctx, repository.ListParams{Query: "renault"})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, renault.ID, found.Items[0].ID)

	renault.Country = "FR"
	require.NoError(t, s.Manufacturers().Update(ctx, renault))
	got, err := s.Manufacturers().GetByID(ctx, renault.ID)
	require.NoError(t, err)
	assert.Equal(t, "FR", got.Country)

	err = s.Manufacturers().Update(ctx, &model.Manufacturer{ID: uuid.New(), Name: "X"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = s.Manufacturers().Update(ctx, &model.Manufacturer{ID: renault.ID, Name: "Peugeot"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	assert.ErrorIs(t, s.Manufacturers().Delete(ctx, uuid.New()), repository.ErrNotFound)
}
