package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
)

type DriverStore struct {
	s *Store
}

var _ repository.DriverStore = (*DriverStore)(nil)

func driverID(d model.Driver) uuid.UUID { return d.ID }

func driverUsername(d model.Driver) string { return d.Username }

func carID(c model.Car) uuid.UUID { return c.ID }

func carModel(c model.Car) string { return c.Model }

func (d *DriverStore) List(_ context.Context, params repository.ListParams) (repository.ListResult[model.Driver], error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	rows := sorted(d.s, d.s.drivers, driverID, driverUsername)
	return page(rows, driverUsername, params)
}

// GetByID returns the driver with its cars and their manufacturers loaded.
func (d *DriverStore) GetByID(_ context.Context, id uuid.UUID) (*model.Driver, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	driver, ok := d.s.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	cars := make(map[uuid.UUID]model.Car)
	for assigned, members := range d.s.carDrivers {
		if _, ok := members[id]; ok {
			cars[assigned] = d.s.withManufacturer(d.s.cars[assigned])
		}
	}
	driver.Cars = sorted(d.s, cars, carID, carModel)
	return &driver, nil
}

func (d *DriverStore) GetByUsername(_ context.Context, username string) (*model.Driver, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	for _, driver := range d.s.drivers {
		if driver.Username == username {
			return &driver, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (d *DriverStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Driver, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	found := make(map[uuid.UUID]model.Driver, len(ids))
	for _, id := range ids {
		if driver, ok := d.s.drivers[id]; ok {
			found[id] = driver
		}
	}
	return sorted(d.s, found, driverID, driverUsername), nil
}

func (d *DriverStore) Create(_ context.Context, driver *model.Driver) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	for _, other := range d.s.drivers {
		if other.Username == driver.Username {
			return repository.ErrDuplicate
		}
		if driver.LicenseNumber != "" && other.LicenseNumber == driver.LicenseNumber {
			return repository.ErrDuplicate
		}
	}

	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	now := time.Now().UTC()
	if driver.DateJoined.IsZero() {
		driver.DateJoined = now
	}
	driver.CreatedAt, driver.UpdatedAt = now, now

	stored := *driver
	stored.Cars = nil
	d.s.drivers[driver.ID] = stored
	d.s.track(driver.ID)
	return nil
}

func (d *DriverStore) UpdateLicenseNumber(_ context.Context, id uuid.UUID, licenseNumber string) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	driver, ok := d.s.drivers[id]
	if !ok {
		return repository.ErrNotFound
	}
	for otherID, other := range d.s.drivers {
		if otherID != id && licenseNumber != "" && other.LicenseNumber == licenseNumber {
			return repository.ErrDuplicate
		}
	}
	driver.LicenseNumber = licenseNumber
	driver.UpdatedAt = time.Now().UTC()
	d.s.drivers[id] = driver
	return nil
}

// Delete removes the driver and all of its car assignments.
func (d *DriverStore) Delete(_ context.Context, id uuid.UUID) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	if _, ok := d.s.drivers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(d.s.drivers, id)
	delete(d.s.order, id)
	for _, members := range d.s.carDrivers {
		delete(members, id)
	}
	return nil
}

func (d *DriverStore) Count(_ context.Context) (int64, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return int64(len(d.s.drivers)), nil
}
