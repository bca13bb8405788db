package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
)

type CarStore struct {
	s *Store
}

var _ repository.CarStore = (*CarStore)(nil)

func (c *CarStore) List(_ context.Context, params repository.ListParams) (repository.ListResult[model.Car], error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	rows := sorted(c.s, c.s.cars, carID, carModel)
	result, err := page(rows, carModel, params)
	if err != nil {
		return result, err
	}
	items := make([]model.Car, 0, len(result.Items))
	for _, car := range result.Items {
		items = append(items, c.s.withManufacturer(car))
	}
	result.Items = items
	return result, nil
}

// GetByID returns the car with its manufacturer and drivers loaded.
func (c *CarStore) GetByID(_ context.Context, id uuid.UUID) (*model.Car, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	car, ok := c.s.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	car = c.s.withManufacturer(car)

	drivers := make(map[uuid.UUID]model.Driver)
	for member := range c.s.carDrivers[id] {
		drivers[member] = c.s.drivers[member]
	}
	car.Drivers = sorted(c.s, drivers, driverID, driverUsername)
	return &car, nil
}

func (c *CarStore) Create(_ context.Context, car *model.Car) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.manufacturers[car.ManufacturerID]; !ok {
		return repository.ErrNotFound
	}
	if err := c.checkDrivers(car.Drivers); err != nil {
		return err
	}

	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	now := time.Now().UTC()
	car.CreatedAt, car.UpdatedAt = now, now

	stored := *car
	stored.Manufacturer = nil
	stored.Drivers = nil
	c.s.cars[car.ID] = stored
	c.s.track(car.ID)
	c.s.setDrivers(car.ID, car.Drivers)
	return nil
}

func (c *CarStore) Update(_ context.Context, car *model.Car) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	current, ok := c.s.cars[car.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := c.s.manufacturers[car.ManufacturerID]; !ok {
		return repository.ErrNotFound
	}
	if err := c.checkDrivers(car.Drivers); err != nil {
		return err
	}

	current.Model = car.Model
	current.ManufacturerID = car.ManufacturerID
	current.UpdatedAt = time.Now().UTC()
	c.s.cars[car.ID] = current
	c.s.setDrivers(car.ID, car.Drivers)
	return nil
}

func (c *CarStore) Delete(_ context.Context, id uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.cars[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.s.cars, id)
	delete(c.s.carDrivers, id)
	delete(c.s.order, id)
	return nil
}

func (c *CarStore) Count(_ context.Context) (int64, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return int64(len(c.s.cars)), nil
}

func (c *CarStore) AddDriver(_ context.Context, carID, driverID uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.cars[carID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := c.s.drivers[driverID]; !ok {
		return repository.ErrNotFound
	}
	if c.s.carDrivers[carID] == nil {
		c.s.carDrivers[carID] = make(map[uuid.UUID]struct{})
	}
	c.s.carDrivers[carID][driverID] = struct{}{}
	return nil
}

func (c *CarStore) RemoveDriver(_ context.Context, carID, driverID uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	delete(c.s.carDrivers[carID], driverID)
	return nil
}

func (c *CarStore) checkDrivers(drivers []model.Driver) error {
	for _, driver := range drivers {
		if _, ok := c.s.drivers[driver.ID]; !ok {
			return repository.ErrNotFound
		}
	}
	return nil
}

// setDrivers replaces the driver set of a car. Callers hold s.mu.
func (s *Store) setDrivers(carID uuid.UUID, drivers []model.Driver) {
	members := make(map[uuid.UUID]struct{}, len(drivers))
	for _, driver := range drivers {
		members[driver.ID] = struct{}{}
	}
	s.carDrivers[carID] = members
}

// withManufacturer attaches the manufacturer to car. Callers hold s.mu.
func (s *Store) withManufacturer(car model.Car) model.Car {
	if manufacturer, ok := s.manufacturers[car.ManufacturerID]; ok {
		car.Manufacturer = &manufacturer
	}
	return car
}
