package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
)

type ManufacturerStore struct {
	s *Store
}

var _ repository.ManufacturerStore = (*ManufacturerStore)(nil)

func manufacturerID(m model.Manufacturer) uuid.UUID { return m.ID }

func manufacturerName(m model.Manufacturer) string { return m.Name }

func (m *ManufacturerStore) List(_ context.Context, params repository.ListParams) (repository.ListResult[model.Manufacturer], error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	rows := sorted(m.s, m.s.manufacturers, manufacturerID, manufacturerName)
	return page(rows, manufacturerName, params)
}

func (m *ManufacturerStore) GetByID(_ context.Context, id uuid.UUID) (*model.Manufacturer, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	manufacturer, ok := m.s.manufacturers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &manufacturer, nil
}

func (m *ManufacturerStore) Create(_ context.Context, manufacturer *model.Manufacturer) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if m.nameTaken(manufacturer.Name, uuid.Nil) {
		return repository.ErrDuplicate
	}
	if manufacturer.ID == uuid.Nil {
		manufacturer.ID = uuid.New()
	}
	now := time.Now().UTC()
	manufacturer.CreatedAt, manufacturer.UpdatedAt = now, now

	m.s.manufacturers[manufacturer.ID] = *manufacturer
	m.s.track(manufacturer.ID)
	return nil
}

func (m *ManufacturerStore) Update(_ context.Context, manufacturer *model.Manufacturer) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	current, ok := m.s.manufacturers[manufacturer.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if m.nameTaken(manufacturer.Name, manufacturer.ID) {
		return repository.ErrDuplicate
	}
	current.Name = manufacturer.Name
	current.Country = manufacturer.Country
	current.UpdatedAt = time.Now().UTC()
	m.s.manufacturers[current.ID] = current
	return nil
}

// Delete removes the manufacturer together with its cars.
func (m *ManufacturerStore) Delete(_ context.Context, id uuid.UUID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.manufacturers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.s.manufacturers, id)
	delete(m.s.order, id)

	for carID, car := range m.s.cars {
		if car.ManufacturerID == id {
			delete(m.s.cars, carID)
			delete(m.s.carDrivers, carID)
			delete(m.s.order, carID)
		}
	}
	return nil
}

func (m *ManufacturerStore) Count(_ context.Context) (int64, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return int64(len(m.s.manufacturers)), nil
}

// nameTaken mirrors the unique index on manufacturers.name.
func (m *ManufacturerStore) nameTaken(name string, except uuid.UUID) bool {
	for id, other := range m.s.manufacturers {
		if id != except && other.Name == name {
			return true
		}
	}
	return false
}
