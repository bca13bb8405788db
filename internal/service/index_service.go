package service

import (
	"context"
	"fmt"

	"taxi-service/internal/repository"
)

type IndexStats struct {
	NumDrivers       int64 `json:"num_drivers"`
	NumCars          int64 `json:"num_cars"`
	NumManufacturers int64 `json:"num_manufacturers"`
}

type IndexService struct {
	stores repository.Stores
}

func NewIndexService(stores repository.Stores) *IndexService {
	return &IndexService{stores: stores}
}

func (s *IndexService) Stats(ctx context.Context) (*IndexStats, error) {
	var (
		stats IndexStats
		err   error
	)
	if stats.NumDrivers, err = s.stores.Drivers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}
	if stats.NumCars, err = s.stores.Cars.Count(ctx); err != nil {
		return nil, fmt.Errorf("count cars: %w", err)
	}
	if stats.NumManufacturers, err = s.stores.Manufacturers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count manufacturers: %w", err)
	}
	return &stats, nil
}
