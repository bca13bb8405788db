// Package memory provides in-process implementations of the repository
// stores. They back the service when STORAGE_DRIVER=memory and in tests.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/search"
)

// Store holds all entities behind a single lock so that cross-entity
// operations (cascading deletes, preloading) see a consistent state.
type Store struct {
	mu sync.RWMutex

	manufacturers map[uuid.UUID]model.Manufacturer
	drivers       map[uuid.UUID]model.Driver
	cars          map[uuid.UUID]model.Car
	carDrivers    map[uuid.UUID]map[uuid.UUID]struct{}

	// insertion order, used to break ties in the default ordering
	seq   uint64
	order map[uuid.UUID]uint64
}

func New() *Store {
	return &Store{
		manufacturers: make(map[uuid.UUID]model.Manufacturer),
		drivers:       make(map[uuid.UUID]model.Driver),
		cars:          make(map[uuid.UUID]model.Car),
		carDrivers:    make(map[uuid.UUID]map[uuid.UUID]struct{}),
		order:         make(map[uuid.UUID]uint64),
	}
}

// NewStores returns repository stores sharing one fresh Store.
func NewStores() repository.Stores {
	s := New()
	return repository.Stores{
		Manufacturers: s.Manufacturers(),
		Drivers:       s.Drivers(),
		Cars:          s.Cars(),
	}
}

func (s *Store) Manufacturers() *ManufacturerStore {
	return &ManufacturerStore{s: s}
}

func (s *Store) Drivers() *DriverStore {
	return &DriverStore{s: s}
}

func (s *Store) Cars() *CarStore {
	return &CarStore{s: s}
}

// track records id in insertion order. Callers hold s.mu.
func (s *Store) track(id uuid.UUID) {
	s.seq++
	s.order[id] = s.seq
}

// sorted returns the values of rows ordered by key, then insertion order.
func sorted[T any](s *Store, rows map[uuid.UUID]T, id func(T) uuid.UUID, key func(T) string) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki < kj
		}
		return s.order[id(out[i])] < s.order[id(out[j])]
	})
	return out
}

// page applies the search and pagination of params to ordered rows.
func page[T any](rows []T, field func(T) string, params repository.ListParams) (repository.ListResult[T], error) {
	matched := search.Filter(rows, field, params.Query)
	info, err := search.NewPageInfo(params.Page, params.PageSize, int64(len(matched)))
	if err != nil {
		return repository.ListResult[T]{}, err
	}
	return repository.ListResult[T]{Items: search.Paginate(matched, info), Page: info}, nil
}
