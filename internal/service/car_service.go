package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/validation"
)

type CarService struct {
	carRepo          repository.CarStore
	manufacturerRepo repository.ManufacturerStore
	driverRepo       repository.DriverStore
	pageSize         int
}

func NewCarService(
	carRepo repository.CarStore,
	manufacturerRepo repository.ManufacturerStore,
	driverRepo repository.DriverStore,
	pageSize int,
) *CarService {
	return &CarService{
		carRepo:          carRepo,
		manufacturerRepo: manufacturerRepo,
		driverRepo:       driverRepo,
		pageSize:         pageSize,
	}
}

type CarInput struct {
	Model          string
	ManufacturerID string
	DriverIDs      []string
}

// List returns cars whose model contains input.Query.
func (s *CarService) List(ctx context.Context, input ListInput) (repository.ListResult[model.Car], error) {
	result, err := s.carRepo.List(ctx, input.params(s.pageSize))
	return result, storeError(err)
}

// Get returns the car with its manufacturer and drivers.
func (s *CarService) Get(ctx context.Context, rawID string) (*model.Car, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return car, nil
}

func (s *CarService) Create(ctx context.Context, input CarInput) (*model.Car, error) {
	car, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, storeError(err)
	}
	return s.Get(ctx, car.ID.String())
}

func (s *CarService) Update(ctx context.Context, rawID string, input CarInput) (*model.Car, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	car, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}
	car.ID = id
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, storeError(err)
	}
	return s.Get(ctx, rawID)
}

func (s *CarService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return storeError(s.carRepo.Delete(ctx, id))
}

// ToggleAssign adds the principal to the car's drivers, or removes it if
// already assigned. It reports whether the principal is assigned afterwards.
func (s *CarService) ToggleAssign(ctx context.Context, principal model.Principal, rawID string) (*model.Car, bool, error) {
	car, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, false, err
	}

	assigned := !car.HasDriver(principal.DriverID)
	if assigned {
		err = s.carRepo.AddDriver(ctx, car.ID, principal.DriverID)
	} else {
		err = s.carRepo.RemoveDriver(ctx, car.ID, principal.DriverID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// the token outlived its driver
			return nil, false, ErrPermissionDenied
		}
		return nil, false, storeError(err)
	}

	car, err = s.Get(ctx, rawID)
	if err != nil {
		return nil, false, err
	}
	return car, assigned, nil
}

// build validates input and resolves its manufacturer and drivers.
func (s *CarService) build(ctx context.Context, input CarInput) (*model.Car, error) {
	var errs validation.Errors
	errs.Required("model", input.Model)

	var manufacturerID uuid.UUID
	if strings.TrimSpace(input.ManufacturerID) == "" {
		errs.Add("manufacturer", validation.MsgRequired)
	} else if id, err := uuid.Parse(strings.TrimSpace(input.ManufacturerID)); err != nil {
		errs.Add("manufacturer", msgInvalidChoice)
	} else if _, err := s.manufacturerRepo.GetByID(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		errs.Add("manufacturer", msgInvalidChoice)
	} else {
		manufacturerID = id
	}

	drivers, err := s.resolveDrivers(ctx, input.DriverIDs, &errs)
	if err != nil {
		return nil, err
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &model.Car{
		Model:          strings.TrimSpace(input.Model),
		ManufacturerID: manufacturerID,
		Drivers:        drivers,
	}, nil
}

const msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."

func (s *CarService) resolveDrivers(ctx context.Context, rawIDs []string, errs *validation.Errors) ([]model.Driver, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	seen := make(map[uuid.UUID]struct{}, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			errs.Add("drivers", msgInvalidChoice)
			return nil, nil
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	drivers, err := s.driverRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(drivers) != len(ids) {
		errs.Add("drivers", msgInvalidChoice)
		return nil, nil
	}
	return drivers, nil
}
