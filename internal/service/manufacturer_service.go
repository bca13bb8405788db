package service

import (
	"context"
	"errors"
	"strings"

	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/validation"
)

type ManufacturerService struct {
	manufacturerRepo repository.ManufacturerStore
	pageSize         int
}

func NewManufacturerService(manufacturerRepo repository.ManufacturerStore, pageSize int) *ManufacturerService {
	return &ManufacturerService{
		manufacturerRepo: manufacturerRepo,
		pageSize:         pageSize,
	}
}

type ManufacturerInput struct {
	Name    string
	Country string
}

func (in ManufacturerInput) validate() error {
	var errs validation.Errors
	errs.Required("name", in.Name)
	errs.Required("country", in.Country)
	return errs.Err()
}

// List returns manufacturers whose name contains input.Query.
func (s *ManufacturerService) List(ctx context.Context, input ListInput) (repository.ListResult[model.Manufacturer], error) {
	result, err := s.manufacturerRepo.List(ctx, input.params(s.pageSize))
	return result, storeError(err)
}

func (s *ManufacturerService) Get(ctx context.Context, rawID string) (*model.Manufacturer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) Create(ctx context.Context, input ManufacturerInput) (*model.Manufacturer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	manufacturer := &model.Manufacturer{
		Name:    strings.TrimSpace(input.Name),
		Country: strings.TrimSpace(input.Country),
	}
	if err := s.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, s.writeError(err)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) Update(ctx context.Context, rawID string, input ManufacturerInput) (*model.Manufacturer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	manufacturer := &model.Manufacturer{
		ID:      id,
		Name:    strings.TrimSpace(input.Name),
		Country: strings.TrimSpace(input.Country),
	}
	if err := s.manufacturerRepo.Update(ctx, manufacturer); err != nil {
		return nil, s.writeError(err)
	}
	return s.Get(ctx, rawID)
}

func (s *ManufacturerService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return storeError(s.manufacturerRepo.Delete(ctx, id))
}

func (s *ManufacturerService) writeError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		var errs validation.Errors
		errs.Add("name", "Manufacturer with this Name already exists.")
		return errs.Err()
	}
	return storeError(err)
}
