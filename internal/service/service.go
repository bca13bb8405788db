package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"taxi-service/internal/repository"
	"taxi-service/internal/search"
	"taxi-service/internal/validation"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = validation.ErrInvalid
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("invalid credentials")
)

// ListInput is a search query and a 1-based page number (0 for the first page).
type ListInput struct {
	Query string
	Page  int
}

func (in ListInput) params(pageSize int) repository.ListParams {
	return repository.ListParams{
		Query:    search.Normalize(in.Query),
		Page:     in.Page,
		PageSize: pageSize,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}

// storeError maps repository errors onto service errors.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, search.ErrInvalidPage):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}
