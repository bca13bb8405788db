package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"taxi-service/internal/auth"
	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/validation"
)

const maxUsernameLength = 150

const (
	msgUsernameTaken   = "A user with that username already exists."
	msgUsernameInvalid = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgLicenseTaken    = "Driver with this License number already exists."
)

type DriverService struct {
	driverRepo repository.DriverStore
	hasher     *auth.Hasher
	pageSize   int
}

func NewDriverService(driverRepo repository.DriverStore, hasher *auth.Hasher, pageSize int) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		hasher:     hasher,
		pageSize:   pageSize,
	}
}

type CreateDriverInput struct {
	Username             string
	Password             string
	PasswordConfirmation string
	FirstName            string
	LastName             string
	Email                string
	LicenseNumber        string
}

type CreateSuperuserInput struct {
	Username string
	Password string
	Email    string
}

// List returns drivers whose username contains input.Query.
func (s *DriverService) List(ctx context.Context, input ListInput) (repository.ListResult[model.Driver], error) {
	result, err := s.driverRepo.List(ctx, input.params(s.pageSize))
	return result, storeError(err)
}

// Get returns the driver with the cars assigned to it.
func (s *DriverService) Get(ctx context.Context, rawID string) (*model.Driver, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return driver, nil
}

func (s *DriverService) Create(ctx context.Context, input CreateDriverInput) (*model.Driver, error) {
	var errs validation.Errors
	if err := s.validateUsername(ctx, &errs, input.Username); err != nil {
		return nil, err
	}
	errs.AddError(validation.LicenseNumberField, validation.ValidateLicenseNumber(input.LicenseNumber))
	errs.AddError(validation.PasswordField, validation.ValidatePassword(input.Password, input.PasswordConfirmation))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	driver := &model.Driver{
		Username:      input.Username,
		PasswordHash:  hashed,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.TrimSpace(input.Email),
		LicenseNumber: input.LicenseNumber,
		IsActive:      true,
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, s.writeError(ctx, err, driver.Username)
	}
	return driver, nil
}

// CreateSuperuser creates a staff account. Superusers are not required to
// hold a license number.
func (s *DriverService) CreateSuperuser(ctx context.Context, input CreateSuperuserInput) (*model.Driver, error) {
	var errs validation.Errors
	if err := s.validateUsername(ctx, &errs, input.Username); err != nil {
		return nil, err
	}
	errs.Required(validation.PasswordField, input.Password)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	driver := &model.Driver{
		Username:     input.Username,
		PasswordHash: hashed,
		Email:        strings.TrimSpace(input.Email),
		IsStaff:      true,
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, s.writeError(ctx, err, driver.Username)
	}
	return driver, nil
}

// UpdateLicense replaces the license number of a driver.
func (s *DriverService) UpdateLicense(ctx context.Context, rawID, licenseNumber string) (*model.Driver, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	var errs validation.Errors
	errs.AddError(validation.LicenseNumberField, validation.ValidateLicenseNumber(licenseNumber))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.driverRepo.UpdateLicenseNumber(ctx, id, licenseNumber); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			errs.Add(validation.LicenseNumberField, msgLicenseTaken)
			return nil, errs.Err()
		}
		return nil, storeError(err)
	}
	return s.Get(ctx, rawID)
}

func (s *DriverService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return storeError(s.driverRepo.Delete(ctx, id))
}

// validateUsername records username problems in errs. The returned error
// is a store failure, not a validation result.
func (s *DriverService) validateUsername(ctx context.Context, errs *validation.Errors, username string) error {
	if username == "" {
		errs.Add("username", validation.MsgRequired)
		return nil
	}
	if utf8.RuneCountInString(username) > maxUsernameLength || !validUsername(username) {
		errs.Add("username", msgUsernameInvalid)
		return nil
	}
	_, err := s.driverRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		errs.Add("username", msgUsernameTaken)
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("lookup username: %w", err)
	}
	return nil
}

// writeError explains a duplicate on create. The username was checked
// up front, so a remaining conflict is either a race on the username or
// the license number.
func (s *DriverService) writeError(ctx context.Context, err error, username string) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return storeError(err)
	}
	var errs validation.Errors
	if _, lookupErr := s.driverRepo.GetByUsername(ctx, username); lookupErr == nil {
		errs.Add("username", msgUsernameTaken)
	} else {
		errs.Add(validation.LicenseNumberField, msgLicenseTaken)
	}
	return errs.Err()
}

func validUsername(username string) bool {
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@.+-_", r):
		default:
			return false
		}
	}
	return true
}
