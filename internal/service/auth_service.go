package service

import (
	"context"
	"errors"
	"time"

	"taxi-service/internal/auth"
	"taxi-service/internal/model"
	"taxi-service/internal/repository"
)

type AuthService struct {
	driverRepo repository.DriverStore
	hasher     *auth.Hasher
	issuer     *auth.Issuer
}

func NewAuthService(driverRepo repository.DriverStore, hasher *auth.Hasher, issuer *auth.Issuer) *AuthService {
	return &AuthService{
		driverRepo: driverRepo,
		hasher:     hasher,
		issuer:     issuer,
	}
}

type Session struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Driver      *model.Driver `json:"driver"`
}

// Login checks the credentials of an active driver and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	driver, err := s.driverRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !driver.IsActive || !s.hasher.Check(driver.PasswordHash, password) {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.issuer.Issue(driver)
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Driver:      driver,
	}, nil
}
