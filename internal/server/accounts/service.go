// Package accounts owns the account records and the authentication logic on
// top of them: registration, credential login with token issuance, the
// token-or-credentials resolver, and account update/removal.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/malusolero/login-service/internal/common"
	"github.com/malusolero/login-service/internal/server/auth"
	"github.com/malusolero/login-service/internal/server/config"
	"github.com/malusolero/login-service/internal/server/password"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// TokenValidityDuration exposes the configured token lifetime, e.g. for the
// "duration" field of the login response.
func (s *Service) TokenValidityDuration() time.Duration {
	return s.tokenValidityDuration
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username must be at most %d characters", common.ErrorValidation, MaxUsernameLength)
	}
	return nil
}

// Register creates a new account from a username and a raw password. The
// password is checked against the strength policy and stored only as a hash.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (*Account, error) {

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if rawPassword == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if !password.ValidateStrength(rawPassword) {
		return nil, common.ErrorWeakPassword
	}

	hash, err := password.Hash(rawPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account, err := s.repo.Create(ctx, &Account{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the credentials and issues a signed token bound to the
// account id. An unknown username yields ErrorNotFound; a wrong password
// yields ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {

	if username == "" || rawPassword == "" {
		return "", fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if !password.Verify(rawPassword, account.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Resolve is the unified authentication entry point. The identifier is first
// treated as a token; if it verifies, the bound account is looked up by id
// (a live token for a deleted account resolves to nothing). Otherwise the
// identifier is treated as a username and the password is checked. Every
// failure surfaces as ErrorUnauthorized so callers cannot tell why.
func (s *Service) Resolve(ctx context.Context, identifier, rawPassword string) (*Account, error) {

	if id, err := auth.GetAccountIDFromToken(identifier, s.jwtSecret); err == nil {
		account, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, common.ErrorUnauthorized
		}
		return account, nil
	}

	account, err := s.repo.GetByUsername(ctx, identifier)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	if !password.Verify(rawPassword, account.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return account, nil
}

// Update rewrites the username and password of an already-resolved account.
// The new password is strength-checked and re-hashed; the account may have
// been deleted in the meantime, which surfaces as ErrorNotFound.
func (s *Service) Update(ctx context.Context, account *Account, newUsername, newPassword string) (*Account, error) {

	if err := validateUsername(newUsername); err != nil {
		return nil, err
	}
	if !password.ValidateStrength(newPassword) {
		return nil, common.ErrorWeakPassword
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	updated, err := s.repo.Update(ctx, account.ID, newUsername, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return updated, nil
}

// Delete removes an already-resolved account.
func (s *Service) Delete(ctx context.Context, account *Account) error {

	err := s.repo.Delete(ctx, account.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}
