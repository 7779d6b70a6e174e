package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

const (
	MinPasswordLength = 8
	// bcrypt refuses longer input
	MaxPasswordBytes = 72
)

// ValidateNewPassword checks a password before it gets hashed.
func ValidateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

type Service struct {
	store   CredentialStore
	tokens  *TokenService
	gate    *Gate
	revoked RevocationList
	now     func() time.Time

	// ability to inject a cheaper hasher for unit tests
	HashPasswordFunc func(password string) (string, error)
}

func NewService(store CredentialStore, tokens *TokenService, revoked RevocationList) *Service {
	return &Service{
		store:            store,
		tokens:           tokens,
		gate:             NewGate(tokens, store, revoked),
		revoked:          revoked,
		now:              time.Now,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (s *Service) Gate() *Gate {
	return s.gate
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Login returns ErrInvalidCredentials both for unknown usernames and for wrong
// passwords.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer span.End()

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.store.GetActiveByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			log.Tracef("login, no active account [%s]", creds.Username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, account.PasswordHash) {
		log.Tracef("login, wrong password for [%s]", creds.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.store.UpdateLastLogin(ctx, account.ID, now); err != nil {
		log.Errorf("login, update last login [%d]: %s", account.ID, err)
	} else {
		account.LastLogin = &now
	}

	token, err := s.tokens.Issue(account.ID, account.Username, account.Role, account.PasswordVersion())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  account.Profile(),
	}, nil
}

// Logout denylists the presented token for the rest of its lifetime. A
// missing or invalid token is not an error, the client discards it anyway.
func (s *Service) Logout(ctx context.Context, authHeader string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer span.End()

	rawToken, ok := BearerToken(authHeader)
	if !ok || s.revoked == nil {
		return nil
	}

	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		log.Tracef("logout, ignoring token: %s", err)
		return nil
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	log.Tracef("logout, token of [%s] revoked for %s", claims.Username, ttl)

	return nil
}

func (s *Service) Verify(ctx context.Context, authHeader string) (*Profile, error) {
	return s.gate.Check(ctx, authHeader)
}

// ResetPassword validates the new password before touching the store, so a
// weak password is rejected no matter what token came with it.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.resetPassword")
	defer span.End()

	if newPassword == "" {
		return ErrMissingResetFields
	}
	if err := ValidateNewPassword(newPassword); err != nil {
		return err
	}
	if resetToken == "" {
		return ErrMissingResetFields
	}

	account, err := s.store.GetActiveByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidOrExpiredResetToken
		}
		return fmt.Errorf("get account by reset token: %w", err)
	}

	now := s.now()
	if account.ResetTokenExpiresAt == nil || !now.Before(*account.ResetTokenExpiresAt) {
		log.Tracef("reset password, reset token of [%s] expired", account.Username)
		return ErrInvalidOrExpiredResetToken
	}

	hash, err := s.HashPasswordFunc(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// postgres keeps microseconds
	changedAt := now.Truncate(time.Microsecond)
	if err := s.store.ResetPassword(ctx, account.ID, resetToken, hash, changedAt); err != nil {
		if errors.Is(err, ErrInvalidOrExpiredResetToken) {
			return ErrInvalidOrExpiredResetToken
		}
		return fmt.Errorf("reset password [%d]: %w", account.ID, err)
	}

	log.Infof("password reset for [%s]", account.Username)
	return nil
}
