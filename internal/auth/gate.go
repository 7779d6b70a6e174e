package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
)

const BearerPrefix = "Bearer "

//go:generate mockgen -source=$GOFILE -destination=gate_mocks_test.go -package=auth_test

type CredentialStore interface {
	GetByID(ctx context.Context, id int) (*Account, error)
	GetActiveByUsername(ctx context.Context, username string) (*Account, error)
	GetActiveByResetToken(ctx context.Context, resetToken string) (*Account, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
	ResetPassword(ctx context.Context, id int, resetToken, passwordHash string, changedAt time.Time) error
}

// RevocationList is a denylist of token ids, consulted on every gate check.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Gate admits a request only when its bearer token verifies and the account
// behind it is still active. Nothing is cached between checks.
type Gate struct {
	tokens  *TokenService
	store   CredentialStore
	revoked RevocationList
}

// NewGate creates the gate. revoked may be nil, in which case tokens are
// valid until they expire.
func NewGate(tokens *TokenService, store CredentialStore, revoked RevocationList) *Gate {
	return &Gate{
		tokens:  tokens,
		store:   store,
		revoked: revoked,
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(authHeader string) (string, bool) {
	return strings.CutPrefix(authHeader, BearerPrefix)
}

func (g *Gate) CheckRequest(r *http.Request) (*Profile, error) {
	return g.Check(r.Context(), r.Header.Get("Authorization"))
}

// Check returns the profile of the admitted account. Denials wrap one of
// ErrMissingToken, ErrInvalidToken or ErrInactiveOrUnknownAccount; any other
// error is an upstream failure.
func (g *Gate) Check(ctx context.Context, authHeader string) (*Profile, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authGate.check")
	defer span.End()

	rawToken, ok := BearerToken(authHeader)
	if !ok {
		return nil, ErrMissingToken
	}

	claims, err := g.tokens.Verify(rawToken)
	if err != nil {
		log.Tracef("auth gate, verify token: %s", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			log.Tracef("auth gate, token of [%s] revoked", claims.Username)
			return nil, ErrInvalidToken
		}
	}

	account, err := g.store.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInactiveOrUnknownAccount
		}
		return nil, fmt.Errorf("get account %d: %w", claims.AccountID, err)
	}
	if !account.IsActive {
		log.Tracef("auth gate, account [%s] not active", account.Username)
		return nil, ErrInactiveOrUnknownAccount
	}

	if account.PasswordVersion() != claims.PasswordVersion {
		log.Tracef("auth gate, token of [%s] issued before password change", account.Username)
		return nil, ErrInvalidToken
	}

	return account.Profile(), nil
}
