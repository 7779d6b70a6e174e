package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

const accountColumns = `id, username, email, display_name, password_hash, role, is_active,
	last_login, reset_token, reset_token_expires_at, password_changed_at, created_at`

var _ CredentialStore = (*Repo)(nil)

// Repo is the postgres backed credential store (table admin_account).
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.DisplayName,
		&a.PasswordHash,
		&a.Role,
		&a.IsActive,
		&a.LastLogin,
		&a.ResetToken,
		&a.ResetTokenExpiresAt,
		&a.PasswordChangedAt,
		&a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repo) GetByID(ctx context.Context, id int) (*Account, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authRepo.getByID")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	return scanAccount(r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM admin_account WHERE id = $1`,
		id,
	))
}

func (r *Repo) GetActiveByUsername(ctx context.Context, username string) (*Account, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authRepo.getActiveByUsername")
	defer span.End()

	return scanAccount(r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM admin_account WHERE username = $1 AND is_active`,
		username,
	))
}

func (r *Repo) GetActiveByResetToken(ctx context.Context, resetToken string) (*Account, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authRepo.getActiveByResetToken")
	defer span.End()

	return scanAccount(r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM admin_account WHERE reset_token = $1 AND is_active`,
		resetToken,
	))
}

func (r *Repo) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE admin_account SET last_login = $1 WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ResetPassword swaps the hash and clears the reset token in one statement.
// The reset_token guard makes a second concurrent reset with the same token
// update nothing.
func (r *Repo) ResetPassword(ctx context.Context, id int, resetToken, passwordHash string, changedAt time.Time) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authRepo.resetPassword")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE admin_account
			SET password_hash = $1,
			    password_changed_at = $2,
			    reset_token = NULL,
			    reset_token_expires_at = NULL
			WHERE id = $3
			  AND reset_token = $4
			  AND reset_token_expires_at > $2
			  AND is_active;
		`,
		passwordHash, changedAt, id, resetToken,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidOrExpiredResetToken
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, account *Account) error {
	if account.Username == "" || account.PasswordHash == "" {
		return errors.New("username or password hash empty")
	}
	if account.Role == "" {
		account.Role = RoleAdmin
	}

	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO admin_account (username, email, display_name, password_hash, role, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, password_changed_at, created_at;
		`,
		account.Username, account.Email, account.DisplayName, account.PasswordHash, account.Role, account.IsActive,
	).Scan(&account.ID, &account.PasswordChangedAt, &account.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *Repo) SetActive(ctx context.Context, username string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE admin_account SET is_active = $1 WHERE username = $2`, active, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// SetResetToken stores a single-use reset token. Any previous token is
// replaced.
func (r *Repo) SetResetToken(ctx context.Context, username, resetToken string, expiresAt time.Time) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE admin_account SET reset_token = $1, reset_token_expires_at = $2 WHERE username = $3`,
		resetToken, expiresAt, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}
