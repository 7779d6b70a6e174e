package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/pkg"
)

func newAdminCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Provision admin accounts",
	}

	cmd.AddCommand(newAdminCreateCmd(d))
	cmd.AddCommand(newAdminSetActiveCmd(d, "activate", true))
	cmd.AddCommand(newAdminSetActiveCmd(d, "deactivate", false))
	cmd.AddCommand(newAdminResetTokenCmd(d))

	return cmd
}

func newAdminCreateCmd(d deps) *cobra.Command {
	var (
		username string
		email    string
		name     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an active admin account",
		Example: `  desactl admin create --username admin1 --email admin1@desa.id
  desactl admin create --username admin1 --password 'rahasia-desa'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			username = strings.TrimSpace(username)
			if username == "" {
				return errors.New("username must not be empty")
			}

			if password == "" {
				var err error
				if password, err = d.readPassword("Password: "); err != nil {
					return err
				}
				confirm, err := d.readPassword("Confirm password: ")
				if err != nil {
					return err
				}
				if password != confirm {
					return errors.New("passwords do not match")
				}
			}
			if err := auth.ValidateNewPassword(password); err != nil {
				return fmt.Errorf("%w (between %d characters and %d bytes)", err, auth.MinPasswordLength, auth.MaxPasswordBytes)
			}

			hash, err := d.hashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			store, closeStore, err := d.openAccounts(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			account := &auth.Account{
				Username:     username,
				Email:        email,
				DisplayName:  name,
				PasswordHash: hash,
				Role:         auth.RoleAdmin,
				IsActive:     true,
			}
			if err := store.Create(cmd.Context(), account); err != nil {
				return fmt.Errorf("create admin %q: %w", username, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", account.Username, account.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&name, "name", "", "display name, shown as news author")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newAdminSetActiveCmd(d deps, use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: use + " an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := d.openAccounts(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.SetActive(cmd.Context(), args[0], active); err != nil {
				return fmt.Errorf("%s %q: %w", use, args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q %sd\n", args[0], use)
			return nil
		},
	}
}

func newAdminResetTokenCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-token <username>",
		Short: "Issue a single-use password reset token",
		Long: `Issue a single-use password reset token for the account and print it.
The token replaces any earlier one and expires after reset_token_ttl.
Hand it to the admin out of band; it is redeemed via POST /reset-password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl := viper.GetDuration("reset_token_ttl")
			if ttl <= 0 {
				return fmt.Errorf("reset_token_ttl must be positive, got %s", ttl)
			}

			token, err := pkg.GenerateRandomString(32)
			if err != nil {
				return fmt.Errorf("generate reset token: %w", err)
			}
			expiresAt := d.now().Add(ttl)

			store, closeStore, err := d.openAccounts(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.SetResetToken(cmd.Context(), args[0], token, expiresAt); err != nil {
				return fmt.Errorf("set reset token for %q: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			fmt.Fprintf(out, "expires at %s\n", expiresAt.UTC().Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
