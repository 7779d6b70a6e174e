package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log in to a running server and keep the token locally",
	}

	var username string
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := d.newSession()
			if err != nil {
				return err
			}
			password, err := d.readPassword("Password: ")
			if err != nil {
				return err
			}

			profile, err := m.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", profile.Username, profile.Role)
			return nil
		},
	}
	login.Flags().StringVar(&username, "username", "", "login name (required)")
	_ = login.MarkFlagRequired("username")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Revoke and forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := d.newSession()
			if err != nil {
				return err
			}
			if err := m.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Check the stored token against the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := d.newSession()
			if err != nil {
				return err
			}
			profile, err := m.Verify(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token valid for %s (%s)\n", profile.Username, profile.Role)
			return nil
		},
	}

	cmd.AddCommand(login, logout, verify)
	return cmd
}
