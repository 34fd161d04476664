package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/spf13/cobra"
)

// logoutReloadDelay is how long logout waits before reloading the session.
var logoutReloadDelay = application.LogoutReloadDelay

func newLoginCmd(rt *runtime) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session against the auth API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app

			if password == "" && username != "" {
				var err error
				password, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "Contraseña: ")
				if err != nil {
					return err
				}
			}

			view, err := a.sessions.Login(cmd.Context(), username, password)
			if err != nil {
				return explain(err)
			}
			if a.cfg.JSON {
				return writeJSON(cmd, view)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido, %s\n", view.Session.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			if !a.sessions.Current().LoggedIn() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No hay una sesión activa")
				return err
			}

			ok := yes
			if !ok {
				answer, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "¿Estás seguro de que deseas cerrar sesión? [s/N]: ")
				if err != nil {
					return err
				}
				ok = confirmed(answer)
			}

			result := a.sessions.Logout(cmd.Context(), application.LogoutRequest{Confirmed: ok})
			if !result.LoggedOut {
				_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Cierre de sesión cancelado")
				return err
			}
			if result.Notice != nil {
				a.sink.Notify(*result.Notice)
			}

			if err := wait(cmd.Context(), logoutReloadDelay); err != nil {
				return err
			}

			a.sessions.Load(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalog.RenderSession(a.sessions.Current(), a.now()))
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newWhoamiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			view := a.sessions.Current()
			if a.cfg.JSON {
				return writeJSON(cmd, view)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalog.RenderSession(view, a.now()))
			return err
		},
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
