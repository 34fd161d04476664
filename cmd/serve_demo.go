package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/api/demoserver"
	"github.com/spf13/cobra"
)

func newServeDemoCmd(rt *runtime) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-demo",
		Short: "Run a local in-memory backend with the demo tickets",
		Long:  "Run a local in-memory backend speaking the same REST contract, seeded with the demo tickets and the users admin and tecnico (password " + demoserver.DemoPassword + ").",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			srv, err := demoserver.New(demoserver.Options{Logger: a.logger.Named("demo")})
			if err != nil {
				return err
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			return serveUntilDone(cmd, &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 10 * time.Second}, listener)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8081", "Listen address")

	return cmd
}

func serveUntilDone(cmd *cobra.Command, srv *http.Server, listener net.Listener) error {
	ctx := cmd.Context()
	base := "http://" + listener.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "demo backend listening on %s%s\n", base, demoserver.TicketsPath)
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "use: rf --api-url %s%s --auth-url %s%s list\n", base, demoserver.TicketsPath, base, demoserver.AuthPath)

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
