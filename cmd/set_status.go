package cmd

import (
	"fmt"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSetStatusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> [status]",
		Short: "Change a ticket's status (requires login)",
		Long:  "Change a ticket's status. Without a status argument the new status is read from stdin; an empty answer cancels.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			a := rt.app
			if !a.sessions.Current().LoggedIn() {
				return explain(domain.ErrLoginRequired)
			}

			raw := ""
			if len(args) == 2 {
				raw = args[1]
			} else {
				raw, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "Nuevo estado (AGENDADO, EN_REVISION, EN_REPARACION, ESPERANDO_REPUESTOS, COMPLETADO, ENTREGADO, CANCELADO, EN_GARANTIA): ")
				if err != nil {
					return err
				}
			}

			req := application.StatusChangeRequest{ID: id, RawStatus: raw}
			if status, ok := req.Status(); ok && !status.Known() {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), catalog.RenderNotice(domain.Notice{
					Level:   domain.NoticeWarning,
					Message: fmt.Sprintf("%q no es un estado conocido; se enviará tal cual", string(status)),
				}))
			}

			a.connect(cmd)

			result, err := a.facade.Dispatch(cmd.Context(), application.ChangeStatusCommand{Request: req})
			if err != nil {
				return explain(err)
			}
			if result.Cancelled {
				_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Cambio de estado cancelado")
				return err
			}
			if a.cfg.JSON {
				return writeJSON(cmd, result)
			}
			if result.Ticket == nil {
				return nil
			}

			rendered, err := catalog.RenderTickets([]domain.Ticket{*result.Ticket}, a.renderOptions(result.Mode))
			if err != nil {
				return fmt.Errorf("render ticket: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
