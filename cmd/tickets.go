package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListCmd(rt *runtime) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List repair tickets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			result := a.connect(cmd)

			if strings.TrimSpace(status) != "" {
				var err error
				result, err = a.facade.Dispatch(cmd.Context(), application.ListByStatusCommand{Status: domain.NormalizeStatus(status)})
				if err != nil {
					return explain(err)
				}
			}

			return a.writeTickets(cmd, result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only tickets in this status (e.g. EN_REPARACION)")

	return cmd
}

func newSearchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search tickets by customer, email, device or problem",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := rt.app
			a.connect(cmd)

			result, err := a.facade.Dispatch(cmd.Context(), application.SearchCommand{Query: strings.Join(args, " ")})
			if err != nil {
				return explain(err)
			}
			return a.writeTickets(cmd, result)
		},
	}
}

func newFilterCmd(rt *runtime) *cobra.Command {
	var status, deviceType, email, priority string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the loaded tickets by status, device type, email and priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			a.connect(cmd)

			filter := domain.TicketFilter{
				Status:     domain.NormalizeStatus(status),
				DeviceType: strings.TrimSpace(deviceType),
				Email:      email,
				Priority:   domain.Priority(strings.ToUpper(strings.TrimSpace(priority))),
			}

			result, err := a.facade.Dispatch(cmd.Context(), application.FilterCommand{Filter: filter})
			if err != nil {
				return explain(err)
			}
			return a.writeTickets(cmd, result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status code")
	cmd.Flags().StringVar(&deviceType, "type", "", "Device type (e.g. Laptop)")
	cmd.Flags().StringVar(&email, "email", "", "Customer email, substring match")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: BAJA, NORMAL, ALTA, URGENTE")

	return cmd
}

func newLookupCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <email>",
		Short: "Find a customer's tickets by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := rt.app
			a.connect(cmd)

			result, err := a.facade.Dispatch(cmd.Context(), application.LookupByEmailCommand{Email: args[0]})
			if err != nil {
				return explain(err)
			}
			return a.writeTickets(cmd, result)
		},
	}
}

func newShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one ticket in detail (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			a := rt.app
			a.connect(cmd)

			result, err := a.facade.Dispatch(cmd.Context(), application.ShowDetailCommand{ID: id})
			if err != nil {
				return explain(err)
			}
			return a.writeDetail(cmd, result)
		},
	}
}

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ticket statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			result := a.connect(cmd)
			if result.Statistics == nil {
				var err error
				result, err = a.facade.Dispatch(cmd.Context(), application.GetStatisticsCommand{})
				if err != nil {
					return explain(err)
				}
			}
			return a.writeStatistics(cmd, result)
		},
	}
}

type statusCatalogue struct {
	Statuses    []domain.StatusInfo
	DeviceTypes []string
	Mode        domain.Mode
}

func newStatusesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "estados",
		Aliases: []string{"statuses"},
		Short:   "List ticket statuses and supported device types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			a.connect(cmd)

			out := a.loadCatalogue(cmd)
			if a.cfg.JSON {
				return writeJSON(cmd, out)
			}

			rendered, err := catalog.RenderCatalogue(out.Statuses, out.DeviceTypes)
			if err != nil {
				return fmt.Errorf("render catalogue: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

// loadCatalogue asks the backend when connected and uses the built-in lists
// otherwise or on any failure.
func (a *app) loadCatalogue(cmd *cobra.Command) statusCatalogue {
	local := statusCatalogue{
		Statuses:    domain.StatusCatalogue(),
		DeviceTypes: domain.DeviceTypes(),
		Mode:        domain.ModeLocal,
	}
	if !a.facade.Snapshot().Connected() {
		return local
	}

	statuses, err := a.catalog.Statuses(cmd.Context())
	if err != nil {
		a.logger.Warn("load statuses", zap.Error(err))
		return local
	}
	deviceTypes, err := a.catalog.DeviceTypes(cmd.Context())
	if err != nil {
		a.logger.Warn("load device types", zap.Error(err))
		return local
	}

	return statusCatalogue{Statuses: statuses, DeviceTypes: deviceTypes, Mode: domain.ModeLive}
}

func parseTicketID(raw string) (domain.TicketID, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ticket id %q", raw)
	}
	return domain.TicketID(id), nil
}
