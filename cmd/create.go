package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/spf13/cobra"
)

var scheduleLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

type createFlags struct {
	name       string
	phone      string
	email      string
	deviceType string
	brand      string
	model      string
	problem    string
	date       string
	priority   string
	technician string
	cost       float64
}

func newCreateCmd(rt *runtime) *cobra.Command {
	var f createFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a new repair ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticket, err := f.newTicket(cmd)
			if err != nil {
				return err
			}

			a := rt.app
			a.connect(cmd)

			result, err := a.facade.Dispatch(cmd.Context(), application.CreateCommand{Ticket: ticket})
			if err != nil {
				return explain(err)
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

	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Customer name")
	flags.StringVar(&f.phone, "phone", "", "Customer phone")
	flags.StringVar(&f.email, "email", "", "Customer email")
	flags.StringVar(&f.deviceType, "type", "", "Device type: "+strings.Join(domain.DeviceTypes(), ", "))
	flags.StringVar(&f.brand, "brand", "", "Device brand")
	flags.StringVar(&f.model, "model", "", "Device model")
	flags.StringVar(&f.problem, "problem", "", "Problem description")
	flags.StringVar(&f.date, "date", "", "Scheduled date, local time (2006-01-02T15:04)")
	flags.StringVar(&f.priority, "priority", "", "Priority: BAJA, NORMAL, ALTA, URGENTE (default NORMAL)")
	flags.StringVar(&f.technician, "technician", "", "Assigned technician")
	flags.Float64Var(&f.cost, "cost", 0, "Estimated cost")

	return cmd
}

func (f createFlags) newTicket(cmd *cobra.Command) (domain.NewTicket, error) {
	ticket := domain.NewTicket{
		CustomerName:       f.name,
		Phone:              f.phone,
		Email:              f.email,
		DeviceType:         f.deviceType,
		Brand:              f.brand,
		Model:              f.model,
		ProblemDescription: f.problem,
		Priority:           domain.Priority(strings.ToUpper(strings.TrimSpace(f.priority))),
		Technician:         f.technician,
	}

	if strings.TrimSpace(f.date) != "" {
		scheduled, err := parseSchedule(f.date)
		if err != nil {
			return domain.NewTicket{}, err
		}
		ticket.ScheduledAt = scheduled
	}
	if cmd.Flags().Changed("cost") {
		if f.cost < 0 {
			return domain.NewTicket{}, domain.NewValidationError("cost must not be negative", "cost")
		}
		cost := f.cost
		ticket.EstimatedCost = &cost
	}

	return ticket, nil
}

func parseSchedule(raw string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if parsed, err := time.ParseInLocation(layout, strings.TrimSpace(raw), time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, domain.NewValidationError(fmt.Sprintf("invalid date %q, use 2006-01-02T15:04", raw), "date")
}
