package application

import (
	"strings"

	"github.com/bnema/repara-cli/internal/domain"
)

// Command is a typed user action consumed by Facade.Dispatch.
type Command interface {
	commandName() string
}

type ListAllCommand struct{}

type ListByStatusCommand struct {
	Status domain.Status
}

type SearchCommand struct {
	Query string
}

type FilterCommand struct {
	Filter domain.TicketFilter
}

type LookupByEmailCommand struct {
	Email string
}

type CreateCommand struct {
	Ticket domain.NewTicket
}

type ChangeStatusCommand struct {
	Request StatusChangeRequest
}

type GetStatisticsCommand struct{}

type ShowDetailCommand struct {
	ID domain.TicketID
}

func (ListAllCommand) commandName() string { return "list all" }
func (ListByStatusCommand) commandName() string { return "list by status" }
func (SearchCommand) commandName() string { return "search" }
func (FilterCommand) commandName() string { return "filter" }
func (LookupByEmailCommand) commandName() string { return "lookup by email" }
func (CreateCommand) commandName() string { return "create" }
func (ChangeStatusCommand) commandName() string { return "change status" }
func (GetStatisticsCommand) commandName() string { return "statistics" }
func (ShowDetailCommand) commandName() string { return "show detail" }

// StatusChangeRequest carries the free-text status typed by the user.
type StatusChangeRequest struct {
	ID        domain.TicketID
	RawStatus string
}

// Status returns the upper-cased input. It is not checked against the
// known statuses; ok is false only for blank input.
func (r StatusChangeRequest) Status() (domain.Status, bool) {
	status := domain.NormalizeStatus(r.RawStatus)
	return status, strings.TrimSpace(string(status)) != ""
}

type LogoutRequest struct {
	Confirmed bool
}
