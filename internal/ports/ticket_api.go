package ports

import (
	"context"

	"github.com/bnema/repara-cli/internal/domain"
)

// TicketAPI is the remote repair-ticket backend.
type TicketAPI interface {
	Health(ctx context.Context) error
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Ticket, error)
	Search(ctx context.Context, query string) ([]domain.Ticket, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]domain.Ticket, error)
	Get(ctx context.Context, id domain.TicketID) (domain.Ticket, error)
	Create(ctx context.Context, ticket domain.NewTicket) (domain.Ticket, error)
	UpdateStatus(ctx context.Context, id domain.TicketID, status domain.Status) (domain.Ticket, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.Session, error)
}

// CatalogAPI serves the reference lists published by the backend.
type CatalogAPI interface {
	Statuses(ctx context.Context) ([]domain.StatusInfo, error)
	DeviceTypes(ctx context.Context) ([]string, error)
}
