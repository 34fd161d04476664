package ports

import (
	"context"

	"github.com/bnema/repara-cli/internal/domain"
)

// TicketCache keeps the last known working set between runs.
type TicketCache interface {
	Load(ctx context.Context) ([]domain.Ticket, error)
	Save(ctx context.Context, tickets []domain.Ticket) error
}
