package application

import (
	"time"

	"github.com/bnema/repara-cli/internal/domain"
)

// Result is what a dispatched command produced.
type Result struct {
	Tickets    []domain.Ticket
	Statistics *domain.Statistics
	Detail     *TicketDetail
	// Ticket is the created or updated ticket, when there is one.
	Ticket    *domain.Ticket
	Mode      domain.Mode
	Notices   []domain.Notice
	ResetForm bool
	Cancelled bool
}

// TicketDetail is the view model for a single ticket.
type TicketDetail struct {
	Ticket            domain.Ticket
	Mode              domain.Mode
	StatusLabel       string
	StatusDescription string
	PriorityLabel     string
}

func newTicketDetail(ticket domain.Ticket, mode domain.Mode) *TicketDetail {
	return &TicketDetail{
		Ticket:            ticket,
		Mode:              mode,
		StatusLabel:       ticket.Status.Label(),
		StatusDescription: ticket.Status.Description(),
		PriorityLabel:     ticket.Priority.OrDefault().Label(),
	}
}

type LogoutResult struct {
	LoggedOut   bool
	Notice      *domain.Notice
	ReloadAfter time.Duration
}

// SessionView is the identity seen by the rest of the app. A nil Session
// means guest.
type SessionView struct {
	Session        *domain.Session
	TokenExpiresAt time.Time
}

func (v SessionView) LoggedIn() bool {
	return v.Session != nil
}

func (v SessionView) Token() string {
	if v.Session == nil {
		return ""
	}
	return v.Session.SessionToken
}
