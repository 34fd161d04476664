package domain

import "strings"

// TicketFilter holds the optional filter dimensions. An empty dimension
// matches every ticket; set dimensions are AND-combined.
type TicketFilter struct {
	Status     Status
	DeviceType string
	Email      string
	Priority   Priority
}

func (f TicketFilter) IsZero() bool {
	return f.Status == "" && f.DeviceType == "" && strings.TrimSpace(f.Email) == "" && f.Priority == ""
}

func (f TicketFilter) Match(t Ticket) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.DeviceType != "" && t.DeviceType != f.DeviceType {
		return false
	}
	if email := strings.TrimSpace(f.Email); email != "" && !containsFold(t.Email, email) {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

func FilterTickets(tickets []Ticket, f TicketFilter) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func FilterByStatus(tickets []Ticket, status Status) []Ticket {
	return FilterTickets(tickets, TicketFilter{Status: status})
}

// FilterByEmail keeps tickets whose email contains the query, ignoring case.
func FilterByEmail(tickets []Ticket, email string) []Ticket {
	return FilterTickets(tickets, TicketFilter{Email: email})
}

// SearchTickets matches the query as a case-insensitive substring of the
// customer name, email, device type, brand, model or problem description.
// A blank query returns every ticket.
func SearchTickets(tickets []Ticket, query string) []Ticket {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneTickets(tickets)
	}

	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if matchesQuery(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func matchesQuery(t Ticket, query string) bool {
	for _, field := range []string{t.CustomerName, t.Email, t.DeviceType, t.Brand, t.Model, t.ProblemDescription} {
		if containsFold(field, query) {
			return true
		}
	}
	return false
}

func FindTicket(tickets []Ticket, id TicketID) (Ticket, bool) {
	for _, t := range tickets {
		if t.ID == id {
			return t, true
		}
	}
	return Ticket{}, false
}

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
