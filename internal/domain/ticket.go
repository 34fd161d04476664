package domain

import "time"

type TicketID int64

// Ticket is a single repair job ("servicio") tracked through its lifecycle.
type Ticket struct {
	ID                 TicketID
	CustomerName       string
	Phone              string
	Email              string
	DeviceType         string
	Brand              string
	Model              string
	ProblemDescription string
	Status             Status
	Priority           Priority
	ScheduledAt        time.Time
	CreatedAt          time.Time
	ElapsedDays        int64
	// Optional fields are zero when the backend omits them.
	Technician    string
	EstimatedCost *float64
	FinalCost     *float64
	Notes         string
}

// NewTicket carries the fields a customer provides when booking a repair.
type NewTicket struct {
	CustomerName       string
	Phone              string
	Email              string
	DeviceType         string
	Brand              string
	Model              string
	ProblemDescription string
	ScheduledAt        time.Time
	Priority           Priority
	Technician         string
	EstimatedCost      *float64
}

func (n NewTicket) Validate() error {
	var missing []string
	if isBlank(n.CustomerName) {
		missing = append(missing, "customer name")
	}
	if isBlank(n.Phone) {
		missing = append(missing, "phone")
	}
	if isBlank(n.Email) {
		missing = append(missing, "email")
	}
	if isBlank(n.DeviceType) {
		missing = append(missing, "device type")
	}
	if isBlank(n.Brand) {
		missing = append(missing, "brand")
	}
	if isBlank(n.Model) {
		missing = append(missing, "model")
	}
	if isBlank(n.ProblemDescription) {
		missing = append(missing, "problem description")
	}
	if n.ScheduledAt.IsZero() {
		missing = append(missing, "scheduled date")
	}

	if len(missing) > 0 {
		return NewValidationError("missing required fields", missing...)
	}

	return nil
}

// Device returns the "brand model" title shown on ticket cards.
func (t Ticket) Device() string {
	return joinNonEmpty(t.Brand, t.Model)
}

func CloneTickets(tickets []Ticket) []Ticket {
	if tickets == nil {
		return nil
	}

	cloned := make([]Ticket, len(tickets))
	copy(cloned, tickets)
	return cloned
}
