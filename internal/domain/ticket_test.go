package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTicketsByStatusReturnsExactMatches(t *testing.T) {
	t.Parallel()

	tickets := DemoTickets()
	for _, status := range Statuses() {
		got := FilterByStatus(tickets, status)
		for _, ticket := range got {
			assert.Equal(t, status, ticket.Status)
		}

		want := 0
		for _, ticket := range tickets {
			if ticket.Status == status {
				want++
			}
		}
		assert.Len(t, got, want, "status %s", status)
	}
}

func TestFilterTicketsCombinesDimensionsAsIntersection(t *testing.T) {
	t.Parallel()

	tickets := append(DemoTickets(), Ticket{
		ID:         4,
		Email:      "maria.gonzalez@email.com",
		DeviceType: "Laptop",
		Status:     StatusScheduled,
		Priority:   PriorityHigh,
	})

	testCases := []struct {
		name    string
		filter  TicketFilter
		wantIDs []TicketID
	}{
		{name: "empty matches all", filter: TicketFilter{}, wantIDs: []TicketID{1, 2, 3, 4}},
		{name: "status only", filter: TicketFilter{Status: StatusScheduled}, wantIDs: []TicketID{1, 4}},
		{name: "status and type", filter: TicketFilter{Status: StatusScheduled, DeviceType: "Laptop"}, wantIDs: []TicketID{4}},
		{name: "email substring ignores case", filter: TicketFilter{Email: "MARIA"}, wantIDs: []TicketID{1, 4}},
		{name: "email and type", filter: TicketFilter{Email: "maria", DeviceType: "Smartphone"}, wantIDs: []TicketID{1}},
		{name: "priority", filter: TicketFilter{Priority: PriorityLow}, wantIDs: []TicketID{3}},
		{name: "disjoint", filter: TicketFilter{Status: StatusCompleted, Priority: PriorityHigh}, wantIDs: []TicketID{}},
		{name: "type is exact", filter: TicketFilter{DeviceType: "laptop"}, wantIDs: []TicketID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTickets(tickets, tc.filter)
			assert.Equal(t, tc.wantIDs, ticketIDs(got))
		})
	}
}

func TestSearchTicketsIsCaseInsensitiveAcrossSixFields(t *testing.T) {
	t.Parallel()

	tickets := DemoTickets()

	testCases := []struct {
		query   string
		wantIDs []TicketID
	}{
		{query: "galaxy", wantIDs: []TicketID{1}},
		{query: "CARLOS", wantIDs: []TicketID{2}},
		{query: "sofia.martinez@", wantIDs: []TicketID{3}},
		{query: "laptop", wantIDs: []TicketID{2}},
		{query: "ipad", wantIDs: []TicketID{3}},
		{query: "fuente de poder", wantIDs: []TicketID{2}},
		{query: "email.com", wantIDs: []TicketID{1, 2, 3}},
		{query: "Juan Pérez", wantIDs: []TicketID{}},
		{query: "+56", wantIDs: []TicketID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.wantIDs, ticketIDs(SearchTickets(tickets, tc.query)))
		})
	}
}

func TestSearchTicketsBlankQueryEqualsListAll(t *testing.T) {
	t.Parallel()

	tickets := DemoTickets()
	assert.Equal(t, tickets, SearchTickets(tickets, ""))
	assert.Equal(t, tickets, SearchTickets(tickets, "   "))
}

func TestComputeStatisticsForDemoDataset(t *testing.T) {
	t.Parallel()

	stats := ComputeStatistics(DemoTickets())
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Scheduled)
	assert.Equal(t, 1, stats.InRepair)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Technicians)
	assert.Equal(t, map[string]int{"Smartphone": 1, "Laptop": 1, "Tablet": 1}, stats.ByDevice)
}

func TestComputeStatisticsFallsBackWhenNoTechnicians(t *testing.T) {
	t.Parallel()

	tickets := DemoTickets()
	for i := range tickets {
		tickets[i].Technician = "  "
	}

	stats := ComputeStatistics(tickets)
	assert.Equal(t, DefaultTechnicianCount, stats.Technicians)
}

func TestComputeStatisticsCountsDistinctTechnicians(t *testing.T) {
	t.Parallel()

	tickets := DemoTickets()
	tickets[1].Technician = tickets[0].Technician

	assert.Equal(t, 2, ComputeStatistics(tickets).Technicians)
}

func TestStatusLabelFallsBackToVerbatimValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "En Reparación", StatusInRepair.Label())
	assert.Equal(t, "PERDIDO", Status("PERDIDO").Label())
	assert.Equal(t, "Urgente", PriorityUrgent.Label())
	assert.Equal(t, "MAXIMA", Priority("MAXIMA").Label())
	assert.Equal(t, PriorityNormal, Priority("").OrDefault())
}

func TestNormalizeStatusUpperCasesWithoutValidating(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusCompleted, NormalizeStatus("  completado "))
	assert.Equal(t, Status("LO_QUE_SEA"), NormalizeStatus("lo_que_sea"))
	assert.False(t, NormalizeStatus("lo_que_sea").Known())
	assert.True(t, NormalizeStatus("en_garantia").Known())
}

func TestNewTicketValidateListsMissingFields(t *testing.T) {
	t.Parallel()

	err := NewTicket{CustomerName: "Ana", Email: "ana@example.com"}.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.ErrorContains(t, err, "phone")
	assert.ErrorContains(t, err, "scheduled date")
	assert.NotContains(t, err.Error(), "customer name")

	valid := NewTicket{
		CustomerName:       "Ana",
		Phone:              "+56 9 1111 2222",
		Email:              "ana@example.com",
		DeviceType:         "Laptop",
		Brand:              "Lenovo",
		Model:              "T14",
		ProblemDescription: "Teclado no responde",
		ScheduledAt:        time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())
}

func TestSessionExpiresAtTwentyFourHours(t *testing.T) {
	t.Parallel()

	login := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	session := Session{SessionToken: "token", LoginTime: login}

	assert.False(t, session.Expired(login.Add(23*time.Hour+59*time.Minute), SessionMaxAge))
	assert.True(t, session.Expired(login.Add(24*time.Hour), SessionMaxAge))
	assert.True(t, session.Expired(login.Add(72*time.Hour), SessionMaxAge))
	assert.True(t, Session{SessionToken: "token"}.Expired(login, SessionMaxAge))
}

func TestNoticeExpiresAfterTTLExceptRetry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	notice := Notice{Level: NoticeWarning, Message: "offline", CreatedAt: now}
	retry := Notice{Level: NoticeInfo, Action: NoticeActionRetry, CreatedAt: now}

	assert.False(t, notice.Expired(now.Add(4*time.Second)))
	assert.True(t, notice.Expired(now.Add(NoticeTTL)))
	assert.False(t, retry.Expired(now.Add(time.Hour)))
}

func ticketIDs(tickets []Ticket) []TicketID {
	ids := make([]TicketID, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	return ids
}
