package domain

import "strings"

// DefaultTechnicianCount is reported when no ticket names a technician.
const DefaultTechnicianCount = 5

type Statistics struct {
	Total       int
	Scheduled   int
	InRepair    int
	Completed   int
	Technicians int
	ByDevice    map[string]int
}

func ComputeStatistics(tickets []Ticket) Statistics {
	stats := Statistics{
		Total:    len(tickets),
		ByDevice: map[string]int{},
	}

	technicians := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		switch t.Status {
		case StatusScheduled:
			stats.Scheduled++
		case StatusInRepair:
			stats.InRepair++
		case StatusCompleted:
			stats.Completed++
		}

		if t.DeviceType != "" {
			stats.ByDevice[t.DeviceType]++
		}

		if name := strings.TrimSpace(t.Technician); name != "" {
			technicians[name] = struct{}{}
		}
	}

	stats.Technicians = len(technicians)
	if stats.Technicians == 0 {
		stats.Technicians = DefaultTechnicianCount
	}

	return stats
}
