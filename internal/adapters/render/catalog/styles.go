package catalog

import (
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	card    lipgloss.Style
	id      lipgloss.Style
	device  lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	faint   lipgloss.Style
	demo    lipgloss.Style
	hint    lipgloss.Style
	empty   lipgloss.Style
	counter lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1).MarginTop(1),
		id:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		device:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:   lipgloss.NewStyle().Faint(true),
		demo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		hint:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("110")),
		empty:   lipgloss.NewStyle().Faint(true).MarginTop(1),
		counter: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
	}
}

func badge(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("232")).Background(lipgloss.Color(color))
}

func statusBadge(status domain.Status) string {
	color := "244"
	switch status {
	case domain.StatusScheduled:
		color = "75"
	case domain.StatusInReview, domain.StatusInWarranty:
		color = "221"
	case domain.StatusInRepair:
		color = "33"
	case domain.StatusCompleted, domain.StatusDelivered:
		color = "78"
	case domain.StatusCancelled:
		color = "203"
	}
	return badge(color).Render(status.Label())
}

func priorityBadge(priority domain.Priority) string {
	color := "244"
	switch priority {
	case domain.PriorityLow:
		color = "252"
	case domain.PriorityNormal:
		color = "75"
	case domain.PriorityHigh:
		color = "221"
	case domain.PriorityUrgent:
		color = "203"
	}
	return badge(color).Render(priority.Label())
}

func noticeStyle(level domain.NoticeLevel) lipgloss.Style {
	switch level {
	case domain.NoticeSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	case domain.NoticeWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	case domain.NoticeError:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	}
}

func connectionStyle(state domain.ConnState) lipgloss.Style {
	switch state {
	case domain.ConnConnected:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	case domain.ConnOffline:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221"))
	}
}
