package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const dateLayout = "02-01-2006 15:04"

type RenderOptions struct {
	Now      time.Time
	Mode     domain.Mode
	LoggedIn bool
}

func (o RenderOptions) demo() bool {
	return o.Mode == domain.ModeLocal
}

func RenderTickets(tickets []domain.Ticket, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return ticketsView(tickets, opts, s)
	})
}

func RenderStatistics(stats domain.Statistics, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return statisticsView(stats, opts, s)
	})
}

func RenderDetail(detail application.TicketDetail, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return detailView(detail, opts, s)
	})
}

func RenderCatalogue(statuses []domain.StatusInfo, deviceTypes []string) (string, error) {
	return render(func(s styles) string {
		return catalogueView(statuses, deviceTypes, s)
	})
}

// TicketsView renders without starting a bubbletea program, for callers that
// already run one.
func TicketsView(tickets []domain.Ticket, opts RenderOptions) string {
	return ticketsView(tickets, opts, newStyles())
}

// StatisticsLine is the one-line counter summary shown by watch.
func StatisticsLine(stats domain.Statistics) string {
	s := newStyles()
	return s.header.Render(fmt.Sprintf("total %d · agendados %d · en reparación %d · completados %d · técnicos %d",
		stats.Total, stats.Scheduled, stats.InRepair, stats.Completed, stats.Technicians))
}

func ticketsView(tickets []domain.Ticket, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Servicios de reparación"),
		s.header.Render(fmt.Sprintf("servicios: %d", len(tickets))),
	}
	if opts.demo() {
		lines = append(lines, s.demo.Render("🔒 Modo Demo"))
	}

	if len(tickets) == 0 {
		empty := []string{"No se encontraron servicios", "Intenta modificar los filtros de búsqueda"}
		if opts.demo() {
			empty = append(empty, "Modo offline - Datos limitados")
		}
		lines = append(lines, s.empty.Render(strings.Join(empty, "\n")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, ticket := range tickets {
		lines = append(lines, s.card.Render(ticketCard(ticket, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ticketCard(t domain.Ticket, opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			statusBadge(t.Status), " ",
			priorityBadge(t.Priority.OrDefault()), " ",
			s.id.Render(fmt.Sprintf("#%d", t.ID)),
		),
		s.device.Render(deviceGlyph(t.DeviceType) + " " + t.Device()),
		s.detail.Render(t.CustomerName),
		s.faint.Render(fmt.Sprintf("☎ %s  ✉ %s", t.Phone, t.Email)),
		field(s, "Problema:", t.ProblemDescription),
		field(s, "Agendado:", formatDate(t.ScheduledAt)),
		field(s, "Creado:", formatDate(t.CreatedAt)),
		field(s, "Días transcurridos:", fmt.Sprintf("%d", t.ElapsedDays)),
	}

	if t.Technician != "" {
		parts = append(parts, field(s, "Técnico:", t.Technician))
	}
	if cost := FormatCost(t.EstimatedCost); cost != "" {
		parts = append(parts, field(s, "Costo estimado:", cost))
	}
	if opts.LoggedIn {
		parts = append(parts, s.hint.Render(fmt.Sprintf("rf set-status %d · rf show %d", t.ID, t.ID)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statisticsView(stats domain.Statistics, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Estadísticas")}
	if opts.demo() {
		lines = append(lines, s.demo.Render("🔒 Modo Demo"))
	}

	counters := []struct {
		label string
		value int
	}{
		{"Total servicios", stats.Total},
		{"Agendados", stats.Scheduled},
		{"En reparación", stats.InRepair},
		{"Completados", stats.Completed},
		{"Técnicos", stats.Technicians},
	}
	for _, c := range counters {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render(fmt.Sprintf("%-16s", c.label)),
			s.counter.Render(humanize.Comma(int64(c.value))),
		))
	}

	if len(stats.ByDevice) > 0 {
		types := make([]string, 0, len(stats.ByDevice))
		for deviceType := range stats.ByDevice {
			types = append(types, deviceType)
		}
		sort.Strings(types)

		lines = append(lines, s.header.MarginTop(1).Render("por tipo de dispositivo"))
		for _, deviceType := range types {
			lines = append(lines, s.detail.Render(fmt.Sprintf("%s %-12s %d", deviceGlyph(deviceType), deviceType, stats.ByDevice[deviceType])))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func detailView(d application.TicketDetail, opts RenderOptions, s styles) string {
	t := d.Ticket
	parts := []string{
		s.title.Render(fmt.Sprintf("Servicio #%d", t.ID)),
	}
	if opts.demo() || d.Mode == domain.ModeLocal {
		parts = append(parts, s.demo.Render("🔒 Modo Demo"))
	}

	parts = append(parts,
		field(s, "Cliente:", t.CustomerName),
		field(s, "Teléfono:", t.Phone),
		field(s, "Email:", t.Email),
		field(s, "Dispositivo:", strings.TrimSpace(deviceGlyph(t.DeviceType)+" "+t.DeviceType+" "+t.Device())),
		field(s, "Problema:", t.ProblemDescription),
		field(s, "Estado:", statusBadge(t.Status)+" "+s.faint.Render(d.StatusDescription)),
		field(s, "Prioridad:", d.PriorityLabel),
		field(s, "Agendado:", formatDate(t.ScheduledAt)),
		field(s, "Creado:", formatDate(t.CreatedAt)),
		field(s, "Días transcurridos:", fmt.Sprintf("%d", t.ElapsedDays)),
	)
	if t.Technician != "" {
		parts = append(parts, field(s, "Técnico:", t.Technician))
	}
	if cost := FormatCost(t.EstimatedCost); cost != "" {
		parts = append(parts, field(s, "Costo estimado:", cost))
	}
	if cost := FormatCost(t.FinalCost); cost != "" {
		parts = append(parts, field(s, "Costo final:", cost))
	}
	if t.Notes != "" {
		parts = append(parts, field(s, "Observaciones:", t.Notes))
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func catalogueView(statuses []domain.StatusInfo, deviceTypes []string, s styles) string {
	lines := []string{s.title.Render("Estados")}
	for _, info := range statuses {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			statusBadge(info.Code), " ",
			s.faint.Render(string(info.Code)), " ",
			s.detail.Render(info.Description),
		))
	}

	lines = append(lines, s.title.MarginTop(1).Render("Tipos de dispositivo"))
	for _, deviceType := range deviceTypes {
		lines = append(lines, s.detail.Render(deviceGlyph(deviceType)+" "+deviceType))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderConnection is the one-line connection banner.
func RenderConnection(state domain.ConnState, forced bool) string {
	label := state.Label()
	if forced && state == domain.ConnOffline {
		label += " (forzado)"
	}
	return connectionStyle(state).Render("● " + label)
}

func RenderNotice(n domain.Notice) string {
	icon := "ℹ"
	switch n.Level {
	case domain.NoticeSuccess:
		icon = "✔"
	case domain.NoticeWarning:
		icon = "⚠"
	case domain.NoticeError:
		icon = "✖"
	}

	line := noticeStyle(n.Level).Render(icon + " " + n.Message)
	if n.Action == domain.NoticeActionRetry {
		line += " " + lipgloss.NewStyle().Bold(true).Render("[r] Reintentar")
	}
	return line
}

func RenderSession(view application.SessionView, now time.Time) string {
	s := newStyles()
	if !view.LoggedIn() {
		return s.faint.Render("Invitado (sin sesión)")
	}

	session := view.Session
	lines := []string{
		s.title.Render(session.DisplayName()) + " " + s.faint.Render("@"+session.User.Username),
		field(s, "Rol:", session.Role),
		field(s, "Sesión iniciada:", RelativeTime(session.LoginTime, now)),
	}
	if !view.TokenExpiresAt.IsZero() {
		lines = append(lines, field(s, "Token expira:", RelativeTime(view.TokenExpiresAt, now)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var relTimeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "ahora", DivBy: time.Second},
	{D: time.Minute, Format: "%s %d segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 día", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d días", DivBy: humanize.Day},
}

// RelativeTime renders t relative to now in Spanish ("hace 5 minutos").
func RelativeTime(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "hace", "en", relTimeMagnitudes)
}

// FormatCost renders an amount with es-CL thousands separators ("$85.000").
func FormatCost(cost *float64) string {
	if cost == nil || *cost == 0 {
		return ""
	}
	return "$" + humanize.FormatInteger("#.###,", int(math.Round(*cost)))
}

func deviceGlyph(deviceType string) string {
	switch deviceType {
	case "Smartphone":
		return "📱"
	case "Laptop":
		return "💻"
	case "Tablet":
		return "📲"
	case "Computador":
		return "🖥"
	case "Smartwatch":
		return "⌚"
	case "Auriculares":
		return "🎧"
	case "Consola":
		return "🎮"
	default:
		return "🔧"
	}
}

func field(s styles, label, value string) string {
	return s.label.Render(label) + " " + s.detail.Render(value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(time.Local).Format(dateLayout)
}
