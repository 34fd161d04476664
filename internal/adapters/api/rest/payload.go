package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
)

// localDateTimeLayout is how the backend reads and writes zone-less dates.
const localDateTimeLayout = "2006-01-02T15:04:05"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	localDateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime accepts ISO-8601 strings with or without a zone, epoch
// milliseconds and null.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if data[0] != '"' {
		millis, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("parse epoch millis %s: %w", data, err)
		}
		t.Time = time.UnixMilli(millis)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported time format %q", raw)
}

type ticketPayload struct {
	ID                  int64    `json:"id"`
	NombreCliente       string   `json:"nombreCliente"`
	Telefono            string   `json:"telefono"`
	Email               string   `json:"email"`
	TipoDispositivo     string   `json:"tipoDispositivo"`
	Marca               string   `json:"marca"`
	Modelo              string   `json:"modelo"`
	DescripcionProblema string   `json:"descripcionProblema"`
	Estado              string   `json:"estado"`
	Prioridad           string   `json:"prioridad"`
	FechaAgendada       flexTime `json:"fechaAgendada"`
	FechaCreacion       flexTime `json:"fechaCreacion"`
	DiasTranscurridos   int64    `json:"diasTranscurridos"`
	TecnicoAsignado     string   `json:"tecnicoAsignado"`
	CostoEstimado       *float64 `json:"costoEstimado"`
	CostoFinal          *float64 `json:"costoFinal"`
	Observaciones       string   `json:"observaciones"`
}

func (p ticketPayload) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:                 domain.TicketID(p.ID),
		CustomerName:       p.NombreCliente,
		Phone:              p.Telefono,
		Email:              p.Email,
		DeviceType:         p.TipoDispositivo,
		Brand:              p.Marca,
		Model:              p.Modelo,
		ProblemDescription: p.DescripcionProblema,
		Status:             domain.Status(p.Estado),
		Priority:           domain.Priority(p.Prioridad),
		ScheduledAt:        p.FechaAgendada.Time,
		CreatedAt:          p.FechaCreacion.Time,
		ElapsedDays:        p.DiasTranscurridos,
		Technician:         p.TecnicoAsignado,
		EstimatedCost:      p.CostoEstimado,
		FinalCost:          p.CostoFinal,
		Notes:              p.Observaciones,
	}
}

func ticketsToDomain(payloads []ticketPayload) []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(payloads))
	for _, payload := range payloads {
		tickets = append(tickets, payload.toDomain())
	}
	return tickets
}

type createPayload struct {
	NombreCliente       string   `json:"nombreCliente"`
	Telefono            string   `json:"telefono"`
	Email               string   `json:"email"`
	TipoDispositivo     string   `json:"tipoDispositivo"`
	Marca               string   `json:"marca"`
	Modelo              string   `json:"modelo"`
	DescripcionProblema string   `json:"descripcionProblema"`
	FechaAgendada       string   `json:"fechaAgendada"`
	Prioridad           string   `json:"prioridad,omitempty"`
	TecnicoAsignado     string   `json:"tecnicoAsignado,omitempty"`
	CostoEstimado       *float64 `json:"costoEstimado,omitempty"`
}

func newCreatePayload(ticket domain.NewTicket) createPayload {
	return createPayload{
		NombreCliente:       strings.TrimSpace(ticket.CustomerName),
		Telefono:            strings.TrimSpace(ticket.Phone),
		Email:               strings.TrimSpace(ticket.Email),
		TipoDispositivo:     strings.TrimSpace(ticket.DeviceType),
		Marca:               strings.TrimSpace(ticket.Brand),
		Modelo:              strings.TrimSpace(ticket.Model),
		DescripcionProblema: strings.TrimSpace(ticket.ProblemDescription),
		FechaAgendada:       ticket.ScheduledAt.In(time.Local).Format(localDateTimeLayout),
		Prioridad:           string(ticket.Priority),
		TecnicoAsignado:     strings.TrimSpace(ticket.Technician),
		CostoEstimado:       ticket.EstimatedCost,
	}
}

type statusChangePayload struct {
	Estado string `json:"estado"`
}

// mutationResponse is the {success, message, servicio} envelope returned by
// create and status change.
type mutationResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Servicio *ticketPayload `json:"servicio"`
}

type statisticsPayload struct {
	TotalServicios        int            `json:"totalServicios"`
	ServiciosAgendados    int            `json:"serviciosAgendados"`
	ServiciosEnReparacion int            `json:"serviciosEnReparacion"`
	ServiciosCompletados  int            `json:"serviciosCompletados"`
	ServiciosPorTipo      map[string]int `json:"serviciosPorTipo"`
	TotalTecnicos         int            `json:"totalTecnicos"`
}

func (p statisticsPayload) toDomain() domain.Statistics {
	byDevice := make(map[string]int, len(p.ServiciosPorTipo))
	for deviceType, count := range p.ServiciosPorTipo {
		byDevice[deviceType] = count
	}

	return domain.Statistics{
		Total:       p.TotalServicios,
		Scheduled:   p.ServiciosAgendados,
		InRepair:    p.ServiciosEnReparacion,
		Completed:   p.ServiciosCompletados,
		Technicians: p.TotalTecnicos,
		ByDevice:    byDevice,
	}
}

type statusesPayload struct {
	Estados []struct {
		Codigo      string `json:"codigo"`
		Descripcion string `json:"descripcion"`
	} `json:"estados"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SessionToken string `json:"sessionToken"`
	User         *struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Nombre   string `json:"nombre"`
		Apellido string `json:"apellido"`
		Rol      string `json:"rol"`
	} `json:"user"`
}

// rejection is the minimal envelope used to read a server-side refusal.
type rejection struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}
