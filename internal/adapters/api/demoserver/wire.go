package demoserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
)

const dateTimeLayout = "2006-01-02T15:04:05"

type servicio struct {
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
	FechaAgendada       string   `json:"fechaAgendada"`
	FechaCreacion       string   `json:"fechaCreacion"`
	DiasTranscurridos   int64    `json:"diasTranscurridos"`
	TecnicoAsignado     string   `json:"tecnicoAsignado,omitempty"`
	CostoEstimado       *float64 `json:"costoEstimado"`
	CostoFinal          *float64 `json:"costoFinal"`
	Observaciones       string   `json:"observaciones,omitempty"`
}

func toServicio(t domain.Ticket, now time.Time) servicio {
	return servicio{
		ID:                  int64(t.ID),
		NombreCliente:       t.CustomerName,
		Telefono:            t.Phone,
		Email:               t.Email,
		TipoDispositivo:     t.DeviceType,
		Marca:               t.Brand,
		Modelo:              t.Model,
		DescripcionProblema: t.ProblemDescription,
		Estado:              string(t.Status),
		Prioridad:           string(t.Priority),
		FechaAgendada:       formatDate(t.ScheduledAt),
		FechaCreacion:       formatDate(t.CreatedAt),
		DiasTranscurridos:   elapsedDays(t.CreatedAt, now),
		TecnicoAsignado:     t.Technician,
		CostoEstimado:       t.EstimatedCost,
		CostoFinal:          t.FinalCost,
		Observaciones:       t.Notes,
	}
}

func toServicios(tickets []domain.Ticket, now time.Time) []servicio {
	out := make([]servicio, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toServicio(t, now))
	}
	return out
}

type servicioRequest struct {
	NombreCliente       string   `json:"nombreCliente"`
	Telefono            string   `json:"telefono"`
	Email               string   `json:"email"`
	TipoDispositivo     string   `json:"tipoDispositivo"`
	Marca               string   `json:"marca"`
	Modelo              string   `json:"modelo"`
	DescripcionProblema string   `json:"descripcionProblema"`
	FechaAgendada       string   `json:"fechaAgendada"`
	Prioridad           string   `json:"prioridad"`
	TecnicoAsignado     string   `json:"tecnicoAsignado"`
	CostoEstimado       *float64 `json:"costoEstimado"`
}

func (r servicioRequest) toNewTicket() (domain.NewTicket, error) {
	ticket := domain.NewTicket{
		CustomerName:       strings.TrimSpace(r.NombreCliente),
		Phone:              strings.TrimSpace(r.Telefono),
		Email:              strings.TrimSpace(r.Email),
		DeviceType:         strings.TrimSpace(r.TipoDispositivo),
		Brand:              strings.TrimSpace(r.Marca),
		Model:              strings.TrimSpace(r.Modelo),
		ProblemDescription: strings.TrimSpace(r.DescripcionProblema),
		Priority:           domain.Priority(strings.ToUpper(strings.TrimSpace(r.Prioridad))).OrDefault(),
		Technician:         strings.TrimSpace(r.TecnicoAsignado),
		EstimatedCost:      r.CostoEstimado,
	}

	if raw := strings.TrimSpace(r.FechaAgendada); raw != "" {
		scheduled, err := parseDate(raw)
		if err != nil {
			return domain.NewTicket{}, err
		}
		ticket.ScheduledAt = scheduled
	}

	return ticket, ticket.Validate()
}

type statusChange struct {
	Estado string `json:"estado"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(dateTimeLayout)
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, dateTimeLayout, "2006-01-02T15:04"} {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", raw)
}

func elapsedDays(createdAt, now time.Time) int64 {
	if createdAt.IsZero() || now.Before(createdAt) {
		return 0
	}
	return int64(now.Sub(createdAt) / (24 * time.Hour))
}
