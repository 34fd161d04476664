package domain

import "strings"

type Status string

const (
	StatusScheduled     Status = "AGENDADO"
	StatusInReview      Status = "EN_REVISION"
	StatusInRepair      Status = "EN_REPARACION"
	StatusAwaitingParts Status = "ESPERANDO_REPUESTOS"
	StatusCompleted     Status = "COMPLETADO"
	StatusDelivered     Status = "ENTREGADO"
	StatusCancelled     Status = "CANCELADO"
	StatusInWarranty    Status = "EN_GARANTIA"
)

var statuses = []Status{
	StatusScheduled,
	StatusInReview,
	StatusInRepair,
	StatusAwaitingParts,
	StatusCompleted,
	StatusDelivered,
	StatusCancelled,
	StatusInWarranty,
}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Known() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the display label; unknown values are returned verbatim.
func (s Status) Label() string {
	switch s {
	case StatusScheduled:
		return "Agendado"
	case StatusInReview:
		return "En Revisión"
	case StatusInRepair:
		return "En Reparación"
	case StatusAwaitingParts:
		return "Esperando Repuestos"
	case StatusCompleted:
		return "Completado"
	case StatusDelivered:
		return "Entregado"
	case StatusCancelled:
		return "Cancelado"
	case StatusInWarranty:
		return "En Garantía"
	default:
		return string(s)
	}
}

func (s Status) Description() string {
	switch s {
	case StatusScheduled:
		return "Agendado - Esperando revisión"
	case StatusInReview:
		return "En revisión técnica"
	case StatusInRepair:
		return "En proceso de reparación"
	case StatusAwaitingParts:
		return "Esperando repuestos"
	case StatusCompleted:
		return "Reparación completada"
	case StatusDelivered:
		return "Entregado al cliente"
	case StatusCancelled:
		return "Servicio cancelado"
	case StatusInWarranty:
		return "En servicio de garantía"
	default:
		return string(s)
	}
}

// NormalizeStatus trims and upper-cases free-text input. It does not check
// the result against the known statuses.
func NormalizeStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

type Priority string

const (
	PriorityLow    Priority = "BAJA"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "ALTA"
	PriorityUrgent Priority = "URGENTE"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Baja"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "Alta"
	case PriorityUrgent:
		return "Urgente"
	default:
		return string(p)
	}
}

// OrDefault returns PriorityNormal for an empty priority.
func (p Priority) OrDefault() Priority {
	if strings.TrimSpace(string(p)) == "" {
		return PriorityNormal
	}
	return p
}

// DeviceTypes lists the device categories the repair shop accepts.
func DeviceTypes() []string {
	return []string{"Smartphone", "Laptop", "Tablet", "Computador", "Smartwatch", "Auriculares", "Consola", "Otro"}
}

// StatusInfo pairs a status code with its description.
type StatusInfo struct {
	Code        Status
	Description string
}

func StatusCatalogue() []StatusInfo {
	out := make([]StatusInfo, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, StatusInfo{Code: status, Description: status.Description()})
	}
	return out
}
