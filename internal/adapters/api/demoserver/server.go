// Package demoserver is an in-memory backend speaking the repair-ticket REST
// contract. It backs `rf serve-demo` and the end-to-end tests.
package demoserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TicketsPath and AuthPath are where the collections are mounted.
	TicketsPath = "/reparafacil-api/api/v1/reparaciones"
	AuthPath    = "/reparafacil-api/api/v1/auth"

	maxBodyBytes = 1 << 20
	serviceName  = "ReparaFacilSPA - Servicios de Reparación"
)

type Options struct {
	// Tickets seeds the store. Nil means the demo dataset.
	Tickets []domain.Ticket
	// Secret signs session tokens. Empty generates a random one.
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
	Now        func() time.Time
	Logger     *zap.Logger
}

type Server struct {
	mu      sync.Mutex
	tickets []domain.Ticket
	nextID  domain.TicketID

	users  map[string]user
	tokens tokenIssuer
	now    func() time.Time
	logger *zap.Logger
}

func New(opts Options) (*Server, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = domain.SessionMaxAge
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Secret == "" {
		opts.Secret = uuid.NewString()
	}
	if opts.Tickets == nil {
		opts.Tickets = domain.DemoTickets()
	}

	users, err := seedUsers(opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("seed demo users: %w", err)
	}

	s := &Server{
		tickets: domain.CloneTickets(opts.Tickets),
		users:   users,
		tokens:  tokenIssuer{secret: []byte(opts.Secret), ttl: opts.TokenTTL, now: opts.Now},
		now:     opts.Now,
		logger:  opts.Logger,
	}
	for _, t := range s.tickets {
		if t.ID > s.nextID {
			s.nextID = t.ID
		}
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route(TicketsPath, func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/health", s.handleHealth)
		r.Get("/estadisticas", s.handleStatistics)
		r.Get("/estados", s.handleStatuses)
		r.Get("/tipos-dispositivos", s.handleDeviceTypes)
		r.Get("/estado/{estado}", s.handleByStatus)
		r.Get("/cliente/{email}", s.handleByEmail)
		r.Get("/tipo/{tipo}", s.handleByDeviceType)
		r.Get("/buscar", s.handleSearch)
		r.Get("/{id:[0-9]+}", s.handleGet)
		r.With(s.requireSession).Put("/{id:[0-9]+}/estado", s.handleChangeStatus)
	})
	r.Route(AuthPath, func(r chi.Router) {
		r.Post("/login", s.handleLogin)
	})

	return r
}

// Tickets returns a copy of the current store.
func (s *Server) Tickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneTickets(s.tickets)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	tickets := s.Tickets()
	if len(tickets) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toServicios(tickets, s.now()))
}

func (s *Server) handleByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.NormalizeStatus(chi.URLParam(r, "estado"))
	writeJSON(w, http.StatusOK, toServicios(domain.FilterByStatus(s.Tickets(), status), s.now()))
}

func (s *Server) handleByEmail(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toServicios(domain.FilterByEmail(s.Tickets(), chi.URLParam(r, "email")), s.now()))
}

func (s *Server) handleByDeviceType(w http.ResponseWriter, r *http.Request) {
	tipo := chi.URLParam(r, "tipo")
	matched := domain.FilterTickets(s.Tickets(), domain.TicketFilter{DeviceType: tipo})
	writeJSON(w, http.StatusOK, toServicios(matched, s.now()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toServicios(domain.SearchTickets(s.Tickets(), r.URL.Query().Get("q")), s.now()))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := ticketID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ticket, found := domain.FindTicket(s.Tickets(), id)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toServicio(ticket, s.now()))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req servicioRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Error al agendar servicio: "+err.Error())
		return
	}

	newTicket, err := req.toNewTicket()
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			writeFailure(w, http.StatusBadRequest, "Errores de validación: "+strings.Join(validation.Fields, ", "))
			return
		}
		writeFailure(w, http.StatusBadRequest, "Error al agendar servicio: "+err.Error())
		return
	}

	s.mu.Lock()
	s.nextID++
	ticket := domain.Ticket{
		ID:                 s.nextID,
		CustomerName:       newTicket.CustomerName,
		Phone:              newTicket.Phone,
		Email:              newTicket.Email,
		DeviceType:         newTicket.DeviceType,
		Brand:              newTicket.Brand,
		Model:              newTicket.Model,
		ProblemDescription: newTicket.ProblemDescription,
		Status:             domain.StatusScheduled,
		Priority:           newTicket.Priority,
		ScheduledAt:        newTicket.ScheduledAt,
		CreatedAt:          s.now(),
		Technician:         newTicket.Technician,
		EstimatedCost:      newTicket.EstimatedCost,
	}
	s.tickets = append(s.tickets, ticket)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Servicio de reparación agendado exitosamente",
		"servicio": toServicio(ticket, s.now()),
	})
}

func (s *Server) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusChange
	if err := decodeBody(w, r, &req); err != nil || strings.TrimSpace(req.Estado) == "" {
		writeFailure(w, http.StatusBadRequest, "El estado es requerido")
		return
	}

	status := domain.NormalizeStatus(req.Estado)
	if !status.Known() {
		writeFailure(w, http.StatusBadRequest, "Error al cambiar estado: Estado inválido: "+req.Estado)
		return
	}

	id, _ := ticketID(r)

	s.mu.Lock()
	var (
		updated domain.Ticket
		found   bool
	)
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = status
			updated, found = s.tickets[i], true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		writeFailure(w, http.StatusBadRequest, fmt.Sprintf("Error al cambiar estado: Servicio no encontrado con ID: %d", id))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Estado actualizado exitosamente",
		"servicio": toServicio(updated, s.now()),
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats := domain.ComputeStatistics(s.Tickets())
	writeJSON(w, http.StatusOK, map[string]any{
		"totalServicios":        stats.Total,
		"serviciosAgendados":    stats.Scheduled,
		"serviciosEnReparacion": stats.InRepair,
		"serviciosCompletados":  stats.Completed,
		"serviciosPorTipo":      stats.ByDevice,
		"totalTecnicos":         stats.Technicians,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "UP",
		"service":   serviceName,
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	type estado struct {
		Codigo      string `json:"codigo"`
		Descripcion string `json:"descripcion"`
	}

	catalogue := domain.StatusCatalogue()
	estados := make([]estado, 0, len(catalogue))
	for _, info := range catalogue {
		estados = append(estados, estado{Codigo: string(info.Code), Descripcion: info.Description})
	}
	writeJSON(w, http.StatusOK, map[string]any{"estados": estados})
}

func (s *Server) handleDeviceTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DeviceTypes())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeBody(w, r, &creds); err != nil {
		writeFailure(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	u, ok := s.users[strings.TrimSpace(creds.Username)]
	if !ok || !u.checkPassword(creds.Password) {
		writeFailure(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := s.tokens.issue(u, uuid.NewString())
	if err != nil {
		s.logger.Error("sign session token", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Login exitoso",
		"sessionToken": token,
		"user": map[string]any{
			"id":             u.ID,
			"username":       u.Username,
			"email":          u.Email,
			"nombre":         u.Name,
			"apellido":       u.LastName,
			"nombreCompleto": strings.TrimSpace(u.Name + " " + u.LastName),
			"rol":            u.Role,
			"activo":         true,
		},
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			writeFailure(w, http.StatusUnauthorized, "Sesión requerida")
			return
		}
		if _, err := s.tokens.parse(strings.TrimSpace(raw)); err != nil {
			writeFailure(w, http.StatusUnauthorized, "Sesión inválida o expirada")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(started)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func ticketID(r *http.Request) (domain.TicketID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return domain.TicketID(id), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]any{"success": false, "message": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
