package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Facade is the single entry point for ticket reads and writes. It picks the
// remote or the local path from the current connectivity state and falls
// back to the local working set on connectivity failures.
type Facade struct {
	api      ports.TicketAPI
	cache    ports.TicketCache
	sessions *SessionService
	notifier ports.Notifier
	clock    ports.Clock
	logger   *zap.Logger

	mu    sync.Mutex
	state State
}

func NewFacade(api ports.TicketAPI, cache ports.TicketCache, sessions *SessionService, notifier ports.Notifier, clock ports.Clock, logger *zap.Logger) *Facade {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = ports.NotifierFunc(func(domain.Notice) {})
	}

	return &Facade{
		api:      api,
		cache:    cache,
		sessions: sessions,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		state:    NewState(),
	}
}

// Snapshot returns a copy of the current state.
func (f *Facade) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.state
	s.All = domain.CloneTickets(f.state.All)
	s.Current = domain.CloneTickets(f.state.Current)
	return s
}

// Apply runs transition against the current state and executes the
// resulting effects.
func (f *Facade) Apply(ctx context.Context, transition Transition) Result {
	f.mu.Lock()
	next, effects := transition(f.state)
	f.state = next
	f.mu.Unlock()

	return f.run(ctx, effects)
}

func (f *Facade) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case ListAllCommand:
		return f.listAll(ctx)
	case ListByStatusCommand:
		return f.query(ctx, c.commandName(),
			func(ctx context.Context) ([]domain.Ticket, error) { return f.api.ListByStatus(ctx, c.Status) },
			func(all []domain.Ticket) []domain.Ticket { return domain.FilterByStatus(all, c.Status) },
		)
	case SearchCommand:
		query := strings.TrimSpace(c.Query)
		if query == "" {
			return f.listAll(ctx)
		}
		return f.query(ctx, c.commandName(),
			func(ctx context.Context) ([]domain.Ticket, error) { return f.api.Search(ctx, query) },
			func(all []domain.Ticket) []domain.Ticket { return domain.SearchTickets(all, query) },
		)
	case FilterCommand:
		return f.local(func(all []domain.Ticket) []domain.Ticket { return domain.FilterTickets(all, c.Filter) }), nil
	case LookupByEmailCommand:
		email := strings.TrimSpace(c.Email)
		if email == "" {
			return Result{}, domain.NewValidationError("email is required", "email")
		}
		return f.query(ctx, c.commandName(),
			func(ctx context.Context) ([]domain.Ticket, error) { return f.api.ListByCustomerEmail(ctx, email) },
			func(all []domain.Ticket) []domain.Ticket { return domain.FilterByEmail(all, email) },
		)
	case CreateCommand:
		return f.create(ctx, c.Ticket)
	case ChangeStatusCommand:
		return f.changeStatus(ctx, c.Request)
	case GetStatisticsCommand:
		return f.statistics(ctx), nil
	case ShowDetailCommand:
		return f.detail(ctx, c.ID)
	case nil:
		return Result{}, errors.New("nil command")
	default:
		return Result{}, fmt.Errorf("unsupported command %T", cmd)
	}
}

func (f *Facade) listAll(ctx context.Context) (Result, error) {
	if !f.Snapshot().Connected() {
		return f.local(func(all []domain.Ticket) []domain.Ticket { return all }), nil
	}

	var result Result
	if err := f.loadLive(ctx, false, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (f *Facade) query(ctx context.Context, op string, remote func(context.Context) ([]domain.Ticket, error), local func([]domain.Ticket) []domain.Ticket) (Result, error) {
	if !f.Snapshot().Connected() {
		return f.local(local), nil
	}

	tickets, err := remote(ctx)
	if err == nil {
		tickets = adaptTickets(tickets)

		f.mu.Lock()
		f.state.Current = domain.CloneTickets(tickets)
		f.mu.Unlock()

		return Result{Tickets: tickets, Mode: domain.ModeLive}, nil
	}

	if !f.shouldFallback(ctx, err) {
		return Result{}, err
	}

	notices := f.degrade(ctx, op, err)
	result := f.local(local)
	result.Notices = append(notices, result.Notices...)
	return result, nil
}

// local runs pick over the working set and records the view as current.
func (f *Facade) local(pick func([]domain.Ticket) []domain.Ticket) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	tickets := domain.CloneTickets(pick(f.state.All))
	f.state.Current = domain.CloneTickets(tickets)

	return Result{Tickets: tickets, Mode: f.state.Mode()}
}

func (f *Facade) create(ctx context.Context, ticket domain.NewTicket) (Result, error) {
	if err := ticket.Validate(); err != nil {
		return Result{}, err
	}
	ticket.Priority = ticket.Priority.OrDefault()

	var notices []domain.Notice
	if f.Snapshot().Connected() {
		created, err := f.api.Create(ctx, ticket)
		if err == nil {
			created.Priority = created.Priority.OrDefault()
			result := Result{Ticket: &created, ResetForm: true}
			if err := f.loadLive(ctx, true, &result); err != nil {
				return Result{}, err
			}
			result.Notices = append(result.Notices, f.notify(domain.NoticeSuccess, "¡Servicio agendado exitosamente en el servidor!"))
			return result, nil
		}
		if !f.shouldFallback(ctx, err) {
			return Result{}, err
		}
		notices = f.degrade(ctx, "create", err)
	}

	f.mu.Lock()
	created := domain.Ticket{
		ID:                 domain.TicketID(len(f.state.All) + 1),
		CustomerName:       strings.TrimSpace(ticket.CustomerName),
		Phone:              strings.TrimSpace(ticket.Phone),
		Email:              strings.TrimSpace(ticket.Email),
		DeviceType:         strings.TrimSpace(ticket.DeviceType),
		Brand:              strings.TrimSpace(ticket.Brand),
		Model:              strings.TrimSpace(ticket.Model),
		ProblemDescription: strings.TrimSpace(ticket.ProblemDescription),
		Status:             domain.StatusScheduled,
		Priority:           ticket.Priority,
		ScheduledAt:        ticket.ScheduledAt,
		CreatedAt:          f.clock.Now(),
		ElapsedDays:        0,
		Technician:         strings.TrimSpace(ticket.Technician),
		EstimatedCost:      ticket.EstimatedCost,
	}
	f.state.All = append(f.state.All, created)
	f.state.Current = domain.CloneTickets(f.state.All)
	f.state.Stats = domain.ComputeStatistics(f.state.All)
	f.state.Loaded = true
	all := domain.CloneTickets(f.state.All)
	stats := f.state.Stats
	f.mu.Unlock()

	f.saveCache(ctx, all)

	notices = append(notices, f.notify(domain.NoticeSuccess, "¡Servicio agendado en modo demo!"))
	return Result{
		Tickets:    all,
		Statistics: &stats,
		Ticket:     &created,
		Mode:       domain.ModeLocal,
		Notices:    notices,
		ResetForm:  true,
	}, nil
}

func (f *Facade) changeStatus(ctx context.Context, req StatusChangeRequest) (Result, error) {
	if !f.sessions.Current().LoggedIn() {
		return Result{}, domain.ErrLoginRequired
	}

	status, ok := req.Status()
	if !ok {
		return Result{Cancelled: true}, nil
	}

	var notices []domain.Notice
	localMessage := "Estado actualizado en modo demo"
	if f.Snapshot().Connected() {
		updated, err := f.api.UpdateStatus(ctx, req.ID, status)
		if err == nil {
			updated.Priority = updated.Priority.OrDefault()
			result := Result{Ticket: &updated}
			if err := f.loadLive(ctx, true, &result); err != nil {
				return Result{}, err
			}
			result.Notices = append(result.Notices, f.notify(domain.NoticeSuccess, "Estado actualizado exitosamente en el servidor"))
			return result, nil
		}
		if !f.shouldFallback(ctx, err) {
			return Result{}, err
		}
		notices = f.degrade(ctx, "change status", err)
		localMessage = "Estado actualizado localmente (error de conexión)"
	}

	f.mu.Lock()
	index := -1
	for i := range f.state.All {
		if f.state.All[i].ID == req.ID {
			index = i
			break
		}
	}
	if index < 0 {
		f.mu.Unlock()
		return Result{Notices: notices}, fmt.Errorf("ticket %d: %w", req.ID, domain.ErrTicketNotFound)
	}
	f.state.All[index].Status = status
	for i := range f.state.Current {
		if f.state.Current[i].ID == req.ID {
			f.state.Current[i].Status = status
		}
	}
	f.state.Stats = domain.ComputeStatistics(f.state.All)
	updated := f.state.All[index]
	current := domain.CloneTickets(f.state.Current)
	all := domain.CloneTickets(f.state.All)
	stats := f.state.Stats
	f.mu.Unlock()

	f.saveCache(ctx, all)

	notices = append(notices, f.notify(domain.NoticeSuccess, localMessage))
	return Result{
		Tickets:    current,
		Statistics: &stats,
		Ticket:     &updated,
		Mode:       domain.ModeLocal,
		Notices:    notices,
	}, nil
}

func (f *Facade) statistics(ctx context.Context) Result {
	var result Result
	f.reloadStatistics(ctx, &result)
	return result
}

func (f *Facade) detail(ctx context.Context, id domain.TicketID) (Result, error) {
	if !f.sessions.Current().LoggedIn() {
		return Result{}, domain.ErrLoginRequired
	}

	var notices []domain.Notice
	if f.Snapshot().Connected() {
		ticket, err := f.api.Get(ctx, id)
		if err == nil {
			ticket.Priority = ticket.Priority.OrDefault()
			return Result{Detail: newTicketDetail(ticket, domain.ModeLive), Ticket: &ticket, Mode: domain.ModeLive}, nil
		}
		if !f.shouldFallback(ctx, err) {
			return Result{}, err
		}
		notices = f.degrade(ctx, "show detail", err)
	}

	f.mu.Lock()
	ticket, ok := domain.FindTicket(f.state.All, id)
	mode := f.state.Mode()
	f.mu.Unlock()

	if !ok {
		return Result{Notices: notices}, fmt.Errorf("ticket %d: %w", id, domain.ErrTicketNotFound)
	}

	return Result{Detail: newTicketDetail(ticket, mode), Ticket: &ticket, Mode: mode, Notices: notices}, nil
}

func (f *Facade) run(ctx context.Context, effects []Effect) Result {
	var result Result
	for i := 0; i < len(effects); i++ {
		effect := effects[i]
		switch effect.Kind {
		case EffectLoadLive:
			withStats := i+1 < len(effects) && effects[i+1].Kind == EffectReloadStatistics
			if withStats {
				i++
			}
			if err := f.loadLive(ctx, withStats, &result); err != nil {
				f.logger.Debug("live load aborted", zap.Error(err))
			}
		case EffectLoadLocal:
			f.loadLocal(ctx, &result)
		case EffectLoadDemo:
			f.replaceWorkingSet(domain.DemoTickets(), false)
			result.Tickets = domain.DemoTickets()
			result.Mode = domain.ModeLocal
		case EffectReloadStatistics:
			f.reloadStatistics(ctx, &result)
		case EffectNotify, EffectShowRetry:
			result.Notices = append(result.Notices, f.emit(effect.Notice))
		}
	}

	return result
}

// loadLive fetches the full list, and the statistics when withStats is set,
// in parallel. Connectivity failures fall back to the local working set; the
// returned error is only for caller cancellation and server rejections.
func (f *Facade) loadLive(ctx context.Context, withStats bool, result *Result) error {
	var (
		tickets []domain.Ticket
		stats   domain.Statistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listed, err := f.api.List(gctx)
		if err != nil {
			return fmt.Errorf("list tickets: %w", err)
		}
		tickets = listed
		return nil
	})
	if withStats {
		g.Go(func() error {
			fetched, err := f.api.Statistics(gctx)
			if err != nil {
				return fmt.Errorf("get statistics: %w", err)
			}
			stats = fetched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if !f.shouldFallback(ctx, err) {
			return err
		}

		result.Notices = append(result.Notices, f.degrade(ctx, "load tickets", err)...)

		f.mu.Lock()
		result.Tickets = domain.CloneTickets(f.state.All)
		f.state.Current = domain.CloneTickets(f.state.All)
		if withStats {
			f.state.Stats = domain.ComputeStatistics(f.state.All)
			computed := f.state.Stats
			result.Statistics = &computed
		}
		f.mu.Unlock()

		result.Mode = domain.ModeLocal
		return nil
	}

	tickets = adaptTickets(tickets)
	f.replaceWorkingSet(tickets, true)
	if withStats {
		f.mu.Lock()
		f.state.Stats = stats
		f.mu.Unlock()
		result.Statistics = &stats
	}

	result.Tickets = tickets
	result.Mode = domain.ModeLive
	f.saveCache(ctx, tickets)

	return nil
}

func (f *Facade) loadLocal(ctx context.Context, result *Result) {
	tickets := f.localSource(ctx)
	f.replaceWorkingSet(tickets, true)
	result.Tickets = domain.CloneTickets(tickets)
	result.Mode = domain.ModeLocal
}

// localSource returns the cached working set, or the demo data when nothing
// was cached.
func (f *Facade) localSource(ctx context.Context) []domain.Ticket {
	if f.cache != nil {
		cached, err := f.cache.Load(ctx)
		if err != nil {
			f.logger.Warn("load tickets cache", zap.Error(err))
		} else if len(cached) > 0 {
			return adaptTickets(cached)
		}
	}

	return domain.DemoTickets()
}

func (f *Facade) reloadStatistics(ctx context.Context, result *Result) {
	if f.Snapshot().Connected() {
		stats, err := f.api.Statistics(ctx)
		if err == nil {
			f.mu.Lock()
			f.state.Stats = stats
			f.mu.Unlock()
			result.Statistics = &stats
			if result.Mode == "" {
				result.Mode = domain.ModeLive
			}
			return
		}
		if !f.shouldFallback(ctx, err) {
			f.logger.Debug("statistics reload aborted", zap.Error(err))
			return
		}
		result.Notices = append(result.Notices, f.degrade(ctx, "statistics", err)...)
	}

	f.mu.Lock()
	f.state.Stats = domain.ComputeStatistics(f.state.All)
	stats := f.state.Stats
	f.mu.Unlock()

	result.Statistics = &stats
	if result.Mode == "" || result.Mode == domain.ModeLive {
		result.Mode = domain.ModeLocal
	}
}

// degrade flips the state to offline after a failed remote call and makes
// sure a local working set exists to compute the fallback result from.
func (f *Facade) degrade(ctx context.Context, op string, cause error) []domain.Notice {
	f.logger.Warn("remote call failed, using local data", zap.String("operation", op), zap.Error(cause))

	f.mu.Lock()
	next, effects := RemoteFailed(f.state)
	f.state = next
	loaded := f.state.Loaded
	f.mu.Unlock()

	if !loaded {
		f.replaceWorkingSet(f.localSource(ctx), true)
	}

	notices := make([]domain.Notice, 0, len(effects))
	for _, effect := range effects {
		if effect.Kind == EffectNotify || effect.Kind == EffectShowRetry {
			notices = append(notices, f.emit(effect.Notice))
		}
	}
	return notices
}

// shouldFallback reports whether err is a connectivity failure. Caller
// cancellation, server rejections and missing tickets are returned as is.
func (f *Facade) shouldFallback(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	if domain.IsRejected(err) || domain.IsValidation(err) {
		return false
	}
	if errors.Is(err, domain.ErrTicketNotFound) || errors.Is(err, domain.ErrLoginRequired) {
		return false
	}

	return true
}

func (f *Facade) replaceWorkingSet(tickets []domain.Ticket, loaded bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.All = domain.CloneTickets(tickets)
	f.state.Current = domain.CloneTickets(tickets)
	f.state.Loaded = f.state.Loaded || loaded || len(tickets) > 0
}

func (f *Facade) saveCache(ctx context.Context, tickets []domain.Ticket) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Save(ctx, tickets); err != nil {
		f.logger.Warn("save tickets cache", zap.Error(err))
	}
}

func (f *Facade) notify(level domain.NoticeLevel, message string) domain.Notice {
	return f.emit(domain.Notice{Level: level, Message: message})
}

func (f *Facade) emit(notice domain.Notice) domain.Notice {
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = f.clock.Now()
	}
	f.notifier.Notify(notice)
	return notice
}

func adaptTickets(tickets []domain.Ticket) []domain.Ticket {
	out := domain.CloneTickets(tickets)
	for i := range out {
		out[i].Priority = out[i].Priority.OrDefault()
	}
	return out
}
