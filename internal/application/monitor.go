package application

import (
	"context"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultProbeInterval = 30 * time.Second
	DefaultHealthTimeout = 5 * time.Second
)

type MonitorOptions struct {
	Interval      time.Duration
	HealthTimeout time.Duration
}

// Monitor probes backend health and drives the connectivity transitions of
// a Facade.
type Monitor struct {
	facade        *Facade
	api           ports.TicketAPI
	logger        *zap.Logger
	interval      time.Duration
	healthTimeout time.Duration
}

func NewMonitor(facade *Facade, api ports.TicketAPI, logger *zap.Logger, opts MonitorOptions) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultProbeInterval
	}
	if opts.HealthTimeout <= 0 {
		opts.HealthTimeout = DefaultHealthTimeout
	}

	return &Monitor{
		facade:        facade,
		api:           api,
		logger:        logger,
		interval:      opts.Interval,
		healthTimeout: opts.HealthTimeout,
	}
}

// Start performs the initial probe and loads the working set from the side
// it selected.
func (m *Monitor) Start(ctx context.Context) Result {
	return m.probeAndApply(ctx, ProbeInitial)
}

// ForceOffline skips the probe and loads the local working set.
func (m *Monitor) ForceOffline(ctx context.Context) Result {
	m.logger.Debug("offline mode forced")
	return m.facade.Apply(ctx, ForcedOffline)
}

// Run re-probes every interval while offline until ctx is done.
func (m *Monitor) Run(ctx context.Context, onResult func(Result)) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			result, probed := m.Tick(ctx)
			if probed && onResult != nil {
				onResult(result)
			}
		}
	}
}

// Tick runs one periodic step. It only probes when the state is offline and
// offline mode was not forced.
func (m *Monitor) Tick(ctx context.Context) (Result, bool) {
	state := m.facade.Snapshot()
	if state.Conn != domain.ConnOffline || state.Forced {
		return Result{}, false
	}

	m.logger.Debug("checking automatic reconnection")
	return m.probeAndApply(ctx, ProbePeriodic), true
}

// Retry is the manual reconnect action.
func (m *Monitor) Retry(ctx context.Context) Result {
	return m.probeAndApply(ctx, ProbeManual)
}

func (m *Monitor) Toggle(ctx context.Context) Result {
	return m.facade.Apply(ctx, Toggled)
}

func (m *Monitor) probeAndApply(ctx context.Context, reason ProbeReason) Result {
	m.facade.Apply(ctx, BeginProbe)

	if err := m.probe(ctx); err != nil {
		m.logger.Info("backend health check failed", zap.String("reason", string(reason)), zap.Error(err))
		return m.facade.Apply(ctx, ProbeFailed(reason))
	}

	m.logger.Debug("backend health check succeeded", zap.String("reason", string(reason)))
	return m.facade.Apply(ctx, ProbeSucceeded(reason))
}

func (m *Monitor) probe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, m.healthTimeout)
	defer cancel()

	return m.api.Health(probeCtx)
}
