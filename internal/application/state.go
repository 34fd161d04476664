package application

import "github.com/bnema/repara-cli/internal/domain"

type ProbeReason string

const (
	ProbeInitial  ProbeReason = "initial"
	ProbePeriodic ProbeReason = "periodic"
	ProbeManual   ProbeReason = "manual"
)

type EffectKind string

const (
	EffectLoadLive         EffectKind = "load_live"
	EffectLoadLocal        EffectKind = "load_local"
	EffectLoadDemo         EffectKind = "load_demo"
	EffectReloadStatistics EffectKind = "reload_statistics"
	EffectNotify           EffectKind = "notify"
	EffectShowRetry        EffectKind = "show_retry"
)

// Effect is work a transition asks the Facade to perform.
type Effect struct {
	Kind   EffectKind
	Notice domain.Notice
}

// State is the client-side state owned by the Facade. Transitions never
// mutate it in place; they return the next value plus the effects to run.
type State struct {
	Conn       domain.ConnState
	All        []domain.Ticket
	Current    []domain.Ticket
	Stats      domain.Statistics
	Loaded     bool
	RetryShown bool
	// Forced is set when offline mode was requested by the user rather than
	// caused by a failed probe. Periodic probes are skipped while it is set.
	Forced bool
}

type Transition func(State) (State, []Effect)

func NewState() State {
	return State{Conn: domain.ConnConnecting}
}

func (s State) Connected() bool {
	return s.Conn == domain.ConnConnected
}

func (s State) Mode() domain.Mode {
	if s.Connected() {
		return domain.ModeLive
	}
	return domain.ModeLocal
}

func BeginProbe(s State) (State, []Effect) {
	s.Conn = domain.ConnConnecting
	return s, nil
}

func ProbeSucceeded(reason ProbeReason) Transition {
	return func(s State) (State, []Effect) {
		s.Conn = domain.ConnConnected
		s.RetryShown = false
		s.Forced = false

		effects := []Effect{{Kind: EffectLoadLive}, {Kind: EffectReloadStatistics}}
		switch reason {
		case ProbePeriodic:
			effects = append(effects, notifyEffect(domain.NoticeSuccess, "¡Conexión restaurada automáticamente!"))
		case ProbeManual:
			effects = append(effects, notifyEffect(domain.NoticeSuccess, "¡Reconectado exitosamente al servidor!"))
		}

		return s, effects
	}
}

func ProbeFailed(reason ProbeReason) Transition {
	return func(s State) (State, []Effect) {
		s.Conn = domain.ConnOffline

		var effects []Effect
		if !s.Loaded || reason == ProbeInitial {
			effects = append(effects, Effect{Kind: EffectLoadLocal}, Effect{Kind: EffectReloadStatistics})
		}

		if reason == ProbeManual {
			effects = append(effects, notifyEffect(domain.NoticeError, "No se pudo reconectar al servidor"))
		}

		if reason != ProbeInitial && !s.RetryShown {
			s.RetryShown = true
			effects = append(effects, Effect{
				Kind: EffectShowRetry,
				Notice: domain.Notice{
					Level:   domain.NoticeWarning,
					Message: "Sin conexión con el servidor. Pulsa r para reintentar.",
					Action:  domain.NoticeActionRetry,
				},
			})
		}

		return s, effects
	}
}

// ForcedOffline skips the probe entirely and takes the same local path a
// failed initial probe would.
func ForcedOffline(s State) (State, []Effect) {
	s, effects := ProbeFailed(ProbeInitial)(s)
	s.Forced = true
	return s, effects
}

// RemoteFailed records a failure seen outside the monitor's own probes.
func RemoteFailed(s State) (State, []Effect) {
	wasConnected := s.Connected()
	s.Conn = domain.ConnOffline
	if !wasConnected {
		return s, nil
	}

	return s, []Effect{notifyEffect(domain.NoticeWarning, "Conexión perdida - Modo offline. Mostrando datos locales.")}
}

func Toggled(s State) (State, []Effect) {
	if s.Connected() {
		s.Conn = domain.ConnOffline
		s.Forced = true
		return s, []Effect{
			{Kind: EffectLoadDemo},
			{Kind: EffectReloadStatistics},
			notifyEffect(domain.NoticeInfo, "Modo offline forzado"),
		}
	}

	s.Conn = domain.ConnConnected
	s.Forced = false
	s.RetryShown = false
	return s, []Effect{
		{Kind: EffectLoadLive},
		{Kind: EffectReloadStatistics},
		notifyEffect(domain.NoticeInfo, "Modo online habilitado"),
	}
}

func notifyEffect(level domain.NoticeLevel, message string) Effect {
	return Effect{Kind: EffectNotify, Notice: domain.Notice{Level: level, Message: message}}
}
