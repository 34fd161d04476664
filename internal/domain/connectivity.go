package domain

import "time"

type ConnState string

const (
	ConnConnecting ConnState = "CONNECTING"
	ConnConnected  ConnState = "CONNECTED"
	ConnOffline    ConnState = "OFFLINE"
)

func (c ConnState) Label() string {
	switch c {
	case ConnConnecting:
		return "Conectando con el servidor..."
	case ConnConnected:
		return "Conectado al servidor"
	case ConnOffline:
		return "Modo offline - Datos locales"
	default:
		return string(c)
	}
}

// Mode tells which side produced a result.
type Mode string

const (
	ModeLive  Mode = "live"
	ModeLocal Mode = "local"
)

// NoticeTTL is how long a transient notice stays visible.
const NoticeTTL = 5 * time.Second

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type NoticeAction string

// NoticeActionRetry marks the manual reconnect affordance.
const NoticeActionRetry NoticeAction = "retry"

type Notice struct {
	Level     NoticeLevel
	Message   string
	Action    NoticeAction
	CreatedAt time.Time
}

func (n Notice) Expired(now time.Time) bool {
	if n.CreatedAt.IsZero() || n.Action == NoticeActionRetry {
		return false
	}
	return now.Sub(n.CreatedAt) >= NoticeTTL
}
