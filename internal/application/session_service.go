package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	SessionKey         = "userSession"
	LogoutReloadDelay  = 2 * time.Second
	logoutNoticeText   = "Sesión cerrada exitosamente. ¡Hasta pronto!"
	sessionRecordLimit = 64 << 10
)

type sessionRecord struct {
	User         sessionUser `json:"user"`
	Role         string      `json:"role"`
	SessionToken string      `json:"sessionToken"`
	LoginTime    string      `json:"loginTime"`
}

type sessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"nombre,omitempty"`
	LastName string `json:"apellido,omitempty"`
	Role     string `json:"rol,omitempty"`
}

type SessionService struct {
	store  ports.KeyValueStore
	auth   ports.AuthAPI
	clock  ports.Clock
	logger *zap.Logger
	maxAge time.Duration

	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionService(store ports.KeyValueStore, auth ports.AuthAPI, clock ports.Clock, logger *zap.Logger, maxAge time.Duration) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxAge <= 0 {
		maxAge = domain.SessionMaxAge
	}

	return &SessionService{
		store:  store,
		auth:   auth,
		clock:  clock,
		logger: logger,
		maxAge: maxAge,
	}
}

// Load reads the persisted session. Every failure resolves to guest.
func (s *SessionService) Load(ctx context.Context) SessionView {
	session, err := s.read(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Debug("discarding persisted session", zap.Error(err))
			s.discard(ctx)
		}
		s.setCurrent(nil)
		return SessionView{}
	}

	if session.Expired(s.clock.Now(), s.maxAge) {
		s.logger.Debug("persisted session expired", zap.Time("login_time", session.LoginTime))
		s.discard(ctx)
		s.setCurrent(nil)
		return SessionView{}
	}

	s.setCurrent(&session)
	return s.Current()
}

func (s *SessionService) Current() SessionView {
	if s == nil {
		return SessionView{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return SessionView{}
	}

	session := *s.current
	view := SessionView{Session: &session}
	if expiresAt, ok := TokenExpiry(session.SessionToken); ok {
		view.TokenExpiresAt = expiresAt
	}
	return view
}

// Token returns the bearer token of the current session, or "" for guests.
func (s *SessionService) Token() string {
	return s.Current().Token()
}

func (s *SessionService) Login(ctx context.Context, username, password string) (SessionView, error) {
	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return SessionView{}, domain.NewValidationError("missing credentials", missing...)
	}
	if s.auth == nil {
		return SessionView{}, fmt.Errorf("login: %w", domain.ErrBackendUnavailable)
	}

	session, err := s.auth.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return SessionView{}, fmt.Errorf("login: %w", err)
	}
	session.LoginTime = s.clock.Now()
	if session.Role == "" {
		session.Role = session.User.Role
	}

	if err := s.write(ctx, session); err != nil {
		return SessionView{}, err
	}

	s.setCurrent(&session)
	s.logger.Info("session started", zap.String("username", session.User.Username), zap.String("role", session.Role))

	return s.Current(), nil
}

// Logout is a no-op unless the request was confirmed.
func (s *SessionService) Logout(ctx context.Context, req LogoutRequest) LogoutResult {
	if !req.Confirmed {
		return LogoutResult{}
	}

	s.discard(ctx)
	s.setCurrent(nil)

	notice := domain.Notice{
		Level:     domain.NoticeSuccess,
		Message:   logoutNoticeText,
		CreatedAt: s.clock.Now(),
	}

	return LogoutResult{LoggedOut: true, Notice: &notice, ReloadAfter: LogoutReloadDelay}
}

func (s *SessionService) read(ctx context.Context) (domain.Session, error) {
	raw, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		return domain.Session{}, err
	}
	if len(raw) > sessionRecordLimit {
		return domain.Session{}, errors.New("session record too large")
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.Session{}, fmt.Errorf("decode session record: %w", err)
	}

	loginTime, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(record.LoginTime))
	if err != nil {
		return domain.Session{}, fmt.Errorf("parse session login time: %w", err)
	}

	return domain.Session{
		User: domain.UserInfo{
			ID:       record.User.ID,
			Username: record.User.Username,
			Email:    record.User.Email,
			Name:     record.User.Name,
			LastName: record.User.LastName,
			Role:     record.User.Role,
		},
		Role:         record.Role,
		SessionToken: record.SessionToken,
		LoginTime:    loginTime,
	}, nil
}

func (s *SessionService) write(ctx context.Context, session domain.Session) error {
	record := sessionRecord{
		User: sessionUser{
			ID:       session.User.ID,
			Username: session.User.Username,
			Email:    session.User.Email,
			Name:     session.User.Name,
			LastName: session.User.LastName,
			Role:     session.User.Role,
		},
		Role:         session.Role,
		SessionToken: session.SessionToken,
		LoginTime:    session.LoginTime.UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	if err := s.store.Put(ctx, SessionKey, string(data)); err != nil {
		return fmt.Errorf("store session record: %w", err)
	}

	return nil
}

func (s *SessionService) discard(ctx context.Context) {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		s.logger.Debug("delete session record", zap.Error(err))
	}
}

func (s *SessionService) setCurrent(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
}

// TokenExpiry reads the exp claim of a JWT session token without verifying
// its signature. Opaque tokens report ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
