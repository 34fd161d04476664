package domain

import "time"

// SessionMaxAge is how long a persisted login stays valid.
const SessionMaxAge = 24 * time.Hour

type UserInfo struct {
	ID       int64
	Username string
	Email    string
	Name     string
	LastName string
	Role     string
}

type Session struct {
	User         UserInfo
	Role         string
	SessionToken string
	LoginTime    time.Time
}

// Expired reports whether the session is at least maxAge old. A session
// without a login time is always expired.
func (s Session) Expired(now time.Time, maxAge time.Duration) bool {
	if s.LoginTime.IsZero() {
		return true
	}
	if maxAge <= 0 {
		maxAge = SessionMaxAge
	}

	return now.Sub(s.LoginTime) >= maxAge
}

func (s Session) DisplayName() string {
	if name := joinNonEmpty(s.User.Name, s.User.LastName); name != "" {
		return name
	}
	return s.User.Username
}
