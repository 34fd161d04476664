package demoserver

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           int64
	Username     string
	Email        string
	Name         string
	LastName     string
	Role         string
	PasswordHash string
}

// DemoPassword is the password of every seeded account.
const DemoPassword = "123456"

func seedUsers(cost int) (map[string]user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return nil, err
	}

	users := []user{
		{ID: 1, Username: "admin", Email: "admin@reparafacil.cl", Name: "Administrador", LastName: "Sistema", Role: "ADMIN"},
		{ID: 2, Username: "tecnico", Email: "tecnico@reparafacil.cl", Name: "Juan", LastName: "Pérez", Role: "TECNICO"},
	}

	byName := make(map[string]user, len(users))
	for _, u := range users {
		u.PasswordHash = string(hash)
		byName[u.Username] = u
	}
	return byName, nil
}

func (u user) checkPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (t tokenIssuer) issue(u user, id string) (string, error) {
	issuedAt := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

func (t tokenIssuer) parse(raw string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return c, nil
}
