package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"github.com/bnema/repara-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const storedSession = `{"user":{"id":1,"username":"admin","email":"admin@reparafacil.cl","nombre":"Ana","apellido":"Rojas","rol":"ADMIN"},"role":"ADMIN","sessionToken":"tok-1","loginTime":"2026-03-10T08:00:00.000Z"}`

func TestSessionServiceLoadAcceptsFreshSession(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(store, nil, clock, nil, 0)

	store.EXPECT().Get(mockAnyContext(), SessionKey).Return(storedSession, nil)
	clock.EXPECT().Now().Return(testNow)

	view := service.Load(context.Background())

	require.True(t, view.LoggedIn())
	assert.Equal(t, "admin", view.Session.User.Username)
	assert.Equal(t, "Ana Rojas", view.Session.DisplayName())
	assert.Equal(t, "ADMIN", view.Session.Role)
	assert.Equal(t, "tok-1", service.Token())
}

func TestSessionServiceLoadExpiresSessionAtMaxAge(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(store, nil, clock, nil, 0)

	store.EXPECT().Get(mockAnyContext(), SessionKey).Return(storedSession, nil)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC))
	store.EXPECT().Delete(mockAnyContext(), SessionKey).Return(nil)

	view := service.Load(context.Background())

	assert.False(t, view.LoggedIn())
	assert.Empty(t, service.Token())
}

func TestSessionServiceLoadDiscardsMalformedRecord(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":          "{user",
		"missing loginTime": `{"user":{"username":"admin"},"sessionToken":"x"}`,
		"bad loginTime":     `{"user":{"username":"admin"},"loginTime":"yesterday"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewMockKeyValueStore(t)
			service := NewSessionService(store, nil, fixedClock{now: testNow}, nil, 0)

			store.EXPECT().Get(mockAnyContext(), SessionKey).Return(raw, nil)
			store.EXPECT().Delete(mockAnyContext(), SessionKey).Return(nil)

			view := service.Load(context.Background())
			assert.False(t, view.LoggedIn())
		})
	}
}

func TestSessionServiceLoadMissingRecordIsGuest(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewSessionService(store, nil, fixedClock{now: testNow}, nil, 0)

	store.EXPECT().Get(mockAnyContext(), SessionKey).Return("", ports.ErrKeyNotFound)

	view := service.Load(context.Background())
	assert.False(t, view.LoggedIn())
}

func TestSessionServiceLoadStoreErrorIsGuest(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewSessionService(store, nil, fixedClock{now: testNow}, nil, 0)

	store.EXPECT().Get(mockAnyContext(), SessionKey).Return("", errors.New("permission denied"))
	store.EXPECT().Delete(mockAnyContext(), SessionKey).Return(errors.New("permission denied"))

	view := service.Load(context.Background())
	assert.False(t, view.LoggedIn())
}

func TestSessionServiceLoginPersistsSession(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	auth := mocks.NewMockAuthAPI(t)
	service := NewSessionService(store, auth, fixedClock{now: testNow}, nil, 0)

	auth.EXPECT().Login(mockAnyContext(), "tecnico", "123456").Return(domain.Session{
		User:         domain.UserInfo{ID: 2, Username: "tecnico", Name: "Juan", LastName: "Pérez", Role: "TECNICO"},
		SessionToken: "tok-2",
	}, nil)
	store.EXPECT().Put(mockAnyContext(), SessionKey, mock.MatchedBy(func(raw string) bool {
		return assert.JSONEq(t, `{"user":{"id":2,"username":"tecnico","nombre":"Juan","apellido":"Pérez","rol":"TECNICO"},"role":"TECNICO","sessionToken":"tok-2","loginTime":"2026-03-10T12:00:00Z"}`, raw)
	})).Return(nil)

	view, err := service.Login(context.Background(), " tecnico ", "123456")
	require.NoError(t, err)

	require.True(t, view.LoggedIn())
	assert.Equal(t, testNow, view.Session.LoginTime)
	assert.Equal(t, "TECNICO", view.Session.Role)
	assert.True(t, service.Current().LoggedIn())
}

func TestSessionServiceLoginRoundTripsThroughLoad(t *testing.T) {
	store := &memoryStore{values: map[string]string{}}
	auth := mocks.NewMockAuthAPI(t)
	service := NewSessionService(store, auth, fixedClock{now: testNow}, nil, 0)

	auth.EXPECT().Login(mockAnyContext(), "admin", "123456").Return(domain.Session{
		User:         domain.UserInfo{ID: 1, Username: "admin", Role: "ADMIN"},
		Role:         "ADMIN",
		SessionToken: "tok-1",
	}, nil)

	_, err := service.Login(context.Background(), "admin", "123456")
	require.NoError(t, err)

	reloaded := NewSessionService(store, nil, fixedClock{now: testNow.Add(23 * time.Hour)}, nil, 0)
	view := reloaded.Load(context.Background())
	require.True(t, view.LoggedIn())
	assert.Equal(t, testNow, view.Session.LoginTime)
}

func TestSessionServiceLoginRequiresCredentials(t *testing.T) {
	service := NewSessionService(mocks.NewMockKeyValueStore(t), mocks.NewMockAuthAPI(t), fixedClock{now: testNow}, nil, 0)

	_, err := service.Login(context.Background(), " ", "")
	require.Error(t, err)

	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, []string{"username", "password"}, validation.Fields)
}

func TestSessionServiceLoginFailureDoesNotPersist(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	auth := mocks.NewMockAuthAPI(t)
	service := NewSessionService(store, auth, fixedClock{now: testNow}, nil, 0)

	auth.EXPECT().Login(mockAnyContext(), "admin", "wrong").Return(domain.Session{}, &domain.RejectedError{Message: "Credenciales inválidas"})

	_, err := service.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, domain.IsRejected(err))
	assert.False(t, service.Current().LoggedIn())
}

func TestSessionServiceLogoutRequiresConfirmation(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewSessionService(store, nil, fixedClock{now: testNow}, nil, 0)
	service.setCurrent(&domain.Session{User: domain.UserInfo{Username: "admin"}, LoginTime: testNow})

	result := service.Logout(context.Background(), LogoutRequest{})

	assert.False(t, result.LoggedOut)
	assert.Nil(t, result.Notice)
	assert.True(t, service.Current().LoggedIn())
}

func TestSessionServiceLogoutConfirmed(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewSessionService(store, nil, fixedClock{now: testNow}, nil, 0)
	service.setCurrent(&domain.Session{User: domain.UserInfo{Username: "admin"}, LoginTime: testNow})

	store.EXPECT().Delete(mockAnyContext(), SessionKey).Return(nil)

	result := service.Logout(context.Background(), LogoutRequest{Confirmed: true})

	assert.True(t, result.LoggedOut)
	require.NotNil(t, result.Notice)
	assert.Equal(t, domain.NoticeSuccess, result.Notice.Level)
	assert.Equal(t, 2*time.Second, result.ReloadAfter)
	assert.False(t, service.Current().LoggedIn())
}

func TestTokenExpiryReadsJWTClaims(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, expiresAt.Equal(got))

	_, ok = TokenExpiry("opaque-token")
	assert.False(t, ok)
}

type memoryStore struct {
	values map[string]string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value string) error {
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func mockAnyContext() interface{} {
	return mock.Anything
}
