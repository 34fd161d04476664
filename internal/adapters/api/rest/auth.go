package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"go.uber.org/zap"
)

// AuthClient logs users in against the backend auth collection.
type AuthClient struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.AuthAPI = AuthClient{}

func (a AuthClient) Login(ctx context.Context, username, password string) (domain.Session, error) {
	client := Client{
		BaseURL:        a.BaseURL,
		HTTPClient:     a.HTTPClient,
		RequestTimeout: a.RequestTimeout,
		Logger:         a.Logger,
	}

	var response loginResponse
	if err := client.do(ctx, http.MethodPost, "/login", loginPayload{Username: username, Password: password}, &response); err != nil {
		return domain.Session{}, err
	}
	if !response.Success {
		return domain.Session{}, &domain.RejectedError{Message: response.Message}
	}
	if response.User == nil || strings.TrimSpace(response.SessionToken) == "" {
		return domain.Session{}, errors.New("login response missing user or session token")
	}

	return domain.Session{
		User: domain.UserInfo{
			ID:       response.User.ID,
			Username: response.User.Username,
			Email:    response.User.Email,
			Name:     response.User.Nombre,
			LastName: response.User.Apellido,
			Role:     response.User.Rol,
		},
		Role:         response.User.Rol,
		SessionToken: response.SessionToken,
	}, nil
}
