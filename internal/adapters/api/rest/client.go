package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxResponseBytes = 1 << 20
	requestIDHeader  = "X-Request-ID"
)

// Client talks to the repair-ticket REST collection.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// Token returns the bearer token to send, or "" for anonymous requests.
	Token  func() string
	Logger *zap.Logger
}

var (
	_ ports.TicketAPI  = Client{}
	_ ports.CatalogAPI = Client{}
)

func (c Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c Client) List(ctx context.Context) ([]domain.Ticket, error) {
	return c.listTickets(ctx, "")
}

func (c Client) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Ticket, error) {
	return c.listTickets(ctx, "/estado/"+url.PathEscape(string(status)))
}

func (c Client) Search(ctx context.Context, query string) ([]domain.Ticket, error) {
	return c.listTickets(ctx, "/buscar?q="+url.QueryEscape(query))
}

func (c Client) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Ticket, error) {
	return c.listTickets(ctx, "/cliente/"+url.PathEscape(email))
}

func (c Client) Get(ctx context.Context, id domain.TicketID) (domain.Ticket, error) {
	var payload ticketPayload
	err := c.do(ctx, http.MethodGet, "/"+strconv.FormatInt(int64(id), 10), nil, &payload)
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return domain.Ticket{}, fmt.Errorf("ticket %d: %w", id, domain.ErrTicketNotFound)
		}
		return domain.Ticket{}, err
	}

	return payload.toDomain(), nil
}

func (c Client) Create(ctx context.Context, ticket domain.NewTicket) (domain.Ticket, error) {
	var response mutationResponse
	if err := c.do(ctx, http.MethodPost, "", newCreatePayload(ticket), &response); err != nil {
		return domain.Ticket{}, err
	}

	return mutationResult(response)
}

func (c Client) UpdateStatus(ctx context.Context, id domain.TicketID, status domain.Status) (domain.Ticket, error) {
	var response mutationResponse
	path := "/" + strconv.FormatInt(int64(id), 10) + "/estado"
	if err := c.do(ctx, http.MethodPut, path, statusChangePayload{Estado: string(status)}, &response); err != nil {
		return domain.Ticket{}, err
	}

	return mutationResult(response)
}

func (c Client) Statistics(ctx context.Context) (domain.Statistics, error) {
	var payload statisticsPayload
	if err := c.do(ctx, http.MethodGet, "/estadisticas", nil, &payload); err != nil {
		return domain.Statistics{}, err
	}

	return payload.toDomain(), nil
}

func (c Client) Statuses(ctx context.Context) ([]domain.StatusInfo, error) {
	var payload statusesPayload
	if err := c.do(ctx, http.MethodGet, "/estados", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]domain.StatusInfo, 0, len(payload.Estados))
	for _, estado := range payload.Estados {
		out = append(out, domain.StatusInfo{Code: domain.Status(estado.Codigo), Description: estado.Descripcion})
	}
	return out, nil
}

func (c Client) DeviceTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.do(ctx, http.MethodGet, "/tipos-dispositivos", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c Client) listTickets(ctx context.Context, path string) ([]domain.Ticket, error) {
	var payloads []ticketPayload
	if err := c.do(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, err
	}

	return ticketsToDomain(payloads), nil
}

func mutationResult(response mutationResponse) (domain.Ticket, error) {
	if !response.Success {
		return domain.Ticket{}, &domain.RejectedError{Message: response.Message}
	}
	if response.Servicio == nil {
		return domain.Ticket{}, errors.New("response missing servicio")
	}

	return response.Servicio.toDomain(), nil
}

// statusError is a non-2xx answer that was not a structured rejection.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// do sends one JSON request. Transport failures and unexpected statuses wrap
// domain.ErrBackendUnavailable; success=false envelopes and auth refusals
// become *domain.RejectedError.
func (c Client) do(ctx context.Context, method, path string, body any, out any) error {
	endpoint, err := joinURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := requestContext(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != nil {
		if token := strings.TrimSpace(c.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := c.logger().With(zap.String("method", method), zap.String("path", path), zap.String("request_id", requestID))
	started := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Debug("request failed", zap.Error(err))
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("response received", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))

	limited := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(limited)
		if rejected := asRejection(method, resp.StatusCode, raw); rejected != nil {
			return rejected
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrBackendUnavailable, &statusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(raw)),
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	return nil
}

// asRejection reads a structured refusal from a mutation response. Reads are
// never rejections: any non-2xx on a GET counts as the backend being unusable.
func asRejection(method string, code int, raw []byte) error {
	if method == http.MethodGet {
		return nil
	}

	var envelope rejection
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Success != nil && !*envelope.Success {
		return &domain.RejectedError{Message: envelope.Message}
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		message := envelope.Message
		if message == "" {
			message = "no autorizado"
		}
		return &domain.RejectedError{Message: message}
	}

	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}

func joinURL(baseURL, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(baseURL, "/") + path, nil
}
