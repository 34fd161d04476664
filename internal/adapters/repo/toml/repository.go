package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	CachePathKey    = "cache.path"
	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	cacheConfigDir  = ".reparafacil"
	cacheConfigFile = "tickets.toml"
	tempFilePattern = ".tickets-*.toml.tmp"
)

// Repository persists the last known working set as a TOML document.
type Repository struct {
	ticketsPath string
	mu          *sync.RWMutex
	now         func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TicketCache = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(CachePathKey, filepath.Join(homeDir, cacheConfigDir, cacheConfigFile))

	ticketsPath := cfg.GetString(CachePathKey)
	if ticketsPath == "" {
		return nil, errors.New("tickets cache path is empty")
	}
	ticketsPath, err = normalizePath(ticketsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{ticketsPath: ticketsPath, mu: lockForPath(ticketsPath), now: time.Now}, nil
}

func (r *Repository) Path() string {
	return r.ticketsPath
}

func (r *Repository) Save(ctx context.Context, tickets []domain.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{
		SavedAt: formatTime(r.now().UTC()),
		Tickets: make([]ticketSchema, 0, len(tickets)),
	}
	for _, ticket := range tickets {
		file.Tickets = append(file.Tickets, toSchema(ticket))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// Load returns the cached tickets, or an empty slice when nothing was saved.
func (r *Repository) Load(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(file.Tickets))
	for _, entry := range file.Tickets {
		tickets = append(tickets, fromSchema(entry))
	}

	return tickets, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.ticketsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read tickets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode tickets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve tickets cache path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.ticketsPath), cacheDirMode); err != nil {
		return fmt.Errorf("create tickets cache directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode tickets file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.ticketsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp tickets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp tickets file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp tickets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp tickets file: %w", err)
	}

	if err := os.Rename(tempName, r.ticketsPath); err != nil {
		return fmt.Errorf("replace tickets file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(ticket domain.Ticket) ticketSchema {
	return ticketSchema{
		ID:                 int64(ticket.ID),
		CustomerName:       ticket.CustomerName,
		Phone:              ticket.Phone,
		Email:              ticket.Email,
		DeviceType:         ticket.DeviceType,
		Brand:              ticket.Brand,
		Model:              ticket.Model,
		ProblemDescription: ticket.ProblemDescription,
		Status:             string(ticket.Status),
		Priority:           string(ticket.Priority),
		ScheduledAt:        formatTime(ticket.ScheduledAt),
		CreatedAt:          formatTime(ticket.CreatedAt),
		ElapsedDays:        ticket.ElapsedDays,
		Technician:         ticket.Technician,
		EstimatedCost:      ticket.EstimatedCost,
		FinalCost:          ticket.FinalCost,
		Notes:              ticket.Notes,
	}
}

func fromSchema(entry ticketSchema) domain.Ticket {
	return domain.Ticket{
		ID:                 domain.TicketID(entry.ID),
		CustomerName:       entry.CustomerName,
		Phone:              entry.Phone,
		Email:              entry.Email,
		DeviceType:         entry.DeviceType,
		Brand:              entry.Brand,
		Model:              entry.Model,
		ProblemDescription: entry.ProblemDescription,
		Status:             domain.Status(entry.Status),
		Priority:           domain.Priority(entry.Priority).OrDefault(),
		ScheduledAt:        parseTime(entry.ScheduledAt),
		CreatedAt:          parseTime(entry.CreatedAt),
		ElapsedDays:        entry.ElapsedDays,
		Technician:         entry.Technician,
		EstimatedCost:      entry.EstimatedCost,
		FinalCost:          entry.FinalCost,
		Notes:              entry.Notes,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
