package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	SavedAt string         `toml:"saved_at,omitempty"`
	Tickets []ticketSchema `toml:"tickets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported tickets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type ticketSchema struct {
	ID                 int64    `toml:"id"`
	CustomerName       string   `toml:"customer_name"`
	Phone              string   `toml:"phone"`
	Email              string   `toml:"email"`
	DeviceType         string   `toml:"device_type"`
	Brand              string   `toml:"brand"`
	Model              string   `toml:"model"`
	ProblemDescription string   `toml:"problem_description"`
	Status             string   `toml:"status"`
	Priority           string   `toml:"priority,omitempty"`
	ScheduledAt        string   `toml:"scheduled_at,omitempty"`
	CreatedAt          string   `toml:"created_at,omitempty"`
	ElapsedDays        int64    `toml:"elapsed_days"`
	Technician         string   `toml:"technician,omitempty"`
	EstimatedCost      *float64 `toml:"estimated_cost,omitempty"`
	FinalCost          *float64 `toml:"final_cost,omitempty"`
	Notes              string   `toml:"notes,omitempty"`
}
