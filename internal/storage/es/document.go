package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/google/uuid"
)

// AppDocument is the indexed form of an app. `name` is mapped as a keyword.
type AppDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Environment string    `json:"environment"`
	Domains     []string  `json:"domains"`
	Maintenance bool      `json:"maintenance"`
	Version     string    `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d AppDocument) toDomain() (domain.App, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.App{}, fmt.Errorf("invalid app id %q: %w", d.ID, err)
	}

	return domain.App{
		ID:          id,
		Name:        d.Name,
		Environment: d.Environment,
		Domains:     d.Domains,
		Maintenance: d.Maintenance,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func newAppDocument(app domain.App) AppDocument {
	return AppDocument{
		ID:          app.ID.String(),
		Name:        app.Name,
		Environment: app.Environment,
		Domains:     app.Domains,
		Maintenance: app.Maintenance,
		Version:     app.Version,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}
