package domain

import (
	"time"

	"github.com/google/uuid"
)

// App is an application hosted on the platform
type App struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Environment string    `json:"environment,omitempty" yaml:"environment"`
	Domains     []string  `json:"domains,omitempty" yaml:"domains"`
	Maintenance bool      `json:"maintenance" yaml:"maintenance"`
	Version     string    `json:"version,omitempty" yaml:"version"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

var appNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ship-console/apps"))

// AppID is the stable ID of the app called name, used when an app is
// catalogued without one
func AppID(name string) uuid.UUID {
	return uuid.NewSHA1(appNamespace, []byte(name))
}
