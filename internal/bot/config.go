// Package bot wires the driver dispatch application: configuration, menu
// labels, dialog handlers, and the notification fan-out.
package bot

import (
	"fmt"

	"github.com/Remphph/Track-bot/internal/config"
	"github.com/Remphph/Track-bot/internal/database"
)

// DispatchConfig names the manager group chat that receives new task posts.
type DispatchConfig struct {
	ManagerGroupID int64 `yaml:"manager_group_id" envconfig:"MANAGER_GROUP_ID"`
}

// SessionConfig controls the in-memory dialog session store.
type SessionConfig struct {
	TTLMinutes int `yaml:"ttl_minutes" envconfig:"SESSION_TTL_MINUTES"`
}

const defaultSessionTTLMinutes = 30

// Config is the full application configuration: the shared transport and
// logging sections plus the dispatch bot's own sections.
type Config struct {
	config.Config `yaml:",inline"`

	Database database.Config `yaml:"database"`
	Dispatch DispatchConfig  `yaml:"dispatch"`
	Session  SessionConfig   `yaml:"session"`
	Labels   LabelsConfig    `yaml:"labels"`
}

// Load reads the application config from a YAML file, applies environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.LoadInto(path, &cfg); err != nil {
		return nil, err
	}
	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := config.Normalize(&cfg.Config); err != nil {
		return err
	}
	if cfg.Dispatch.ManagerGroupID == 0 {
		return fmt.Errorf("dispatch.manager_group_id is required")
	}
	if cfg.Session.TTLMinutes < 0 {
		return fmt.Errorf("session.ttl_minutes must be >= 0")
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = defaultSessionTTLMinutes
	}
	applyLabelDefaults(&cfg.Labels)
	return nil
}
