package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Placeholder database IDs shipped in the .env.example. A database ID
// equal to one of these means the deployment never configured the sync.
const (
	PlaceholderDatabaseID      = "your_notion_database_id"
	PlaceholderDatabaseIDUpper = "YOUR_NOTION_DATABASE_ID"
)

// DefaultOutputPath is where the generated document lands, relative to
// the working directory. The parent directory must already exist.
const DefaultOutputPath = "src/data/friends.json"

// Config represents the sync configuration, read once from the
// environment at startup and passed by value from then on.
type Config struct {
	// Token is the Notion integration token used as a bearer credential
	Token string `env:"NOTION_TOKEN"`

	// DatabaseID identifies the Notion database holding link submissions
	DatabaseID string `env:"NOTION_DATABASE_ID"`

	// OutputPath is the destination file for the generated document
	OutputPath string `env:"FRIENDS_OUTPUT_PATH" envDefault:"src/data/friends.json"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	return cfg, nil
}

// SyncConfigured reports whether a real database ID is present.
// A missing or placeholder ID means the sync is optional infrastructure
// that this deployment chose not to set up, which is not an error.
func (c Config) SyncConfigured() bool {
	switch c.DatabaseID {
	case "", PlaceholderDatabaseID, PlaceholderDatabaseIDUpper:
		return false
	}
	return true
}

// Validate checks that a configured sync has the credential it needs
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("NOTION_TOKEN is required: set it to your Notion integration token")
	}
	return nil
}
