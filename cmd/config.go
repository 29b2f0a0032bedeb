package cmd

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries everything the process needs to start. Values come from
// the environment; Validate rejects a config that would only fail later
// at connect time.
type Config struct {
	HTTPPort   string `validate:"required,numeric"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"required,oneof=disable require verify-ca verify-full"`

	// EvidenceRoot is the directory evidence photos are stored under.
	EvidenceRoot string `validate:"required"`

	// EvidenceTTL is how long an unlinked photo survives before cleanup.
	EvidenceTTL time.Duration `validate:"gt=0"`

	// MachineID distinguishes id generators across instances.
	MachineID int64 `validate:"gte=0,lte=1023"`
}

// Validate checks the config against its declared constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// PostgresDSN assembles the connection string for the main database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
