package unfollow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBatchSize is the largest id list users/lookup accepts per call.
	DefaultBatchSize = 100

	// NonFollowersFile and StatsFile are the snapshot file names.
	NonFollowersFile = "non_followers.json"
	StatsFile        = "twitter_stats.json"
)

// Config holds the tunables of a run.
type Config struct {
	// OutputDir is where snapshot files are written. Default: current directory.
	OutputDir string

	// BatchSize is the number of ids per lookup call.
	BatchSize int `validate:"min=1,max=100"`

	// Timeout bounds every HTTP call made by the API client.
	Timeout time.Duration `validate:"gt=0"`
}

// defaults fills in zero-value config fields.
func (cfg *Config) defaults() {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
}

// Normalize applies defaults and validates the result.
func (cfg *Config) Normalize() error {
	cfg.defaults()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
