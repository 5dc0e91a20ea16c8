// internal/workers/rejection/compose-rejection-email/config.go
package composerejectionemail

import (
	"fmt"
	"time"

	"saif-rejection-agent/internal/common/config"
)

type Config struct {
	Enabled            bool          `mapstructure:"enabled"`
	MaxJobsActive      int           `mapstructure:"max_jobs_active"`
	Timeout            time.Duration `mapstructure:"timeout"`
	IncludeSections    bool          `mapstructure:"include_sections"`
	RequireDescription bool          `mapstructure:"require_description"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       10 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	return nil
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()
	if appConfig == nil {
		return cfg
	}

	if workerCfg, exists := appConfig.Workers[TaskType]; exists {
		cfg.Enabled = workerCfg.Enabled
		if workerCfg.MaxJobsActive > 0 {
			cfg.MaxJobsActive = workerCfg.MaxJobsActive
		}
		if workerCfg.Timeout > 0 {
			cfg.Timeout = config.GetDuration(workerCfg.Timeout)
		}
	}
	cfg.IncludeSections = appConfig.Composer.IncludeSections
	cfg.RequireDescription = appConfig.Composer.RequireDescription

	return cfg
}
