package repository

import (
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ApplyEnvironment(cfg *types.Config) error
	Validate(cfg *types.Config) error
}
