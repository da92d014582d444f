package store

import (
	"fmt"

	"corebank/internal/platform/storage"
)

// Driver identifiers supported by the auth domain.
const (
	DriverMemory   = "memory"
	DriverDatabase = "database"
	DriverRedis    = "redis"
)

// Dependencies captures external handles required by certain drivers.
type Dependencies struct {
	RecordStore *storage.Store
}

// New creates a credential store based on the provided configuration.
func New(cfg Config, deps Dependencies) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverMemory
	}

	switch driver {
	case DriverMemory:
		return SeededMemory(), nil
	case DriverDatabase:
		if deps.RecordStore == nil {
			return nil, fmt.Errorf("database driver requires a record store handle")
		}
		return NewDatabase(deps.RecordStore)
	case DriverRedis:
		return NewRedis(cfg)
	default:
		return nil, fmt.Errorf("unsupported credential store driver: %s", driver)
	}
}
