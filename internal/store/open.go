package store

import (
	"context"

	"github.com/pkg/errors"

	"storefront/internal/config"
)

// Drivers accepted by Open.
const (
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Open builds the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case DriverFile, "":
		return NewFileStore(cfg.DataFile)
	case DriverBolt:
		return NewBoltStore(cfg.BoltPath)
	case DriverRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisKey)
	case DriverMySQL:
		return NewMySQLStore(cfg.MySQLDSN)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
