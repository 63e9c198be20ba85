package config

import "os"

// StoreBackend selects the persistence implementation behind the repository
// ports.
type StoreBackend string

const (
	StoreBackendRedis  StoreBackend = "redis"
	StoreBackendSQLite StoreBackend = "sqlite"

	storeBackendEnv = "STORE_BACKEND"
	sqlitePathEnv   = "SQLITE_PATH"

	defaultSQLitePath = "data/dinnerplans.db"
)

type StoreConfig struct {
	Backend    StoreBackend
	SQLitePath string
}

func LoadStoreConfig() *StoreConfig {
	backend := StoreBackendRedis
	if v := os.Getenv(storeBackendEnv); v != "" {
		backend = StoreBackend(v)
	}

	path := os.Getenv(sqlitePathEnv)
	if path == "" {
		path = defaultSQLitePath
	}

	return &StoreConfig{
		Backend:    backend,
		SQLitePath: path,
	}
}

func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case StoreBackendRedis, StoreBackendSQLite:
		return nil
	default:
		return ErrUnknownStoreBackend
	}
}
