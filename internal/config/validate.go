package config

func ValidateForRun(cfg *Config) error {
	if err := cfg.Store.Validate(); err != nil {
		return err
	}
	if cfg.Store.Backend == StoreBackendRedis {
		if err := cfg.Redis.Validate(); err != nil {
			return err
		}
	}
	return nil
}
