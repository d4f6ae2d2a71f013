package config

import "time"

type App struct {
	Port            string        `env:"APP_PORT" default:"8080"`
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	Env             string        `env:"APP_ENV" default:"dev"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS" default:"10"`
	DBTxTimeout     time.Duration `env:"DB_TX_TIMEOUT_MS" default:"5000"`
	DBMigrate       bool          `env:"DB_MIGRATE" default:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"15"`
}
