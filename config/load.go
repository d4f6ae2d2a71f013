package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

func Load() App {
	cfg := App{
		Port:            getenv("APP_PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		Env:             getenv("APP_ENV", "dev"),
		DBMaxConns:      int32(atoienv("DB_MAX_CONNS", 10)),
		DBTxTimeout:     durenvms("DB_TX_TIMEOUT_MS", 5000),
		DBMigrate:       boolenv("DB_MIGRATE", true),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
	// PORT is what most PaaS runtimes inject.
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}

func atoienv(k string, def int) int {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func boolenv(k string, def bool) bool {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvms(k string, defMs int) time.Duration {
	return time.Duration(atoienv(k, defMs)) * time.Millisecond
}

func durenvs(k string, defSec int) time.Duration {
	return time.Duration(atoienv(k, defSec)) * time.Second
}
