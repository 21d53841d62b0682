package config

import "os"

// Config is the process configuration, environment-driven with working
// defaults. cmd/web loads a .env file first, so local overrides live
// there rather than in shell profiles.
type Config struct {
	AppEnv   string
	LogLevel string

	HTTPAddr string
	// DBDSN selects the MySQL storage backend; when empty the process
	// falls back to the in-memory store (dev only, nothing survives a
	// restart).
	DBDSN string

	// CurrencySuffix is the display suffix stripped from and appended to
	// price text. Single locale, single currency.
	CurrencySuffix string
}

func Load() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DBDSN:          getEnv("DB_DSN", ""),
		CurrencySuffix: getEnv("CURRENCY_SUFFIX", "грн"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
