package server

import "os"

const (
	StoreKindPostgres = "postgres"
	StoreKindSQLite   = "sqlite"
	StoreKindMemory   = "memory"
)

// Config is the server configuration read from the environment.
type Config struct {
	HTTPAddr      string
	AllowlistPath string
	LogLevel      string
	LogFormat     string

	StoreKind   string
	DatabaseURL string
	SQLitePath  string
	SQLiteSeed  bool
}

func ConfigFromEnv() Config {
	return Config{
		HTTPAddr:      getenvDefault("HTTP_ADDR", ":8080"),
		AllowlistPath: os.Getenv("ALLOWLIST_PATH"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		StoreKind:     getenvDefault("DIRECTORY_STORE", StoreKindPostgres),
		DatabaseURL:   dbDSNFromEnv(),
		SQLitePath:    getenvDefault("SQLITE_PATH", "leadership.db"),
		SQLiteSeed:    os.Getenv("SQLITE_SEED") == "true",
	}
}
