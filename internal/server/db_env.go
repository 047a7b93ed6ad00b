package server

import (
	"net/url"
	"os"
)

// dbDSNFromEnv returns DATABASE_URL, or a DSN assembled from DB_* parts when DB_HOST is set,
// or "" when neither is configured.
func dbDSNFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := getenvDefault("DB_PORT", "5432")
	user := getenvDefault("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := getenvDefault("DB_NAME", "leadership")
	sslmode := getenvDefault("DB_SSLMODE", "disable")

	u := &url.URL{
		Scheme: "postgres",
		User:   url.User(user),
		Host:   host + ":" + port,
		Path:   "/" + name,
	}
	if pass != "" {
		u.User = url.UserPassword(user, pass)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
