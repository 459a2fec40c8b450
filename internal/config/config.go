package config

import "os"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr          string // RENTLINE_ADDR, default ":8080"
	DBPath        string // RENTLINE_DB, default ":memory:"
	AuthToken     string // RENTLINE_AUTH_TOKEN, optional static bearer token
	AdminEmail    string // RENTLINE_ADMIN_EMAIL, login stub account
	AdminPassword string // RENTLINE_ADMIN_PASSWORD, login stub password
	SkipSeed      bool   // RENTLINE_SKIP_SEED, set to "1" to start empty
}

// Load reads configuration from environment variables with sensible defaults.
// The default DSN is an in-memory database, so all state is discarded on
// restart and the seeder repopulates it.
func Load() Config {
	return Config{
		Addr:          envOr("RENTLINE_ADDR", ":8080"),
		DBPath:        envOr("RENTLINE_DB", ":memory:"),
		AuthToken:     os.Getenv("RENTLINE_AUTH_TOKEN"),
		AdminEmail:    envOr("RENTLINE_ADMIN_EMAIL", "admin@rentline.local"),
		AdminPassword: envOr("RENTLINE_ADMIN_PASSWORD", "rentline"),
		SkipSeed:      os.Getenv("RENTLINE_SKIP_SEED") == "1",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
