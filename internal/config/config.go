// Package config loads CLI defaults from the environment, optionally backed
// by a .env file loaded with godotenv.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI's environment-derived defaults. Any field left at its
// zero value falls back to the command's own flag default.
type Config struct {
	// DatabaseURL is the store DSN: a local file path, ":memory:", or a
	// libsql://, http://, https:// remote/embedded-replica URL.
	DatabaseURL string
	// LibsqlAuthToken authenticates a remote libsql DSN. store.Connect reads
	// it from JAVAREFACTOR_LIBSQL_AUTH_TOKEN directly; it's surfaced here too
	// so a command can report which source supplied it.
	LibsqlAuthToken string
	// Include/Exclude are the default doublestar globs for internal/scan
	// when a command doesn't pass its own.
	Include []string
	Exclude []string
	// Debug enables gorm's verbose query logging.
	Debug bool
}

// Load reads .env from the current directory, ignoring a missing file, and
// builds a Config from JAVAREFACTOR_* environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:     os.Getenv("JAVAREFACTOR_DATABASE_URL"),
		LibsqlAuthToken: os.Getenv("JAVAREFACTOR_LIBSQL_AUTH_TOKEN"),
		Include:         splitList(os.Getenv("JAVAREFACTOR_INCLUDE")),
		Exclude:         splitList(os.Getenv("JAVAREFACTOR_EXCLUDE")),
		Debug:           parseBool(os.Getenv("JAVAREFACTOR_DEBUG")),
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			if i > start {
				out = append(out, raw[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
