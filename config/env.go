package config

import (
	"os"
)

// IsDevelopment reports whether the process runs in development mode, the
// only mode in which LoadConfig reads a local .env file. CI and any ENV
// value other than "development" count as non-development.
func IsDevelopment() bool {
	if os.Getenv("CI") == "true" {
		return false
	}

	env := os.Getenv("ENV")
	return env == "" || env == "development"
}
