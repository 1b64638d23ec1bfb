package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	envOnce sync.Once
	envFile string
)

// LoadEnv loads variables from a .env file in the current or parent
// directory, if one exists. Variables already set in the environment are
// not overridden. Returns the file that was loaded, or "" when none was
// found. Safe to call more than once, only the first call loads.
func LoadEnv() string {
	envOnce.Do(func() {
		envFile = loadEnvFile()
	})
	return envFile
}

func loadEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			continue
		}
		return candidate
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback when unset.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
