package photoserver

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings, all overridable from the environment.
type Config struct {
	Port        int
	ProjectName string
	Root        string
}

// LoadConfig reads settings from the environment, after loading a .env
// file when one is present in the working directory.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		Port:        getEnvAsInt("REDMARK_PORT", 8000),
		ProjectName: getEnv("REDMARK_PROJECT", "untitled"),
		Root:        getEnv("REDMARK_ROOT", "."),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
