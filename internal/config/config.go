package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/task-dashboard/internal/constants"
)

type Config struct {
	Port                  string
	GinMode               string
	SessionSecret         string
	SessionStore          string
	RedisHost             string
	RedisPort             string
	WorkspaceIdleTimeout  time.Duration
	ApproachingBreachDays int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env file: %v", err)
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "debug"),
		SessionSecret:         getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionStore:          getEnv("SESSION_STORE", constants.SessionStoreCookie),
		RedisHost:             getEnv("REDIS_HOST", "localhost"),
		RedisPort:             getEnv("REDIS_PORT", "6379"),
		WorkspaceIdleTimeout:  getEnvDuration("WORKSPACE_IDLE_TIMEOUT", constants.DefaultWorkspaceIdleTime),
		ApproachingBreachDays: getEnvInt("APPROACHING_BREACH_DAYS", constants.DefaultApproachingBreachDays),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("Invalid %s %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
