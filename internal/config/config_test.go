package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/task-dashboard/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "SESSION_SECRET", "SESSION_STORE", "REDIS_HOST", "REDIS_PORT", "WORKSPACE_IDLE_TIMEOUT", "APPROACHING_BREACH_DAYS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, constants.SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, constants.DefaultWorkspaceIdleTime, cfg.WorkspaceIdleTimeout)
	assert.Equal(t, constants.DefaultApproachingBreachDays, cfg.ApproachingBreachDays)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", constants.SessionStoreRedis)
	t.Setenv("WORKSPACE_IDLE_TIMEOUT", "15m")
	t.Setenv("APPROACHING_BREACH_DAYS", "5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, constants.SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 15*time.Minute, cfg.WorkspaceIdleTimeout)
	assert.Equal(t, 5, cfg.ApproachingBreachDays)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKSPACE_IDLE_TIMEOUT", "soon")
	t.Setenv("APPROACHING_BREACH_DAYS", "-1")

	cfg := Load()

	assert.Equal(t, constants.DefaultWorkspaceIdleTime, cfg.WorkspaceIdleTimeout)
	assert.Equal(t, constants.DefaultApproachingBreachDays, cfg.ApproachingBreachDays)
}
