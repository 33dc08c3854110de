package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "MONGO_URI", "MONGO_DB_NAME", "MONGO_USERS_COLLECTION",
		"MONGO_GROUPS_COLLECTION", "MONGO_TASKS_COLLECTION", "STRICT_MEMBERSHIP",
		"JWT_TTL", "CASSANDRA_HOSTS", "BREAKER_MAX_FAILURES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "USERS", cfg.UsersCollectionName)
	assert.Equal(t, "groups", cfg.GroupsCollectionName)
	assert.Equal(t, "tasks", cfg.TasksCollectionName)
	assert.True(t, cfg.StrictMembership)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.BreakerMaxFailures)
	assert.Empty(t, cfg.CassandraHosts)
	assert.False(t, cfg.NotificationsEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STRICT_MEMBERSHIP", "false")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CASSANDRA_HOSTS", "cass-1, cass-2,,")
	t.Setenv("BREAKER_MAX_FAILURES", "7")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.False(t, cfg.StrictMembership)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"cass-1", "cass-2"}, cfg.CassandraHosts)
	assert.Equal(t, 7, cfg.BreakerMaxFailures)
	assert.True(t, cfg.NotificationsEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STRICT_MEMBERSHIP", "maybe")
	t.Setenv("JWT_TTL", "tomorrow")

	cfg := Load()

	assert.True(t, cfg.StrictMembership)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoad_NegativeBreakerFailuresRejected(t *testing.T) {
	t.Setenv("BREAKER_MAX_FAILURES", "-1")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")

	cfg := Load()

	assert.Equal(t, -1, cfg.BreakerMaxFailures)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BREAKER_MAX_FAILURES")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "short secret",
			mutate:  func(c *Config) { c.JWTSecret = "short" },
			wantErr: "JWT_SECRET",
		},
		{
			name:    "missing database",
			mutate:  func(c *Config) { c.MongoDBName = "" },
			wantErr: "MONGO_DB_NAME",
		},
		{
			name:    "negative breaker failures",
			mutate:  func(c *Config) { c.BreakerMaxFailures = -1 },
			wantErr: "BREAKER_MAX_FAILURES",
		},
		{
			name:   "zero breaker failures",
			mutate: func(c *Config) { c.BreakerMaxFailures = 0 },
		},
		{
			name:    "non-positive ttl",
			mutate:  func(c *Config) { c.JWTTTL = 0 },
			wantErr: "JWT_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ServerPort:  "5000",
				MongoURI:    "mongodb://localhost:27017",
				MongoDBName: "back_task",
				JWTSecret:   "0123456789abcdef0123",
				JWTTTL:      time.Hour,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
