package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsYAMLDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "authgate", cfg.Env.ServiceName)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "login_db", cfg.Postgres.DBName)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
}

func TestNew_BuildsReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5434")

	cfg, err := New()
	require.NoError(t, err)
	require.Len(t, cfg.Postgres.Replicas, 2)

	assert.Equal(t, "replica-0", cfg.Postgres.Replicas[0].Host)
	assert.Equal(t, "5434", cfg.Postgres.Replicas[1].Port)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		Username: "authgate",
		Password: "secret",
		DBName:   "login_db",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=authgate password=secret dbname=login_db sslmode=disable",
		cfg.DSN(),
	)
}

func TestPostgresConfig_ReplicaDSN_InheritsCredentials(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "primary",
		Port:     "5432",
		Username: "authgate",
		Password: "secret",
		DBName:   "login_db",
		SSLMode:  "require",
	}

	dsn := cfg.ReplicaDSN(ReplicaConfig{Host: "replica-0", Port: "5433"})
	assert.Equal(t,
		"host=replica-0 port=5433 user=authgate password=secret dbname=login_db sslmode=require",
		dsn,
	)
}
