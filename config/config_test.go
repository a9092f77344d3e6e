package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "https://fullnode.devnet.aptoslabs.com/v1", cfg.Ledger.NodeURL)
	assert.Equal(t, "Fundraising", cfg.Ledger.ModuleName)
	assert.Equal(t, 500*time.Millisecond, cfg.Ledger.PollInterval)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "fundtos", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 3*time.Second, cfg.Status.ResetAfter)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
ledger:
  node_url: "http://localhost:8081/v1"
  signer_url: "http://localhost:8090"
  module_address: "0xabc"
  module_name: "Crowdfund"
  poll_interval: "250ms"
status:
  reset_after: "5s"
log:
  level: "debug"
  pretty: true
`)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081/v1", cfg.Ledger.NodeURL)
	assert.Equal(t, "0xabc", cfg.Ledger.ModuleAddress)
	assert.Equal(t, "Crowdfund", cfg.Ledger.ModuleName)
	assert.Equal(t, 250*time.Millisecond, cfg.Ledger.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Status.ResetAfter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUNDTOS_SERVER_PORT", "7070")
	t.Setenv("FUNDTOS_LEDGER_MODULE_NAME", "FundraisingV2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "FundraisingV2", cfg.Ledger.ModuleName)
}

func TestLedgerConfig_Function(t *testing.T) {
	l := LedgerConfig{ModuleAddress: "0xabc", ModuleName: "Fundraising"}
	assert.Equal(t, "0xabc::Fundraising::donate", l.Function("donate"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "fundtos", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/fundtos?sslmode=require", d.DSN())
}
