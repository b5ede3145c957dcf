package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.App.StoreDriver)
	assert.Equal(t, "store", cfg.Ledger.SequenceBackend)
	assert.Equal(t, "placeholder", cfg.Reconciliation.BookBalanceMode)
	assert.Equal(t, "bank", cfg.Reconciliation.BankBusinessKeyword)
	assert.False(t, cfg.Reconciliation.AllowEntryReuse)
	assert.Equal(t, 10000, cfg.App.BatchSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("LEDGER_SEQUENCE_BACKEND", "redis")
	t.Setenv("RECON_BOOK_BALANCE_MODE", "ledger")
	t.Setenv("RECON_ALLOW_ENTRY_REUSE", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.App.StoreDriver)
	assert.Equal(t, "redis", cfg.Ledger.SequenceBackend)
	assert.Equal(t, "ledger", cfg.Reconciliation.BookBalanceMode)
	assert.True(t, cfg.Reconciliation.AllowEntryReuse)
	assert.Contains(t, cfg.Database.ConnectionString(), "host=db.internal")
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("LEDGER_SEQUENCE_BACKEND", "zookeeper")

	_, err := Load()
	assert.Error(t, err)
}
