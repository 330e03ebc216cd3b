package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, 3, cfg.Stock.TxMaxRetries)
	assert.Equal(t, "Banco de Alimentos", cfg.Report.Title)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres://postgres:@localhost:5432/banco_alimentos?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_PASSWORD", "p@ss:word")
	v.Set("DB_PORT", "6543")
	v.Set("STOCK_TX_MAX_RETRIES", "5")
	v.Set("LOG_LEVEL", "debug")
	v.Set("HTTP_PORT", 9090)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 5, cfg.Stock.TxMaxRetries)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword")
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgresql://u:p@db.example.com:5432/bank?sslmode=require")
	v.Set("DB_HOST", "ignored")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@db.example.com:5432/bank?sslmode=require", cfg.DB.ConnectionString())
}

func TestFromViper_Invalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", 0)
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("STOCK_TX_MAX_RETRIES", -1)
	_, err = config.FromViper(v)
	assert.Error(t, err)
}
