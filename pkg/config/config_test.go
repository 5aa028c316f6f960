package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 43200, cfg.JWT.Expiration)
	assert.Equal(t, "last-write", cfg.Ledger.PricingPolicy)
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, "./docs/swagger.json", cfg.Docs.SwaggerFile)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_LeeVariables(t *testing.T) {
	t.Setenv("LEDGER_PRICING_POLICY", "weighted-average")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PORT", "no-es-numero")
	t.Setenv("JWT_SECRET", "s3cret")

	v := viper.New()
	v.AutomaticEnv()
	cfg := fromViper(v)

	assert.Equal(t, "weighted-average", cfg.Ledger.PricingPolicy)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port, "un entero inválido cae al valor por defecto")
	require.NoError(t, cfg.Validate())
}

func TestValidate_SecretoRequerido(t *testing.T) {
	cfg := fromViper(viper.New())
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{User: "app", Password: "p@ss:word", Host: "db", Port: 5432, DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/stock?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestValidate_AdminIncompleto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_USERNAME", "root")

	v := viper.New()
	v.AutomaticEnv()
	cfg := fromViper(v)
	assert.Error(t, cfg.Validate(), "ADMIN_USERNAME sin ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", "secreto1")
	cfg = fromViper(v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "root", cfg.Admin.Username)
}
