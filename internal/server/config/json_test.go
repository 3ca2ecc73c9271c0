package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc":       "www.example:9000",
		"database_dsn":             "postgres://db",
		"database_timeout":         "2s",
		"secret_key":               "my_secret_key",
		"session_ttl":              "24h",
		"reset_token_ttl":          "30m",
		"frontend_url":             "https://shop.example",
		"currency":                 "BRL",
		"payment_provider":         "mercadopago",
		"payment_timeout":          5000000000,
		"mercadopago_access_token": "APP_USR-1",
		"smtp_host":                "smtp.example",
		"smtp_port":                2525,
		"mail_from":                "shop@example",
		"s3_bucket":                "incidents",
		"stale_charge_after":       "20m",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, 2*time.Second, cfg.DatabaseTimeout)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
		assert.Equal(t, "https://shop.example", cfg.FrontendURL)
		assert.Equal(t, "BRL", cfg.Currency)
		assert.Equal(t, "mercadopago", cfg.PaymentProvider)
		assert.Equal(t, 5*time.Second, cfg.PaymentTimeout)
		assert.Equal(t, "APP_USR-1", cfg.MercadoPagoAccessToken)
		assert.Equal(t, "smtp.example", cfg.SMTPHost)
		assert.Equal(t, 2525, cfg.SMTPPort)
		assert.Equal(t, "shop@example", cfg.MailFrom)
		assert.Equal(t, "incidents", cfg.S3Bucket)
		assert.Equal(t, 20*time.Minute, cfg.StaleChargeAfter)

		// untouched by the file
		assert.Equal(t, "visa", cfg.MercadoPagoMethodID)
		assert.Equal(t, time.Minute, cfg.SweepInterval)
	})

	t.Run("no config flag leaves config unchanged", func(t *testing.T) {
		cfg := &Config{SecretKey: "key", SessionTTL: time.Minute}
		parseJson(cfg, []string{"-a", ":1"})

		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, time.Minute, cfg.SessionTTL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}
