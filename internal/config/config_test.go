package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeKeys(t *testing.T, private *rsa.PrivateKey, pkcs8 bool) (string, string) {
	t.Helper()

	var block *pem.Block
	if pkcs8 {
		der, err := x509.MarshalPKCS8PrivateKey(private)
		require.NoError(t, err)
		block = &pem.Block{Type: "PRIVATE KEY", Bytes: der}
	} else {
		block = &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(private)}
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block)),
		base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER}))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.Equal(t, "lifehub", cfg.JWT.Issuer)
	assert.Equal(t, "Tokyo", cfg.Weather.DefaultCity)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "15m")
	t.Setenv("WEATHER_DEFAULT_CITY", "Osaka")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://lifehub.example, http://localhost:3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_MAX_CONNECTIONS", "not-a-number")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenDuration)
	assert.Equal(t, "Osaka", cfg.Weather.DefaultCity)
	assert.Equal(t, []string{"https://lifehub.example", "http://localhost:3000"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 25, cfg.Database.MaxConnections)
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	private, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	for _, pkcs8 := range []bool{false, true} {
		privateB64, publicB64 := encodeKeys(t, private, pkcs8)
		t.Setenv("JWT_PRIVATE_KEY", privateB64)
		t.Setenv("JWT_PUBLIC_KEY", publicB64)

		cfg, err := Load()

		require.NoError(t, err)
		assert.True(t, private.Equal(cfg.JWT.PrivateKey))
		assert.True(t, private.PublicKey.Equal(cfg.JWT.PublicKey))
	}
}

func TestLoad_RejectsBadKeys(t *testing.T) {
	private, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	other, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privateB64, _ := encodeKeys(t, private, false)
	_, otherPublicB64 := encodeKeys(t, other, false)

	t.Run("mismatched pair", func(t *testing.T) {
		t.Setenv("JWT_PRIVATE_KEY", privateB64)
		t.Setenv("JWT_PUBLIC_KEY", otherPublicB64)

		_, err := Load()
		assert.ErrorContains(t, err, "does not match")
	})

	t.Run("not base64", func(t *testing.T) {
		t.Setenv("JWT_PRIVATE_KEY", "%%%")
		t.Setenv("JWT_PUBLIC_KEY", otherPublicB64)

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_PRIVATE_KEY")
	})

	t.Run("not PEM", func(t *testing.T) {
		t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString([]byte("kakeibo")))
		t.Setenv("JWT_PUBLIC_KEY", otherPublicB64)

		_, err := Load()
		assert.ErrorContains(t, err, "private key")
	})
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()

	assert.ErrorContains(t, err, "must be set in production")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "lifehub", Password: "secret", Name: "lifehub", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=lifehub password=secret dbname=lifehub sslmode=disable", db.DSN())
}
