package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv_Defaults tests that an empty environment yields the documented defaults
func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"API_HOST", "API_PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT_SECONDS", "ENABLE_SWAGGER",
		"DNS_TIMEOUT_MS", "COMPRESSION_MIN_LENGTH", "COMPRESSION_LEVEL", "CORS_ALLOWED_ORIGINS",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "RATE_LIMIT_BURST",
		"RATE_LIMIT_ENABLED", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, Default(), cfg)
	require.Equal(t, "0.0.0.0:5000", cfg.API.Addr())
	require.True(t, cfg.CORS.AllowAllOrigins())
	require.False(t, cfg.RateLimit.Enabled)
	require.Empty(t, cfg.API.TrustedProxies)
}

// TestLoadFromEnv tests loading configuration from an env file
func TestLoadFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env.test")
	content := "API_PORT=8081\n" +
		"API_HOST=127.0.0.1\n" +
		"GIN_MODE=test\n" +
		"DNS_TIMEOUT_MS=250\n" +
		"CORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n" +
		"RATE_LIMIT_REQUESTS=10\n" +
		"ENABLE_SWAGGER=false\n" +
		"RATE_LIMIT_ENABLED=true\n" +
		"TRUSTED_PROXIES=10.0.0.0/8,192.168.1.10\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	env, err := godotenv.Read(envFile)
	require.NoError(t, err)
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "127.0.0.1:8081", cfg.API.Addr())
	require.Equal(t, "test", cfg.API.GinMode)
	require.False(t, cfg.API.EnableSwagger)
	require.Equal(t, 250*time.Millisecond, cfg.Info.DNSTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.CORS.AllowAllOrigins())
	require.Equal(t, 10, cfg.RateLimit.Requests)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.API.TrustedProxies)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "API_PORT", value: "70000"},
		{name: "port not numeric", key: "API_PORT", value: "http"},
		{name: "unknown gin mode", key: "GIN_MODE", value: "verbose"},
		{name: "compression level", key: "COMPRESSION_LEVEL", value: "11"},
		{name: "zero rate window", key: "RATE_LIMIT_WINDOW", value: "0"},
		{name: "malformed origin", key: "CORS_ALLOWED_ORIGINS", value: "dashboard"},
		{name: "malformed trusted proxy", key: "TRUSTED_PROXIES", value: "ingress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg := &Config{}
			err := cfg.LoadFromEnv()
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "PODINFO_ENV_FILE_TEST_KEY"
	t.Cleanup(func() { os.Unsetenv(key) })

	t.Run("Explicit file is loaded", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(envFile, []byte(key+"=loaded\n"), 0o600))

		require.NoError(t, LoadEnvFile(envFile))
		require.Equal(t, "loaded", os.Getenv(key))
	})

	t.Run("Explicit missing file fails", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.env")

		err := LoadEnvFile(missing)
		require.Error(t, err)
		require.Contains(t, err.Error(), missing)
	})

	t.Run("Missing default file is ignored", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		require.NoError(t, LoadEnvFile(DefaultEnvFile))
	})

	t.Run("Malformed default file fails", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, DefaultEnvFile), 0o700))
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		require.Error(t, LoadEnvFile(DefaultEnvFile))
	})
}
