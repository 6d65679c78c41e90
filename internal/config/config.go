// Package config loads the service configuration from the environment
package config

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"podinfo/internal/validation"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no env file is requested; it may be absent
const DefaultEnvFile = ".env"

// Config represents the application configuration
type Config struct {
	// API contains HTTP server configuration
	API APIConfig
	// Info contains settings for the /info endpoint
	Info InfoConfig
	// Compression contains response compression settings
	Compression CompressionConfig
	// CORS contains cross-origin settings
	CORS CORSConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Enabled  bool // Off unless RATE_LIMIT_ENABLED is set
		Requests int `validate:"gt=0"` // Number of requests allowed per window
		Window   int `validate:"gt=0"` // Time window in seconds
		Burst    int `validate:"gt=0"` // Maximum burst size
	}
}

// APIConfig contains API server settings
type APIConfig struct {
	// Host is the interface to bind, empty or 0.0.0.0 for all interfaces
	Host string
	// Port is the server port to listen on
	Port string `validate:"required,tcpport"`
	// GinMode is one of debug, release or test
	GinMode string `validate:"oneof=debug release test"`
	// ShutdownTimeout bounds how long in-flight requests may run after a stop signal
	ShutdownTimeout time.Duration `validate:"gt=0"`
	// EnableSwagger mounts the API documentation under /swagger
	EnableSwagger bool
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honored.
	// Empty means the client IP is always the peer address.
	TrustedProxies []string `validate:"dive,ip|cidr"`
}

// InfoConfig contains settings for host introspection
type InfoConfig struct {
	// DNSTimeout bounds the hostname lookup done for every /info request
	DNSTimeout time.Duration `validate:"gt=0"`
}

// CompressionConfig contains gzip settings for responses
type CompressionConfig struct {
	// MinLength is the smallest body size that gets compressed
	MinLength int `validate:"gte=0"`
	// Level is the gzip level, -1 selects the library default
	Level int `validate:"gte=-1,lte=9"`
}

// CORSConfig contains cross-origin settings
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API, "*" allows all
	AllowedOrigins []string `validate:"min=1,dive,eq=*|http_url"`
}

// Addr returns the listen address for the HTTP server
func (a APIConfig) Addr() string {
	return a.Host + ":" + a.Port
}

// AllowAllOrigins reports whether the wildcard origin is configured
func (c CORSConfig) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Host:            getEnvOrDefault("API_HOST", "0.0.0.0"),
		Port:            getEnvOrDefault("API_PORT", "5000"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		EnableSwagger:   getEnvAsBool("ENABLE_SWAGGER", true),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
	}
	c.Info = InfoConfig{
		DNSTimeout: time.Duration(getEnvAsInt("DNS_TIMEOUT_MS", 2000)) * time.Millisecond,
	}
	c.Compression = CompressionConfig{
		MinLength: getEnvAsInt("COMPRESSION_MIN_LENGTH", 1024),
		Level:     getEnvAsInt("COMPRESSION_LEVEL", gzip.DefaultCompression),
	}
	c.CORS = CORSConfig{
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	// Load rate limit configuration
	c.RateLimit.Enabled = getEnvAsBool("RATE_LIMIT_ENABLED", false)
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadEnvFile loads variables from path into the process environment without
// overriding ones already set. A missing DefaultEnvFile is not an error; any
// other missing or unreadable file is.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if path == DefaultEnvFile && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// Default returns a configuration built only from defaults
func Default() *Config {
	cfg := &Config{}
	cfg.API = APIConfig{
		Host:            "0.0.0.0",
		Port:            "5000",
		GinMode:         "release",
		ShutdownTimeout: 5 * time.Second,
		EnableSwagger:   true,
	}
	cfg.Info.DNSTimeout = 2 * time.Second
	cfg.Compression = CompressionConfig{MinLength: 1024, Level: gzip.DefaultCompression}
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Window = 60
	cfg.RateLimit.Burst = 50
	return cfg
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
