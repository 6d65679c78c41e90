// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"podinfo/internal/api/middleware"
	"podinfo/internal/api/routes"
	"podinfo/internal/config"
	"podinfo/internal/models"

	"github.com/gin-gonic/gin"
)

// StubCollector returns a canned Info or error
type StubCollector struct {
	Info  *models.Info
	Err   error
	calls atomic.Int64
}

// Collect implements handlers.InfoCollector
func (s *StubCollector) Collect(_ context.Context) (*models.Info, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	info := *s.Info
	return &info, nil
}

// Calls returns how many times Collect ran
func (s *StubCollector) Calls() int {
	return int(s.calls.Load())
}

// SampleInfo returns an Info as a pod named web-7fbc on node-1 in prod would report it
func SampleInfo() *models.Info {
	return &models.Info{
		Hostname:       "web-7fbc",
		IPAddress:      "10.244.1.17",
		Platform:       "Linux-6.1.0-x86_64",
		RuntimeVersion: "go1.23.3",
		CurrentTime:    "2024-03-20T13:00:00.123456789Z",
		PodName:        "web-7fbc",
		NodeName:       "node-1",
		Namespace:      "prod",
	}
}

// TestConfig returns the default configuration adjusted for tests
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.API.GinMode = gin.TestMode
	return cfg
}

// TestContext holds common test dependencies
type TestContext struct {
	T         *testing.T
	Config    *config.Config
	Collector *StubCollector
	Router    *gin.Engine
}

// NewTestContext creates a router wired like production but backed by a StubCollector.
// cfg may be nil to use TestConfig.
func NewTestContext(t *testing.T, cfg *config.Config) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = TestConfig()
	}
	collector := &StubCollector{Info: SampleInfo()}

	return &TestContext{
		T:         t,
		Config:    cfg,
		Collector: collector,
		Router:    routes.SetupRoutes(cfg, collector, middleware.NewRateLimiter(cfg)),
	}
}

// Do performs a request against the router and returns the recorded response
func (tc *TestContext) Do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	tc.T.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	tc.Router.ServeHTTP(w, req)
	return w
}

// Get is shorthand for Do with GET and no headers
func (tc *TestContext) Get(path string) *httptest.ResponseRecorder {
	tc.T.Helper()
	return tc.Do(http.MethodGet, path, nil)
}
