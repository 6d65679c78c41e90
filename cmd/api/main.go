// Package main provides the entry point for the Kubernetes test application
// @title Kubernetes Test Application API
// @version 1.0
// @description Diagnostic service reporting host, platform and pod metadata.
// @host localhost:5000
// @BasePath /
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"podinfo/internal/api/server"
	"podinfo/internal/config"
	"podinfo/internal/sysinfo"

	"github.com/gin-gonic/gin"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", config.DefaultEnvFile, "Path to env file")
	flag.Parse()

	// Load environment file; only an explicitly requested file must exist
	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("%v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.API.GinMode)

	collector := sysinfo.NewCollector(cfg.Info.DNSTimeout)
	srv := server.New(cfg, collector)

	// Stop on interrupt or termination
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
