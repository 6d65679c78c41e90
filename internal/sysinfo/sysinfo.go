// Package sysinfo gathers the host and Kubernetes metadata reported by /info
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"time"

	"podinfo/internal/models"
)

// Environment variables populated by the Kubernetes downward API
const (
	EnvPodName      = "POD_NAME"
	EnvNodeName     = "NODE_NAME"
	EnvPodNamespace = "POD_NAMESPACE"
)

// Fallbacks used when the process is not scheduled by Kubernetes
const (
	NotInKubernetes  = "Not running in Kubernetes"
	DefaultNamespace = "default"
)

var (
	// ErrHostname is returned when the OS cannot report its hostname
	ErrHostname = errors.New("unable to get hostname")
	// ErrResolve is returned when the hostname does not resolve to an address
	ErrResolve = errors.New("unable to resolve hostname")
)

// Resolver looks up the addresses of a host
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Collector builds an Info snapshot from the OS, DNS and environment.
// It holds no per-request state and is safe for concurrent use.
type Collector struct {
	hostname   func() (string, error)
	resolver   Resolver
	getenv     func(string) string
	now        func() time.Time
	platform   func() string
	dnsTimeout time.Duration
}

// NewCollector creates a Collector backed by the real OS and resolver
func NewCollector(dnsTimeout time.Duration) *Collector {
	return &Collector{
		hostname:   os.Hostname,
		resolver:   net.DefaultResolver,
		getenv:     os.Getenv,
		now:        time.Now,
		platform:   Platform,
		dnsTimeout: dnsTimeout,
	}
}

// Collect returns a fresh Info. Environment variables are read on every call.
func (c *Collector) Collect(ctx context.Context) (*models.Info, error) {
	hostname, err := c.hostname()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHostname, err)
	}

	ip, err := c.resolve(ctx, hostname)
	if err != nil {
		return nil, err
	}

	return &models.Info{
		Hostname:       hostname,
		IPAddress:      ip,
		Platform:       c.platform(),
		RuntimeVersion: runtime.Version(),
		CurrentTime:    c.now().UTC().Format(time.RFC3339Nano),
		PodName:        c.envOrDefault(EnvPodName, NotInKubernetes),
		NodeName:       c.envOrDefault(EnvNodeName, NotInKubernetes),
		Namespace:      c.envOrDefault(EnvPodNamespace, DefaultNamespace),
	}, nil
}

// resolve returns the first IPv4 address of host, or the first address when
// the host only has IPv6 records
func (c *Collector) resolve(ctx context.Context, host string) (string, error) {
	if c.dnsTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.dnsTimeout)
		defer cancel()
	}

	addrs, err := c.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrResolve, host, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("%w %q: no addresses", ErrResolve, host)
	}

	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return addrs[0].IP.String(), nil
}

func (c *Collector) envOrDefault(key, defaultVal string) string {
	if v := c.getenv(key); v != "" {
		return v
	}
	return defaultVal
}
