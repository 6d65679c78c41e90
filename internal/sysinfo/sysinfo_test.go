package sysinfo

import (
	"context"
	"errors"
	"net"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	addrs []net.IPAddr
	err   error
	host  string
}

func (r *fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	r.host = host
	return r.addrs, r.err
}

func newTestCollector(env map[string]string, resolver Resolver) *Collector {
	return &Collector{
		hostname: func() (string, error) { return "web-7fbc", nil },
		resolver: resolver,
		getenv:   func(k string) string { return env[k] },
		now:      time.Now,
		platform: func() string { return "Linux-6.1.0-x86_64" },
	}
}

func ipAddrs(ips ...string) []net.IPAddr {
	out := make([]net.IPAddr, 0, len(ips))
	for _, ip := range ips {
		out = append(out, net.IPAddr{IP: net.ParseIP(ip)})
	}
	return out
}

func TestCollector_Collect(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		wantPod       string
		wantNode      string
		wantNamespace string
	}{
		{
			name:          "Defaults outside Kubernetes",
			env:           map[string]string{},
			wantPod:       NotInKubernetes,
			wantNode:      NotInKubernetes,
			wantNamespace: DefaultNamespace,
		},
		{
			name: "Downward API values",
			env: map[string]string{
				EnvPodName:      "web-7fbc",
				EnvNodeName:     "node-1",
				EnvPodNamespace: "prod",
			},
			wantPod:       "web-7fbc",
			wantNode:      "node-1",
			wantNamespace: "prod",
		},
		{
			name:          "Partial environment",
			env:           map[string]string{EnvPodNamespace: "staging"},
			wantPod:       NotInKubernetes,
			wantNode:      NotInKubernetes,
			wantNamespace: "staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{addrs: ipAddrs("10.244.1.17")}
			c := newTestCollector(tt.env, resolver)

			info, err := c.Collect(context.Background())
			require.NoError(t, err)

			assert.Equal(t, "web-7fbc", resolver.host)
			assert.Equal(t, "web-7fbc", info.Hostname)
			assert.Equal(t, "10.244.1.17", info.IPAddress)
			assert.Equal(t, "Linux-6.1.0-x86_64", info.Platform)
			assert.Equal(t, runtime.Version(), info.RuntimeVersion)
			assert.Equal(t, tt.wantPod, info.PodName)
			assert.Equal(t, tt.wantNode, info.NodeName)
			assert.Equal(t, tt.wantNamespace, info.Namespace)
		})
	}
}

func TestCollector_ReadsEnvironmentPerCall(t *testing.T) {
	env := map[string]string{}
	c := newTestCollector(env, &fakeResolver{addrs: ipAddrs("127.0.0.1")})

	first, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, NotInKubernetes, first.PodName)

	env[EnvPodName] = "web-7fbc"
	second, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, "web-7fbc", second.PodName)
}

func TestCollector_AddressSelection(t *testing.T) {
	tests := []struct {
		name  string
		addrs []net.IPAddr
		want  string
	}{
		{name: "Prefers IPv4", addrs: ipAddrs("fd00::1", "10.0.0.5"), want: "10.0.0.5"},
		{name: "IPv6 only", addrs: ipAddrs("fd00::1"), want: "fd00::1"},
		{name: "First IPv4 wins", addrs: ipAddrs("10.0.0.5", "10.0.0.6"), want: "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollector(nil, &fakeResolver{addrs: tt.addrs})
			info, err := c.Collect(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, info.IPAddress)
		})
	}
}

func TestCollector_Errors(t *testing.T) {
	t.Run("Hostname failure", func(t *testing.T) {
		c := newTestCollector(nil, &fakeResolver{addrs: ipAddrs("127.0.0.1")})
		c.hostname = func() (string, error) { return "", errors.New("boom") }

		_, err := c.Collect(context.Background())
		require.ErrorIs(t, err, ErrHostname)
	})

	t.Run("Resolution failure", func(t *testing.T) {
		c := newTestCollector(nil, &fakeResolver{err: &net.DNSError{Err: "no such host", Name: "web-7fbc", IsNotFound: true}})

		_, err := c.Collect(context.Background())
		require.ErrorIs(t, err, ErrResolve)
		require.Contains(t, err.Error(), "web-7fbc")
	})

	t.Run("No addresses", func(t *testing.T) {
		c := newTestCollector(nil, &fakeResolver{})

		_, err := c.Collect(context.Background())
		require.ErrorIs(t, err, ErrResolve)
	})
}

func TestCollector_CurrentTime(t *testing.T) {
	c := newTestCollector(nil, &fakeResolver{addrs: ipAddrs("127.0.0.1")})

	first, err := c.Collect(context.Background())
	require.NoError(t, err)
	second, err := c.Collect(context.Background())
	require.NoError(t, err)

	t1, err := time.Parse(time.RFC3339Nano, first.CurrentTime)
	require.NoError(t, err)
	t2, err := time.Parse(time.RFC3339Nano, second.CurrentTime)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(first.CurrentTime, "Z"), "expected UTC timestamp, got %s", first.CurrentTime)
	assert.False(t, t2.Before(t1), "current_time went backwards: %s then %s", t1, t2)
}

func TestPlatform(t *testing.T) {
	p := Platform()
	require.NotEmpty(t, p)
	require.Contains(t, strings.ToLower(p), runtime.GOOS)
}
