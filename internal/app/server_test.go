//go:build !integration

package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name             string
		requestTimeout   time.Duration
		opts             []ServerOption
		wantWriteTimeout time.Duration
		wantShutdown     time.Duration
	}{
		{
			name:             "defaults",
			wantWriteTimeout: 15 * time.Second,
			wantShutdown:     10 * time.Second,
		},
		{
			name:             "write timeout follows the request timeout",
			requestTimeout:   45 * time.Second,
			wantWriteTimeout: 60 * time.Second,
			wantShutdown:     10 * time.Second,
		},
		{
			name:             "custom shutdown timeout",
			opts:             []ServerOption{WithShutdownTimeout(3 * time.Second)},
			wantWriteTimeout: 15 * time.Second,
			wantShutdown:     3 * time.Second,
		},
		{
			name:             "non-positive shutdown timeout is ignored",
			opts:             []ServerOption{WithShutdownTimeout(0)},
			wantWriteTimeout: 15 * time.Second,
			wantShutdown:     10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), "8080", tt.requestTimeout, tt.opts...)

			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, tt.wantWriteTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, tt.wantShutdown, server.shutdownTimeout)
		})
	}
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(okHandler(), "0", 0)
	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() { errChan <- server.serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	server := NewServer(okHandler(), "invalid-port", 0)

	err := server.Run(context.Background())

	assert.Error(t, err)
}

func TestServer_Shutdown_Idle(t *testing.T) {
	server := NewServer(okHandler(), "0", 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(ctx))
}
