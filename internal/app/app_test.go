package app_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/app"
	"github.com/SergeyBogomolovv/boba-order-service/internal/config"
	"github.com/SergeyBogomolovv/boba-order-service/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(port string) config.Config {
	return config.Config{
		Env:  "development",
		Http: config.Http{Host: "127.0.0.1", Port: port},
		Cors: config.CORS{AllowedOrigins: []string{"*"}},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplication_Routes(t *testing.T) {
	a := app.New(discardLogger(), testConfig("0"))
	a.SetHTTPHandlers(handler.NewIndexHandler())
	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	t.Run("welcome", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "Boba Order API")
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "boba_service_http_requests_total")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/orders", nil)
		req.Header.Set("Origin", "http://kiosk.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

type stubConsumer struct {
	consumed atomic.Bool
	closed   atomic.Bool
}

func (c *stubConsumer) Consume(ctx context.Context) {
	c.consumed.Store(true)
	<-ctx.Done()
}

func (c *stubConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

func TestApplication_Run(t *testing.T) {
	a := app.New(discardLogger(), testConfig(freePort(t)))
	consumer := &stubConsumer{}
	a.SetConsumers(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, consumer.consumed.Load, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("application did not stop")
	}
	assert.True(t, consumer.closed.Load())
}
