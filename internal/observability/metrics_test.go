package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/login", "POST", 200, 20*time.Millisecond)
	m.RecordError("/login", "POST", "INVALID_CREDENTIALS")
	m.RecordAuthEvent("login_failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("/login", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorCount.WithLabelValues("/login", "POST", "INVALID_CREDENTIALS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authEvents.WithLabelValues("login_failed")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordAuthEvent("x")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordAuthEvent("login_succeeded")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `identity_auth_events_total{type="login_succeeded"} 1`)
}
