package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialposts/internal/metrics"
)

func newMetricsApp(m *metrics.Metrics) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/posts/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "0" {
			return fiber.ErrNotFound
		}
		return c.SendString("ok")
	})
	app.Get("/metrics", m.Handler())
	return app
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	m := metrics.New()
	app := newMetricsApp(m)

	for _, path := range []string{"/posts/1", "/posts/2", "/posts/0"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per status")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/posts/:id",status="200"} 2`)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/posts/:id",status="404"} 1`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
}

func TestMiddleware_ErrorStatusReachesClient(t *testing.T) {
	app := newMetricsApp(metrics.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/0", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
