package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
	"github.com/Spok95/fuc-warehouse/internal/infra/metrics"
)

type stubSource struct{}

func (stubSource) ListMaterials() []materials.Record {
	return []materials.Record{{MaterialID: "M001", Name: materials.KindMainBoard, Quantity: 1, Status: materials.StatusNormal}}
}

func (stubSource) ListShipments() []shipments.Record {
	return []shipments.Record{{ID: "SHP-001", SerialNumber: "SN0001", ShipmentDate: time.Now(), Operator: "wang"}}
}

func newTestServer(t *testing.T, exposeMetrics bool) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.Command("ship_product", "ok")

	s := New(":0", exposeMetrics, reg, stubSource{}, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t, true)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	off := newTestServer(t, false)
	resp2, err := http.Get(off.URL + "/metrics")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestExports(t *testing.T) {
	ts := newTestServer(t, false)

	for _, path := range []string{"/export/shipments.xlsx", "/export/materials.xlsx"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"), path)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx", path)
		_ = resp.Body.Close()
	}

	resp, err := http.Post(ts.URL+"/export/shipments.xlsx", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
