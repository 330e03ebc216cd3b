package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/internal/infrastructure/metrics"
)

func TestRecorder_CuentaResultados(t *testing.T) {
	r := metrics.NewRecorder("banco")
	r.ObserveMovement("output", "success", 5*time.Millisecond)
	r.ObserveMovement("output", "success", 7*time.Millisecond)
	r.ObserveMovement("output", "insufficient_stock", time.Millisecond)

	expected := `
# HELP banco_stock_movements_total Operaciones de stock por tipo y resultado.
# TYPE banco_stock_movements_total counter
banco_stock_movements_total{operation="output",outcome="insufficient_stock"} 1
banco_stock_movements_total{operation="output",outcome="success"} 2
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "banco_stock_movements_total"))
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder("banco")
	r.ObserveMovement("input", "success", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `banco_stock_movement_duration_seconds_count{operation="input"} 1`)
}
