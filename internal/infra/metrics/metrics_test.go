package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	m := New()

	m.ObserveOperation("wallet.debit", service.OutcomeOK)
	m.ObserveOperation("wallet.debit", service.OutcomeOK)
	m.ObserveOperation("wallet.debit", "INSUFFICIENT_FUNDS")

	assert.InDelta(t, 2, testutil.ToFloat64(m.operations.WithLabelValues("wallet.debit", service.OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("wallet.debit", "INSUFFICIENT_FUNDS")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveOperation("promo.redeem", "PROMO_CODE_EXPIRED")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `shop_ledger_operations_total{operation="promo.redeem",outcome="PROMO_CODE_EXPIRED"} 1`)
}

func TestNewRecorder(t *testing.T) {
	m := New()

	assert.Equal(t, service.NoopMetrics, NewRecorder(&config.Config{}, m))
	assert.Equal(t, service.NoopMetrics, NewRecorder(&config.Config{Metrics: &config.MetricsConfig{}}, m))
	assert.Same(t, m, NewRecorder(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}, m))
}
