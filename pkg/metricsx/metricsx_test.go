package metricsx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsByRoute(t *testing.T) {
	m := New("test")

	h := m.Instrument("GET /v1/clients/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for _, id := range []string{"a", "b", "c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/clients/"+id, nil))
	}

	require.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /v1/clients/{id}", "404")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestObserveRedemption(t *testing.T) {
	m := New("test")
	m.ObserveRedemption(OutcomeRedeemed)
	m.ObserveRedemption(OutcomeRedeemed)
	m.ObserveRedemption(OutcomeExpired)

	require.Equal(t, 2.0, testutil.ToFloat64(m.redemptions.WithLabelValues(OutcomeRedeemed)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.redemptions.WithLabelValues(OutcomeExpired)))

	var nilMetrics *Metrics
	require.NotPanics(t, func() { nilMetrics.ObserveRedemption(OutcomeFault) })
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New("grantstore")
	m.ObserveRedemption(OutcomeNotRedeemable)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `grantstore_authorization_code_redemptions_total{outcome="not_redeemable"} 1`)
}
