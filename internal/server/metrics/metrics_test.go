package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ObserveLogin(LoginSuccess)
	a.ObserveLogin(LoginSuccess)
	b.ObserveLogin(LoginInvalidCredentials)

	assert.Equal(t, 2.0, testutil.ToFloat64(a.LoginAttempts.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.LoginAttempts.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.LoginAttempts.WithLabelValues(LoginInvalidCredentials)))
}

func TestObserveRegistryLoad(t *testing.T) {
	m := New()
	m.ObserveRegistryLoad(12, 3)
	assert.Equal(t, 12.0, testutil.ToFloat64(m.RegistryEntities))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RegistrySkippedRows))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.Registrations.Inc()
	m.ObserveRPC("/came.Portal/Login", "OK", time.Now())

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "came_registrations_total 1")
	assert.Contains(t, text, `came_grpc_requests_total{code="OK",method="/came.Portal/Login"} 1`)
	assert.Contains(t, text, "go_goroutines")
}
