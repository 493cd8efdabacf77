package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordHTTPRequest(http.MethodPost, "/api/participants", http.StatusCreated, 25*time.Millisecond)
	m.RecordHTTPRequest(http.MethodPost, "/api/participants", http.StatusConflict, 5*time.Millisecond)
	m.RecordHTTPRequest(http.MethodPost, "/api/participants", http.StatusConflict, 5*time.Millisecond)

	assert.Equal(t, float64(1), getCounterVecValue(t, m.HTTPRequestsTotal, "POST", "/api/participants", "2xx"))
	assert.Equal(t, float64(2), getCounterVecValue(t, m.HTTPRequestsTotal, "POST", "/api/participants", "4xx"))
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("INSERT", "participantes", 5*time.Millisecond, nil)
	m.RecordDBQuery("SELECT", "", 2*time.Millisecond, errors.New("no such table"))
	m.RecordDBQuery("select", "", time.Millisecond, errors.New("no such table"))

	// A clean statement records no error
	assert.Equal(t, float64(0), getCounterVecValue(t, m.DBQueryErrors, "insert", "participantes"))
	// Operations are lowercased and a blank table is bucketed as unknown
	assert.Equal(t, float64(2), getCounterVecValue(t, m.DBQueryErrors, "select", "unknown"))
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{422, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatus(tt.code), "status %d", tt.code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/ready"))
	assert.False(t, ShouldSkipEndpoint("/api/participants"))
	assert.False(t, ShouldSkipEndpoint("/api/activities"))
}

func TestRecordExternalAPICall(t *testing.T) {
	m := getTestMetrics()

	m.RecordExternalAPICall("resend:/emails", "POST", 200, 120*time.Millisecond, nil)
	m.RecordExternalAPICall("resend:/emails", "POST", 429, 80*time.Millisecond, nil)

	assert.Equal(t, float64(1), getCounterVecValue(t, m.ExternalAPIRequestsTotal, "resend:/emails", "POST", "200"))
	assert.Equal(t, float64(1), getCounterVecValue(t, m.ExternalAPIErrors, "resend:/emails", "too_many_requests"))
}

func TestNormalizeEndpoint(t *testing.T) {
	in := "certificados/2025/10/123e4567-e89b-12d3-a456-426614174000.pdf"
	assert.Equal(t, "certificados/2025/10/{id}.pdf", normalizeEndpoint(in))
	assert.Equal(t, "resend:/emails", normalizeEndpoint("resend:/emails"))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		err        error
		want       string
	}{
		{"bad request", 400, nil, "bad_request"},
		{"unauthorized", 401, nil, "unauthorized"},
		{"not found", 404, nil, "not_found"},
		{"rate limited", 429, nil, "too_many_requests"},
		{"other client error", 418, nil, "client_error"},
		{"server error", 500, nil, "internal_server_error"},
		{"bad gateway", 502, nil, "bad_gateway"},
		{"connection refused", 0, errors.New("dial tcp: connection refused"), "connection_refused"},
		{"dns failure", 0, errors.New("lookup api.resend.com: no such host"), "dns_error"},
		{"timeout", 0, errors.New("context deadline exceeded"), "timeout"},
		{"generic network error", 0, errors.New("broken pipe"), "network_error"},
		{"no error no status", 0, nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getErrorType(tt.statusCode, tt.err))
		})
	}
}
