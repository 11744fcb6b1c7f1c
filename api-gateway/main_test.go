package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qrmenu-platform/api-gateway/internal/gateway"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler_CORS(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: "http://menu-svc"}, nil)
	handler := newHandler(gw, []string{"https://app.khadyam.in"})

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origin: "https://app.khadyam.in", wantHeader: "https://app.khadyam.in"},
		{name: "other origin", origin: "https://evil.example", wantHeader: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/restaurants", nil)
			req.Header.Set("Origin", testCase.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantHeader, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewHandler_Health(t *testing.T) {
	handler := newHandler(gateway.NewGateway(gateway.Config{}, nil), []string{"*"})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "api-gateway")
}
