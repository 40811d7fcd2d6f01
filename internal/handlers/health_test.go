package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody string
	}{
		{name: "healthy", expectedCode: http.StatusOK, expectedBody: `{"status":"healthy"}`},
		{name: "database down", pingErr: errors.New("refused"), expectedCode: http.StatusServiceUnavailable, expectedBody: `{"status":"unhealthy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := NewMockPinger(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rr := httptest.NewRecorder()
			NewHealthHandler(db).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Car Rental API"}`, rr.Body.String())
}
