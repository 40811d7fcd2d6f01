package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDetail(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		challenge string
	}{
		{name: "unauthorized carries challenge", status: http.StatusUnauthorized, challenge: "Bearer"},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "too many requests", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteDetail(rr, tt.status, "nope")

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.challenge, rr.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"detail":"nope"}`, rr.Body.String())
		})
	}
}
