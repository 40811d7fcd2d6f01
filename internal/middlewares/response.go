package middlewares

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error detail
	// default: Car not found
	Detail string `json:"detail"`
}

// WriteDetail writes an error body. Every 401 carries the Bearer challenge.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}
