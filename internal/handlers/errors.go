package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/middlewares"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/services"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

// MessageResponse is a plain message body
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Successfully logged out
	Message string `json:"message"`
}

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, validation.ErrValidation):
		middlewares.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errInvalidBody):
		middlewares.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		middlewares.WriteDetail(w, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrPrincipalNotFound):
		middlewares.WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, services.ErrWrongRole):
		middlewares.WriteDetail(w, http.StatusForbidden, "Not enough permissions")
	case errors.Is(err, services.ErrForbidden):
		middlewares.WriteDetail(w, http.StatusForbidden, "You don't have permission to update this car")
	case errors.Is(err, services.ErrCarNotFound):
		middlewares.WriteDetail(w, http.StatusNotFound, "Car not found")
	case errors.Is(err, services.ErrPaymentMethodNotFound):
		middlewares.WriteDetail(w, http.StatusNotFound, "Payment method not found")
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		middlewares.WriteDetail(w, http.StatusConflict, "Email already registered")
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "err", err)
		middlewares.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidBody
	}
	return nil
}

type requiredField struct {
	name    string
	present bool
}

// requireFields rejects a body that omits any of the given fields. Numeric
// fields decode to zero when absent, so presence is tracked by pointer.
func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if !f.present {
			return fmt.Errorf("%w: %s is required", validation.ErrValidation, f.name)
		}
	}
	return nil
}

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", validation.ErrValidation, name)
	}
	return id, nil
}

// currentAccount returns the account resolved by the auth guard of role.
func currentAccount(w http.ResponseWriter, r *http.Request, role models.Role) (*models.AccountDB, bool) {
	account, ok := middlewares.GetAccountFromContext(r.Context(), role)
	if !ok {
		middlewares.WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
	}
	return account, ok
}
