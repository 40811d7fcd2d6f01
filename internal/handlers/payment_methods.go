package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

//go:generate mockgen -source=payment_methods.go -destination=payment_methods_mock.go -package=handlers

// PaymentMethodManager defines the payment method operations of a host.
type PaymentMethodManager interface {
	AddMpesa(ctx context.Context, hostID int64, number string, isDefault bool) (*models.PaymentMethodDB, error)
	AddCard(ctx context.Context, hostID int64, card models.CardInput) (*models.PaymentMethodDB, error)
	SetDefault(ctx context.Context, hostID, id int64) (*models.PaymentMethodDB, error)
	Delete(ctx context.Context, hostID, id int64) error
	Get(ctx context.Context, hostID, id int64) (*models.PaymentMethodDB, error)
	List(ctx context.Context, hostID int64) ([]models.PaymentMethodDB, error)
}

// MpesaRequest is the body for adding an M-Pesa number
// swagger:model MpesaRequest
type MpesaRequest struct {
	// 9 to 15 digits
	// default: 254712345678
	MpesaNumber string `json:"mpesa_number"`
	IsDefault   bool   `json:"is_default"`
}

// CardRequest is the body for adding a card
// swagger:model CardRequest
type CardRequest struct {
	// 16 digits, spaces and dashes allowed
	// default: 4111 1111 1111 1111
	CardNumber string `json:"card_number"`
	// default: 123
	CVC         string `json:"cvc"`
	ExpiryMonth *int   `json:"expiry_month"`
	ExpiryYear  *int   `json:"expiry_year"`
	// visa or mastercard
	// default: visa
	CardType  string `json:"card_type"`
	IsDefault bool   `json:"is_default"`
}

// PaymentMethodResponse never contains the card number or CVC
// swagger:model PaymentMethodResponse
type PaymentMethodResponse struct {
	ID           int64                    `json:"id"`
	HostID       int64                    `json:"host_id"`
	MethodType   models.PaymentMethodType `json:"method_type"`
	MpesaNumber  *string                  `json:"mpesa_number"`
	CardLastFour *string                  `json:"card_last_four"`
	CardType     *string                  `json:"card_type"`
	ExpiryMonth  *int                     `json:"expiry_month"`
	ExpiryYear   *int                     `json:"expiry_year"`
	IsDefault    bool                     `json:"is_default"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// PaymentMethodListResponse wraps the host's payment methods
// swagger:model PaymentMethodListResponse
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

func newPaymentMethodResponse(m *models.PaymentMethodDB) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:           m.ID,
		HostID:       m.HostID,
		MethodType:   m.MethodType,
		MpesaNumber:  m.MpesaNumber,
		CardLastFour: m.CardLastFour,
		CardType:     m.CardType,
		ExpiryMonth:  m.ExpiryMonth,
		ExpiryYear:   m.ExpiryYear,
		IsDefault:    m.IsDefault,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewAddMpesaHandler returns an HTTP handler adding an M-Pesa method.
// @Summary Add M-Pesa payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.MpesaRequest true "M-Pesa number"
// @Success 201 {object} handlers.PaymentMethodResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /host/payment-methods/mpesa [post]
func NewAddMpesaHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		var req MpesaRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		method, err := svc.AddMpesa(r.Context(), host.ID, req.MpesaNumber, req.IsDefault)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newPaymentMethodResponse(method))
	}
}

// NewAddCardHandler returns an HTTP handler adding a card.
// @Summary Add card payment method
// @Description Stores only hashes of the card number and CVC plus the last four digits
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.CardRequest true "Card"
// @Success 201 {object} handlers.PaymentMethodResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /host/payment-methods/card [post]
func NewAddCardHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		var req CardRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := requireFields(
			requiredField{"expiry_month", req.ExpiryMonth != nil},
			requiredField{"expiry_year", req.ExpiryYear != nil},
		); err != nil {
			writeError(w, r, err)
			return
		}

		method, err := svc.AddCard(r.Context(), host.ID, models.CardInput{
			CardNumber:  req.CardNumber,
			CVC:         req.CVC,
			ExpiryMonth: *req.ExpiryMonth,
			ExpiryYear:  *req.ExpiryYear,
			CardType:    req.CardType,
			IsDefault:   req.IsDefault,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newPaymentMethodResponse(method))
	}
}

// NewListPaymentMethodsHandler returns an HTTP handler listing the host's methods.
// @Summary List payment methods
// @Description Default first, then newest first
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PaymentMethodListResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Router /host/payment-methods [get]
func NewListPaymentMethodsHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		methods, err := svc.List(r.Context(), host.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := PaymentMethodListResponse{PaymentMethods: make([]PaymentMethodResponse, 0, len(methods))}
		for i := range methods {
			resp.PaymentMethods = append(resp.PaymentMethods, newPaymentMethodResponse(&methods[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetPaymentMethodHandler returns an HTTP handler reading one method.
// @Summary Get a payment method
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment method ID"
// @Success 200 {object} handlers.PaymentMethodResponse
// @Failure 404 {object} middlewares.ErrorResponse "Payment method not found"
// @Router /host/payment-methods/{id} [get]
func NewGetPaymentMethodHandler(svc PaymentMethodManager) http.HandlerFunc {
	return paymentMethodHandler(http.StatusOK, svc.Get)
}

// NewSetDefaultPaymentMethodHandler returns an HTTP handler switching the default.
// @Summary Make a payment method the default
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment method ID"
// @Success 200 {object} handlers.PaymentMethodResponse
// @Failure 404 {object} middlewares.ErrorResponse "Payment method not found"
// @Router /host/payment-methods/{id}/default [put]
func NewSetDefaultPaymentMethodHandler(svc PaymentMethodManager) http.HandlerFunc {
	return paymentMethodHandler(http.StatusOK, svc.SetDefault)
}

// NewDeletePaymentMethodHandler returns an HTTP handler deleting a method.
// Deleting the default does not promote another method.
// @Summary Delete a payment method
// @Tags payment-methods
// @Security BearerAuth
// @Param id path int true "Payment method ID"
// @Success 204
// @Failure 404 {object} middlewares.ErrorResponse "Payment method not found"
// @Router /host/payment-methods/{id} [delete]
func NewDeletePaymentMethodHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), host.ID, id); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func paymentMethodHandler(status int, op func(ctx context.Context, hostID, id int64) (*models.PaymentMethodDB, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		method, err := op(r.Context(), host.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, status, newPaymentMethodResponse(method))
	}
}
