package models

import "time"

// PaymentMethodType enumerates the supported payment instruments.
type PaymentMethodType string

const (
	PaymentMethodMpesa      PaymentMethodType = "mpesa"
	PaymentMethodVisa       PaymentMethodType = "visa"
	PaymentMethodMastercard PaymentMethodType = "mastercard"
)

// PaymentMethodDB represents a payment_methods row. Card numbers and CVCs
// are only ever stored as one-way hashes.
type PaymentMethodDB struct {
	ID             int64             `json:"id" db:"id"`
	HostID         int64             `json:"host_id" db:"host_id"`
	MethodType     PaymentMethodType `json:"method_type" db:"method_type"`
	MpesaNumber    *string           `json:"mpesa_number" db:"mpesa_number"`
	CardNumberHash *string           `json:"-" db:"card_number_hash"`
	CardLastFour   *string           `json:"card_last_four" db:"card_last_four"`
	CardType       *string           `json:"card_type" db:"card_type"`
	ExpiryMonth    *int              `json:"expiry_month" db:"expiry_month"`
	ExpiryYear     *int              `json:"expiry_year" db:"expiry_year"`
	CVCHash        *string           `json:"-" db:"cvc_hash"`
	IsDefault      bool              `json:"is_default" db:"is_default"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// CardInput is a card as submitted by the host.
type CardInput struct {
	CardNumber  string
	CVC         string
	ExpiryMonth int
	ExpiryYear  int
	CardType    string
	IsDefault   bool
}

// CardRecord is the storable form of a card: hashes plus display metadata.
type CardRecord struct {
	MethodType     PaymentMethodType
	CardNumberHash string
	CVCHash        string
	CardLastFour   string
	CardType       string
	ExpiryMonth    int
	ExpiryYear     int
	IsDefault      bool
}
