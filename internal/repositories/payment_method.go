package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

const paymentMethodColumns = `
	id, host_id, method_type, mpesa_number,
	card_number_hash, card_last_four, card_type, expiry_month, expiry_year, cvc_hash,
	is_default, created_at, updated_at`

// PaymentMethodRepository stores host payment methods.
type PaymentMethodRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository.
func NewPaymentMethodRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db, txGetter: txGetter}
}

// LockHost takes a row lock on the host so that concurrent default changes
// for the same host are serialized within their transactions.
func (r *PaymentMethodRepository) LockHost(ctx context.Context, hostID int64) error {
	const query = `SELECT id FROM hosts WHERE id = $1 FOR UPDATE`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, hostID)

	logQuery(query, []any{hostID}, id, err)

	return err
}

// ClearDefault unsets is_default on every payment method of the host except
// exceptID (0 excludes nothing) and returns the number of rows changed.
func (r *PaymentMethodRepository) ClearDefault(ctx context.Context, hostID, exceptID int64) (int64, error) {
	const query = `
		UPDATE payment_methods
		SET is_default = FALSE, updated_at = NOW()
		WHERE host_id = $1 AND is_default AND id <> $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, hostID, exceptID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{hostID, exceptID}, rowsAffected, err)

	return rowsAffected, err
}

// CreateMpesa inserts an M-Pesa payment method.
func (r *PaymentMethodRepository) CreateMpesa(ctx context.Context, hostID int64, number string, isDefault bool) (*models.PaymentMethodDB, error) {
	query := `
		INSERT INTO payment_methods (host_id, method_type, mpesa_number, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + paymentMethodColumns

	args := []any{hostID, models.PaymentMethodMpesa, number, isDefault}
	return r.getOne(ctx, query, args, args...)
}

// CreateCard inserts a card payment method from its hashed form.
func (r *PaymentMethodRepository) CreateCard(ctx context.Context, hostID int64, card models.CardRecord) (*models.PaymentMethodDB, error) {
	query := `
		INSERT INTO payment_methods (
			host_id, method_type, card_number_hash, card_last_four, card_type,
			expiry_month, expiry_year, cvc_hash, is_default, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + paymentMethodColumns

	args := []any{
		hostID, card.MethodType, card.CardNumberHash, card.CardLastFour, card.CardType,
		card.ExpiryMonth, card.ExpiryYear, card.CVCHash, card.IsDefault,
	}
	// hashes stay out of the log
	logged := []any{hostID, card.MethodType, card.CardLastFour, card.CardType, card.ExpiryMonth, card.ExpiryYear, card.IsDefault}
	return r.getOne(ctx, query, logged, args...)
}

// GetByIDForHost returns the payment method if it belongs to the host, or nil.
func (r *PaymentMethodRepository) GetByIDForHost(ctx context.Context, id, hostID int64) (*models.PaymentMethodDB, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1 AND host_id = $2`

	args := []any{id, hostID}
	return r.getOne(ctx, query, args, args...)
}

// SetDefault marks the payment method as default and returns it, or nil if
// it does not belong to the host. Other defaults must be cleared first.
func (r *PaymentMethodRepository) SetDefault(ctx context.Context, id, hostID int64) (*models.PaymentMethodDB, error) {
	query := `
		UPDATE payment_methods
		SET is_default = TRUE, updated_at = NOW()
		WHERE id = $1 AND host_id = $2
		RETURNING ` + paymentMethodColumns

	args := []any{id, hostID}
	return r.getOne(ctx, query, args, args...)
}

// Delete removes the payment method and reports whether a row belonging to
// the host was deleted.
func (r *PaymentMethodRepository) Delete(ctx context.Context, id, hostID int64) (bool, error) {
	const query = `DELETE FROM payment_methods WHERE id = $1 AND host_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, hostID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id, hostID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ListByHost returns the host's payment methods, default first, then newest first.
func (r *PaymentMethodRepository) ListByHost(ctx context.Context, hostID int64) ([]models.PaymentMethodDB, error) {
	query := `
		SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE host_id = $1
		ORDER BY is_default DESC, created_at DESC, id DESC
	`

	methods := []models.PaymentMethodDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &methods, query, hostID)

	logQuery(query, []any{hostID}, len(methods), err)

	if err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodRepository) getOne(ctx context.Context, query string, logged []any, args ...any) (*models.PaymentMethodDB, error) {
	var method models.PaymentMethodDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &method, query, args...)

	logQuery(query, logged, method.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}
