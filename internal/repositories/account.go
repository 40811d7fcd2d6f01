package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

const (
	hostColumns   = `id, full_name, email, password_hash, bio, NULL::TEXT AS fun_fact, mobile_number, id_number, created_at, updated_at`
	clientColumns = `id, full_name, email, password_hash, bio, fun_fact, mobile_number, id_number, created_at, updated_at`
)

// AccountRepository reads and writes accounts of one role. Hosts and
// clients live in separate tables with the same core columns.
type AccountRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	table    string
	columns  string
	profile  string
}

// NewHostRepository creates an AccountRepository over the hosts table.
func NewHostRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountRepository {
	return &AccountRepository{
		db:       db,
		txGetter: txGetter,
		table:    "hosts",
		columns:  hostColumns,
		profile: `bio = COALESCE($2, bio),
		          mobile_number = COALESCE($3, mobile_number),
		          id_number = COALESCE($4, id_number)`,
	}
}

// NewClientRepository creates an AccountRepository over the clients table.
func NewClientRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountRepository {
	return &AccountRepository{
		db:       db,
		txGetter: txGetter,
		table:    "clients",
		columns:  clientColumns,
		profile: `bio = COALESCE($2, bio),
		          mobile_number = COALESCE($3, mobile_number),
		          id_number = COALESCE($4, id_number),
		          fun_fact = COALESCE($5, fun_fact)`,
	}
}

// GetByEmail returns the account with the given email, or nil if none exists.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = $1 LIMIT 1`, r.columns, r.table)
	return r.get(ctx, query, email)
}

// GetByID returns the account with the given id, or nil if none exists.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.AccountDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns, r.table)
	return r.get(ctx, query, id)
}

func (r *AccountRepository) get(ctx context.Context, query string, args ...any) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, args...)

	logQuery(query, args, account.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Save inserts a new account and returns the stored row.
// A taken email yields ErrDuplicateEmail.
func (r *AccountRepository) Save(ctx context.Context, fullName, email, passwordHash string) (*models.AccountDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (full_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s
	`, r.table, r.columns)

	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, fullName, email, passwordHash)

	// the hash stays out of the log
	logQuery(query, []any{fullName, email}, account.ID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &account, nil
}

// UpdateProfile overwrites the non-nil profile fields and returns the
// updated row, or nil if the account does not exist.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id int64, profile models.AccountProfile) (*models.AccountDB, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, r.table, r.profile, r.columns)

	args := []any{id, profile.Bio, profile.MobileNumber, profile.IDNumber}
	if r.table == "clients" {
		args = append(args, profile.FunFact)
	}

	return r.get(ctx, query, args...)
}
