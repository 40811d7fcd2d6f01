package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

const carColumns = `
	id, host_id,
	name, model, body_type, year, description,
	seats, fuel_type, transmission, color, mileage, features,
	daily_rate, weekly_rate, monthly_rate, min_rental_days, max_rental_days, min_age_requirement, rules,
	location_name, latitude, longitude,
	is_complete, created_at, updated_at`

// CarRepository stores car listings.
type CarRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CarRepository {
	return &CarRepository{db: db, txGetter: txGetter}
}

// Create inserts an incomplete car holding only the basics.
func (r *CarRepository) Create(ctx context.Context, hostID int64, basics models.CarBasics) (*models.CarDB, error) {
	query := `
		INSERT INTO cars (host_id, name, model, body_type, year, description, is_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING ` + carColumns

	args := []any{hostID, basics.Name, basics.Model, basics.BodyType, basics.Year, basics.Description}
	return r.getOne(ctx, query, args...)
}

// GetByID returns the car, or nil if it does not exist.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*models.CarDB, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *CarRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.CarDB, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

// UpdateSpecs overwrites the technical specs group.
func (r *CarRepository) UpdateSpecs(ctx context.Context, id int64, specs models.CarSpecs) (*models.CarDB, error) {
	features, err := models.EncodeFeatures(specs.Features)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE cars
		SET seats = $2, fuel_type = $3, transmission = $4, color = $5, mileage = $6, features = $7,
		    updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING ` + carColumns

	args := []any{id, specs.Seats, specs.FuelType, specs.Transmission, specs.Color, specs.Mileage, features}
	return r.getOne(ctx, query, args...)
}

// UpdatePricing overwrites the pricing and rules group.
func (r *CarRepository) UpdatePricing(ctx context.Context, id int64, pricing models.CarPricing) (*models.CarDB, error) {
	query := `
		UPDATE cars
		SET daily_rate = $2, weekly_rate = $3, monthly_rate = $4,
		    min_rental_days = $5, max_rental_days = $6, min_age_requirement = $7, rules = $8,
		    updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING ` + carColumns

	args := []any{
		id, pricing.DailyRate, pricing.WeeklyRate, pricing.MonthlyRate,
		pricing.MinRentalDays, pricing.MaxRentalDays, pricing.MinAgeRequirement, pricing.Rules,
	}
	return r.getOne(ctx, query, args...)
}

// UpdateLocation stores the location, clearing the other representation,
// and marks the car complete.
func (r *CarRepository) UpdateLocation(ctx context.Context, id int64, location models.CarLocation) (*models.CarDB, error) {
	query := `
		UPDATE cars
		SET location_name = $2, latitude = $3, longitude = $4,
		    is_complete = TRUE, updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING ` + carColumns

	var args []any
	if location.LocationName != nil && *location.LocationName != "" {
		args = []any{id, location.LocationName, nil, nil}
	} else {
		args = []any{id, nil, location.Latitude, location.Longitude}
	}
	return r.getOne(ctx, query, args...)
}

// List returns a page of all cars, complete or not, ordered by id.
func (r *CarRepository) List(ctx context.Context, skip, limit int) ([]models.CarDB, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY id LIMIT $1 OFFSET $2`
	return r.selectMany(ctx, query, limit, skip)
}

// ListByHost returns every car owned by the host, ordered by id.
func (r *CarRepository) ListByHost(ctx context.Context, hostID int64) ([]models.CarDB, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE host_id = $1 ORDER BY id`
	return r.selectMany(ctx, query, hostID)
}

func (r *CarRepository) getOne(ctx context.Context, query string, args ...any) (*models.CarDB, error) {
	var car models.CarDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &car, query, args...)

	logQuery(query, args, car.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.CarDB, error) {
	cars := []models.CarDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &cars, query, args...)

	logQuery(query, args, len(cars), err)

	if err != nil {
		return nil, err
	}
	return cars, nil
}
