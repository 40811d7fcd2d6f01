package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

//go:generate mockgen -source=cars.go -destination=cars_mock.go -package=handlers

// CarBasicsCreator starts a car listing.
type CarBasicsCreator interface {
	CreateBasics(ctx context.Context, hostID int64, basics models.CarBasics) (*models.CarDB, error)
}

// CarStageUpdater stores the later listing stages.
type CarStageUpdater interface {
	UpdateSpecs(ctx context.Context, hostID, carID int64, specs models.CarSpecs) (*models.CarDB, error)
	UpdatePricing(ctx context.Context, hostID, carID int64, pricing models.CarPricing) (*models.CarDB, error)
	UpdateLocation(ctx context.Context, hostID, carID int64, location models.CarLocation) (*models.CarDB, error)
}

// CarGetter reads a single car.
type CarGetter interface {
	Get(ctx context.Context, id int64) (*models.CarDB, error)
}

// CarLister lists cars.
type CarLister interface {
	List(ctx context.Context, skip, limit int) ([]models.CarDB, error)
	ListMine(ctx context.Context, hostID int64) ([]models.CarDB, error)
}

// CarBasicsRequest is the body of stage 1
// swagger:model CarBasicsRequest
type CarBasicsRequest struct {
	// default: Weekend Cruiser
	Name string `json:"name"`
	// default: Toyota Corolla
	Model string `json:"model"`
	// default: sedan
	BodyType string `json:"body_type"`
	// default: 2020
	Year *int `json:"year"`
	// default: Clean and reliable
	Description string `json:"description"`
}

// CarSpecsRequest is the body of stage 2
// swagger:model CarSpecsRequest
type CarSpecsRequest struct {
	Seats        *int     `json:"seats"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Color        string   `json:"color"`
	Mileage      *int     `json:"mileage"`
	Features     []string `json:"features"`
}

// CarPricingRequest is the body of stage 3. A max_rental_days of 0 or null
// means no maximum.
// swagger:model CarPricingRequest
type CarPricingRequest struct {
	DailyRate         *float64 `json:"daily_rate"`
	WeeklyRate        *float64 `json:"weekly_rate"`
	MonthlyRate       *float64 `json:"monthly_rate"`
	MinRentalDays     *int     `json:"min_rental_days"`
	MaxRentalDays     *int     `json:"max_rental_days"`
	MinAgeRequirement *int     `json:"min_age_requirement"`
	Rules             string   `json:"rules"`
}

// CarLocationRequest is the body of stage 4: a location name or a
// latitude/longitude pair.
// swagger:model CarLocationRequest
type CarLocationRequest struct {
	LocationName *string  `json:"location_name"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// CarResponse is the public view of a listing, complete or not
// swagger:model CarResponse
type CarResponse struct {
	ID                int64           `json:"id"`
	HostID            int64           `json:"host_id"`
	Name              *string         `json:"name"`
	Model             *string         `json:"model"`
	BodyType          *string         `json:"body_type"`
	Year              *int            `json:"year"`
	Description       *string         `json:"description"`
	Seats             *int            `json:"seats"`
	FuelType          *string         `json:"fuel_type"`
	Transmission      *string         `json:"transmission"`
	Color             *string         `json:"color"`
	Mileage           *int            `json:"mileage"`
	Features          []string        `json:"features"`
	DailyRate         *float64        `json:"daily_rate"`
	WeeklyRate        *float64        `json:"weekly_rate"`
	MonthlyRate       *float64        `json:"monthly_rate"`
	MinRentalDays     *int            `json:"min_rental_days"`
	MaxRentalDays     *int            `json:"max_rental_days"`
	MinAgeRequirement *int            `json:"min_age_requirement"`
	Rules             *string         `json:"rules"`
	LocationName      *string         `json:"location_name"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	IsComplete        bool            `json:"is_complete"`
	State             models.CarState `json:"state"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func newCarResponse(c *models.CarDB) CarResponse {
	return CarResponse{
		ID:                c.ID,
		HostID:            c.HostID,
		Name:              c.Name,
		Model:             c.Model,
		BodyType:          c.BodyType,
		Year:              c.Year,
		Description:       c.Description,
		Seats:             c.Seats,
		FuelType:          c.FuelType,
		Transmission:      c.Transmission,
		Color:             c.Color,
		Mileage:           c.Mileage,
		Features:          c.FeatureList(),
		DailyRate:         c.DailyRate,
		WeeklyRate:        c.WeeklyRate,
		MonthlyRate:       c.MonthlyRate,
		MinRentalDays:     c.MinRentalDays,
		MaxRentalDays:     c.MaxRentalDays,
		MinAgeRequirement: c.MinAgeRequirement,
		Rules:             c.Rules,
		LocationName:      c.LocationName,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		IsComplete:        c.IsComplete,
		State:             c.State(),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func newCarListResponse(cars []models.CarDB) []CarResponse {
	resp := make([]CarResponse, 0, len(cars))
	for i := range cars {
		resp = append(resp, newCarResponse(&cars[i]))
	}
	return resp
}

// NewCreateCarBasicsHandler returns an HTTP handler for stage 1.
// @Summary Create a car listing (basics)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.CarBasicsRequest true "Car basics"
// @Success 201 {object} handlers.CarResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Failure 403 {object} middlewares.ErrorResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /cars/basics [post]
func NewCreateCarBasicsHandler(svc CarBasicsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		var req CarBasicsRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := requireFields(requiredField{"year", req.Year != nil}); err != nil {
			writeError(w, r, err)
			return
		}

		car, err := svc.CreateBasics(r.Context(), host.ID, models.CarBasics{
			Name:        req.Name,
			Model:       req.Model,
			BodyType:    req.BodyType,
			Year:        *req.Year,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newCarResponse(car))
	}
}

// NewUpdateCarSpecsHandler returns an HTTP handler for stage 2.
// @Summary Set technical specs
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param request body handlers.CarSpecsRequest true "Technical specs"
// @Success 200 {object} handlers.CarResponse
// @Failure 403 {object} middlewares.ErrorResponse "Not the owner"
// @Failure 404 {object} middlewares.ErrorResponse "Car not found"
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /cars/{id}/specs [put]
func NewUpdateCarSpecsHandler(svc CarStageUpdater) http.HandlerFunc {
	return carStageHandler(func(ctx context.Context, hostID, carID int64, r *http.Request) (*models.CarDB, error) {
		var req CarSpecsRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		if err := requireFields(
			requiredField{"seats", req.Seats != nil},
			requiredField{"mileage", req.Mileage != nil},
		); err != nil {
			return nil, err
		}
		return svc.UpdateSpecs(ctx, hostID, carID, models.CarSpecs{
			Seats:        *req.Seats,
			FuelType:     req.FuelType,
			Transmission: req.Transmission,
			Color:        req.Color,
			Mileage:      *req.Mileage,
			Features:     req.Features,
		})
	})
}

// NewUpdateCarPricingHandler returns an HTTP handler for stage 3.
// @Summary Set pricing and rules
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param request body handlers.CarPricingRequest true "Pricing and rules"
// @Success 200 {object} handlers.CarResponse
// @Failure 403 {object} middlewares.ErrorResponse "Not the owner"
// @Failure 404 {object} middlewares.ErrorResponse "Car not found"
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /cars/{id}/pricing [put]
func NewUpdateCarPricingHandler(svc CarStageUpdater) http.HandlerFunc {
	return carStageHandler(func(ctx context.Context, hostID, carID int64, r *http.Request) (*models.CarDB, error) {
		var req CarPricingRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		if err := requireFields(
			requiredField{"daily_rate", req.DailyRate != nil},
			requiredField{"weekly_rate", req.WeeklyRate != nil},
			requiredField{"monthly_rate", req.MonthlyRate != nil},
			requiredField{"min_rental_days", req.MinRentalDays != nil},
			requiredField{"min_age_requirement", req.MinAgeRequirement != nil},
		); err != nil {
			return nil, err
		}
		return svc.UpdatePricing(ctx, hostID, carID, models.CarPricing{
			DailyRate:         *req.DailyRate,
			WeeklyRate:        *req.WeeklyRate,
			MonthlyRate:       *req.MonthlyRate,
			MinRentalDays:     *req.MinRentalDays,
			MaxRentalDays:     req.MaxRentalDays,
			MinAgeRequirement: *req.MinAgeRequirement,
			Rules:             req.Rules,
		})
	})
}

// NewUpdateCarLocationHandler returns an HTTP handler for stage 4.
// @Summary Set location and complete the listing
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param request body handlers.CarLocationRequest true "Location name or coordinates"
// @Success 200 {object} handlers.CarResponse
// @Failure 403 {object} middlewares.ErrorResponse "Not the owner"
// @Failure 404 {object} middlewares.ErrorResponse "Car not found"
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /cars/{id}/location [put]
func NewUpdateCarLocationHandler(svc CarStageUpdater) http.HandlerFunc {
	return carStageHandler(func(ctx context.Context, hostID, carID int64, r *http.Request) (*models.CarDB, error) {
		var req CarLocationRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return svc.UpdateLocation(ctx, hostID, carID, models.CarLocation{
			LocationName: req.LocationName,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
		})
	})
}

func carStageHandler(update func(ctx context.Context, hostID, carID int64, r *http.Request) (*models.CarDB, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		carID, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		car, err := update(r.Context(), host.ID, carID, r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCarResponse(car))
	}
}

// NewGetCarHandler returns an HTTP handler reading one car.
// @Summary Get a car
// @Description Public; incomplete listings are included
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} handlers.CarResponse
// @Failure 404 {object} middlewares.ErrorResponse "Car not found"
// @Router /cars/{id} [get]
func NewGetCarHandler(svc CarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		car, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCarResponse(car))
	}
}

// NewListCarsHandler returns an HTTP handler listing all cars.
// @Summary List cars
// @Description Public; incomplete listings are included
// @Tags cars
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(100)
// @Success 200 {array} handlers.CarResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /cars [get]
func NewListCarsHandler(svc CarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := queryInt(r, "skip", 0)
		if err != nil {
			writeError(w, r, err)
			return
		}
		limit, err := queryInt(r, "limit", validation.MaxPageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		cars, err := svc.List(r.Context(), skip, limit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCarListResponse(cars))
	}
}

// NewListMyCarsHandler returns an HTTP handler listing the caller's cars.
// @Summary List my cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} handlers.CarResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Router /host/cars [get]
func NewListMyCarsHandler(svc CarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, ok := currentAccount(w, r, models.RoleHost)
		if !ok {
			return
		}

		cars, err := svc.ListMine(r.Context(), host.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCarListResponse(cars))
	}
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", validation.ErrValidation, name)
	}
	return v, nil
}
