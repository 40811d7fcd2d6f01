package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

//go:generate mockgen -source=car.go -destination=car_mock.go -package=services

var (
	ErrCarNotFound = errors.New("car not found")
	ErrForbidden   = errors.New("not authorized to modify this car")
)

// CarReader defines read operations for cars.
type CarReader interface {
	GetByID(ctx context.Context, id int64) (*models.CarDB, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.CarDB, error)
	List(ctx context.Context, skip, limit int) ([]models.CarDB, error)
	ListByHost(ctx context.Context, hostID int64) ([]models.CarDB, error)
}

// CarWriter defines the per-stage writes of a car listing.
type CarWriter interface {
	Create(ctx context.Context, hostID int64, basics models.CarBasics) (*models.CarDB, error)
	UpdateSpecs(ctx context.Context, id int64, specs models.CarSpecs) (*models.CarDB, error)
	UpdatePricing(ctx context.Context, id int64, pricing models.CarPricing) (*models.CarDB, error)
	UpdateLocation(ctx context.Context, id int64, location models.CarLocation) (*models.CarDB, error)
}

// CarCache caches single car reads. Set must not replace an entry with a
// newer UpdatedAt.
type CarCache interface {
	Get(ctx context.Context, id int64) (*models.CarDB, error)
	Set(ctx context.Context, car *models.CarDB) error
	Delete(ctx context.Context, id int64) error
}

// CarEvents receives a notification for every stored stage.
type CarEvents interface {
	Publish(ctx context.Context, car *models.CarDB, stage models.CarStage)
}

// CarService implements the four-stage listing workflow and car reads.
type CarService struct {
	reader CarReader
	writer CarWriter
	tx     Transactor
	cache  CarCache  // optional
	events CarEvents // optional
}

// NewCarService creates a new CarService. cache and events may be nil.
func NewCarService(reader CarReader, writer CarWriter, tx Transactor, cache CarCache, events CarEvents) *CarService {
	return &CarService{
		reader: reader,
		writer: writer,
		tx:     tx,
		cache:  cache,
		events: events,
	}
}

// CreateBasics starts a new, incomplete listing owned by the host.
func (s *CarService) CreateBasics(ctx context.Context, hostID int64, basics models.CarBasics) (*models.CarDB, error) {
	if err := validation.ValidateCarBasics(basics); err != nil {
		return nil, err
	}

	car, err := s.writer.Create(ctx, hostID, basics)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create car", "hostID", hostID, "error", err)
		return nil, err
	}

	s.publish(ctx, car, models.CarStageBasics)
	return car, nil
}

// UpdateSpecs stores the technical specs stage.
func (s *CarService) UpdateSpecs(ctx context.Context, hostID, carID int64, specs models.CarSpecs) (*models.CarDB, error) {
	if err := validation.ValidateCarSpecs(specs); err != nil {
		return nil, err
	}
	return s.applyStage(ctx, hostID, carID, models.CarStageSpecs, func(ctx context.Context) (*models.CarDB, error) {
		return s.writer.UpdateSpecs(ctx, carID, specs)
	})
}

// UpdatePricing stores the pricing stage. A max_rental_days of 0 is stored
// as no maximum.
func (s *CarService) UpdatePricing(ctx context.Context, hostID, carID int64, pricing models.CarPricing) (*models.CarDB, error) {
	if err := validation.ValidateCarPricing(pricing); err != nil {
		return nil, err
	}
	if pricing.MaxRentalDays != nil && *pricing.MaxRentalDays == 0 {
		pricing.MaxRentalDays = nil
	}
	return s.applyStage(ctx, hostID, carID, models.CarStagePricing, func(ctx context.Context) (*models.CarDB, error) {
		return s.writer.UpdatePricing(ctx, carID, pricing)
	})
}

// UpdateLocation stores the location stage and completes the listing.
func (s *CarService) UpdateLocation(ctx context.Context, hostID, carID int64, location models.CarLocation) (*models.CarDB, error) {
	if err := validation.ValidateCarLocation(location); err != nil {
		return nil, err
	}
	return s.applyStage(ctx, hostID, carID, models.CarStageLocation, func(ctx context.Context) (*models.CarDB, error) {
		return s.writer.UpdateLocation(ctx, carID, location)
	})
}

// applyStage locks the car, checks existence and ownership, then runs
// update in the same transaction.
func (s *CarService) applyStage(
	ctx context.Context,
	hostID, carID int64,
	stage models.CarStage,
	update func(ctx context.Context) (*models.CarDB, error),
) (*models.CarDB, error) {
	var car *models.CarDB

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.reader.GetByIDForUpdate(ctx, carID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrCarNotFound
		}
		if current.HostID != hostID {
			return ErrForbidden
		}

		car, err = update(ctx)
		if err != nil {
			return err
		}
		if car == nil {
			return ErrCarNotFound
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCarNotFound), errors.Is(err, ErrForbidden):
			logger.FromContext(ctx).Infow("car stage rejected", "carID", carID, "hostID", hostID, "stage", stage, "error", err)
		default:
			logger.FromContext(ctx).Errorw("failed to update car", "carID", carID, "stage", stage, "error", err)
		}
		return nil, err
	}

	s.refresh(ctx, car)
	s.publish(ctx, car, stage)
	return car, nil
}

// Get returns a car by id regardless of its completion.
func (s *CarService) Get(ctx context.Context, id int64) (*models.CarDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to read car from cache", "carID", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	car, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get car", "carID", id, "error", err)
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, car); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache car", "carID", id, "error", err)
		}
	}
	return car, nil
}

// List returns a page of all cars, including incomplete ones.
func (s *CarService) List(ctx context.Context, skip, limit int) ([]models.CarDB, error) {
	if err := validation.ValidatePagination(skip, limit); err != nil {
		return nil, err
	}

	cars, err := s.reader.List(ctx, skip, limit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list cars", "skip", skip, "limit", limit, "error", err)
		return nil, err
	}
	return cars, nil
}

// ListMine returns every car owned by the host.
func (s *CarService) ListMine(ctx context.Context, hostID int64) ([]models.CarDB, error) {
	cars, err := s.reader.ListByHost(ctx, hostID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list host cars", "hostID", hostID, "error", err)
		return nil, err
	}
	return cars, nil
}

// refresh writes the committed row through to the cache. The cache keeps
// the newest updated_at, so a concurrent Get that read the row before the
// commit cannot put the older version back. If the write fails the entry
// is evicted instead.
func (s *CarService) refresh(ctx context.Context, car *models.CarDB) {
	if s.cache == nil {
		return
	}
	err := s.cache.Set(ctx, car)
	if err == nil {
		return
	}
	logger.FromContext(ctx).Warnw("failed to refresh cached car", "carID", car.ID, "error", err)
	if err := s.cache.Delete(ctx, car.ID); err != nil {
		logger.FromContext(ctx).Warnw("failed to evict car from cache", "carID", car.ID, "error", err)
	}
}

func (s *CarService) publish(ctx context.Context, car *models.CarDB, stage models.CarStage) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, car, stage)
}
