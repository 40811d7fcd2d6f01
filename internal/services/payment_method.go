package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

//go:generate mockgen -source=payment_method.go -destination=payment_method_mock.go -package=services

// ErrPaymentMethodNotFound is returned for ids that do not exist or belong
// to another host.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodReader defines read operations scoped to a host.
type PaymentMethodReader interface {
	GetByIDForHost(ctx context.Context, id, hostID int64) (*models.PaymentMethodDB, error)
	ListByHost(ctx context.Context, hostID int64) ([]models.PaymentMethodDB, error)
}

// PaymentMethodWriter defines write operations scoped to a host.
type PaymentMethodWriter interface {
	LockHost(ctx context.Context, hostID int64) error
	ClearDefault(ctx context.Context, hostID, exceptID int64) (int64, error)
	CreateMpesa(ctx context.Context, hostID int64, number string, isDefault bool) (*models.PaymentMethodDB, error)
	CreateCard(ctx context.Context, hostID int64, card models.CardRecord) (*models.PaymentMethodDB, error)
	SetDefault(ctx context.Context, id, hostID int64) (*models.PaymentMethodDB, error)
	Delete(ctx context.Context, id, hostID int64) (bool, error)
}

// PaymentMethodService manages host payment methods. A host has at most
// one default method at any time.
type PaymentMethodService struct {
	reader PaymentMethodReader
	writer PaymentMethodWriter
	hasher Hasher
	tx     Transactor
	now    func() time.Time
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(reader PaymentMethodReader, writer PaymentMethodWriter, hasher Hasher, tx Transactor) *PaymentMethodService {
	return &PaymentMethodService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tx:     tx,
		now:    time.Now,
	}
}

// AddMpesa registers an M-Pesa number for the host.
func (s *PaymentMethodService) AddMpesa(ctx context.Context, hostID int64, number string, isDefault bool) (*models.PaymentMethodDB, error) {
	if err := validation.ValidateMpesaNumber(number); err != nil {
		return nil, err
	}

	var method *models.PaymentMethodDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if isDefault {
			if err := s.clearDefault(ctx, hostID, 0); err != nil {
				return err
			}
		}
		var err error
		method, err = s.writer.CreateMpesa(ctx, hostID, number, isDefault)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to add mpesa payment method", "hostID", hostID, "error", err)
		return nil, err
	}
	return method, nil
}

// AddCard registers a card for the host. Only hashes of the number and CVC
// are stored, along with the last four digits.
func (s *PaymentMethodService) AddCard(ctx context.Context, hostID int64, card models.CardInput) (*models.PaymentMethodDB, error) {
	card.CardNumber = validation.NormalizeCardNumber(card.CardNumber)
	if err := validation.ValidateCard(card, s.now()); err != nil {
		return nil, err
	}

	numberHash, err := s.hasher.Hash(card.CardNumber)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash card number", "hostID", hostID, "error", err)
		return nil, err
	}
	cvcHash, err := s.hasher.Hash(card.CVC)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash cvc", "hostID", hostID, "error", err)
		return nil, err
	}

	record := models.CardRecord{
		MethodType:     models.PaymentMethodType(card.CardType),
		CardNumberHash: numberHash,
		CVCHash:        cvcHash,
		CardLastFour:   card.CardNumber[len(card.CardNumber)-4:],
		CardType:       card.CardType,
		ExpiryMonth:    card.ExpiryMonth,
		ExpiryYear:     card.ExpiryYear,
		IsDefault:      card.IsDefault,
	}

	var method *models.PaymentMethodDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if record.IsDefault {
			if err := s.clearDefault(ctx, hostID, 0); err != nil {
				return err
			}
		}
		var err error
		method, err = s.writer.CreateCard(ctx, hostID, record)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to add card payment method", "hostID", hostID, "error", err)
		return nil, err
	}
	return method, nil
}

// SetDefault makes the payment method the host's only default.
func (s *PaymentMethodService) SetDefault(ctx context.Context, hostID, id int64) (*models.PaymentMethodDB, error) {
	var method *models.PaymentMethodDB

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.writer.LockHost(ctx, hostID); err != nil {
			return err
		}

		existing, err := s.reader.GetByIDForHost(ctx, id, hostID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrPaymentMethodNotFound
		}

		if _, err := s.writer.ClearDefault(ctx, hostID, id); err != nil {
			return err
		}

		method, err = s.writer.SetDefault(ctx, id, hostID)
		if err != nil {
			return err
		}
		if method == nil {
			return ErrPaymentMethodNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPaymentMethodNotFound) {
			logger.FromContext(ctx).Errorw("failed to set default payment method", "hostID", hostID, "id", id, "error", err)
		}
		return nil, err
	}
	return method, nil
}

// Delete removes the payment method. Deleting the default leaves the host
// without one.
func (s *PaymentMethodService) Delete(ctx context.Context, hostID, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err := s.writer.Delete(ctx, id, hostID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrPaymentMethodNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrPaymentMethodNotFound) {
		logger.FromContext(ctx).Errorw("failed to delete payment method", "hostID", hostID, "id", id, "error", err)
	}
	return err
}

// Get returns one of the host's payment methods.
func (s *PaymentMethodService) Get(ctx context.Context, hostID, id int64) (*models.PaymentMethodDB, error) {
	method, err := s.reader.GetByIDForHost(ctx, id, hostID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get payment method", "hostID", hostID, "id", id, "error", err)
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}
	return method, nil
}

// List returns the host's payment methods, default first, then newest first.
func (s *PaymentMethodService) List(ctx context.Context, hostID int64) ([]models.PaymentMethodDB, error) {
	methods, err := s.reader.ListByHost(ctx, hostID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list payment methods", "hostID", hostID, "error", err)
		return nil, err
	}
	return methods, nil
}

// clearDefault serializes default changes per host before unsetting the
// current default.
func (s *PaymentMethodService) clearDefault(ctx context.Context, hostID, exceptID int64) error {
	if err := s.writer.LockHost(ctx, hostID); err != nil {
		return err
	}
	_, err := s.writer.ClearDefault(ctx, hostID, exceptID)
	return err
}
