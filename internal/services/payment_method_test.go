package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

type paymentMocks struct {
	reader *MockPaymentMethodReader
	writer *MockPaymentMethodWriter
	hasher *MockHasher
}

func newPaymentMethodService(t *testing.T) (*PaymentMethodService, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		reader: NewMockPaymentMethodReader(ctrl),
		writer: NewMockPaymentMethodWriter(ctrl),
		hasher: NewMockHasher(ctrl),
	}
	tx := NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	svc := NewPaymentMethodService(m.reader, m.writer, m.hasher, tx)
	svc.now = func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }
	return svc, m
}

func TestPaymentMethodService_AddMpesa(t *testing.T) {
	t.Run("non-default", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		method := &models.PaymentMethodDB{ID: 1, HostID: 9, MethodType: models.PaymentMethodMpesa}
		m.writer.EXPECT().CreateMpesa(gomock.Any(), int64(9), "254712345678", false).Return(method, nil)

		got, err := svc.AddMpesa(context.Background(), 9, "254712345678", false)
		assert.NoError(t, err)
		assert.Equal(t, method, got)
	})

	t.Run("default clears others first", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		method := &models.PaymentMethodDB{ID: 2, HostID: 9, IsDefault: true}
		gomock.InOrder(
			m.writer.EXPECT().LockHost(gomock.Any(), int64(9)).Return(nil),
			m.writer.EXPECT().ClearDefault(gomock.Any(), int64(9), int64(0)).Return(int64(1), nil),
			m.writer.EXPECT().CreateMpesa(gomock.Any(), int64(9), "254712345678", true).Return(method, nil),
		)

		got, err := svc.AddMpesa(context.Background(), 9, "254712345678", true)
		assert.NoError(t, err)
		assert.True(t, got.IsDefault)
	})

	t.Run("invalid number", func(t *testing.T) {
		svc, _ := newPaymentMethodService(t)
		_, err := svc.AddMpesa(context.Background(), 9, "12ab", false)
		assert.ErrorIs(t, err, validation.ErrValidation)
	})
}

func TestPaymentMethodService_AddCard(t *testing.T) {
	card := models.CardInput{
		CardNumber:  "4111 1111-1111 1111",
		CVC:         "123",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CardType:    "visa",
	}

	t.Run("stores hashes and last four", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		m.hasher.EXPECT().Hash("4111111111111111").Return("number-hash", nil)
		m.hasher.EXPECT().Hash("123").Return("cvc-hash", nil)
		m.writer.EXPECT().
			CreateCard(gomock.Any(), int64(9), models.CardRecord{
				MethodType:     models.PaymentMethodVisa,
				CardNumberHash: "number-hash",
				CVCHash:        "cvc-hash",
				CardLastFour:   "1111",
				CardType:       "visa",
				ExpiryMonth:    12,
				ExpiryYear:     2030,
			}).
			Return(&models.PaymentMethodDB{ID: 3}, nil)

		got, err := svc.AddCard(context.Background(), 9, card)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	invalid := []struct {
		name   string
		mutate func(c *models.CardInput)
	}{
		{name: "brand mismatch", mutate: func(c *models.CardInput) { c.CardType = "mastercard" }},
		{name: "short cvc", mutate: func(c *models.CardInput) { c.CVC = "12" }},
		{name: "expired", mutate: func(c *models.CardInput) { c.ExpiryMonth, c.ExpiryYear = 1, 2020 }},
		{name: "previous month", mutate: func(c *models.CardInput) { c.ExpiryMonth, c.ExpiryYear = 9, 2026 }},
		{name: "fifteen digits", mutate: func(c *models.CardInput) { c.CardNumber = "411111111111111" }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newPaymentMethodService(t)
			c := card
			tt.mutate(&c)

			_, err := svc.AddCard(context.Background(), 9, c)
			assert.ErrorIs(t, err, validation.ErrValidation)
		})
	}

	t.Run("current month accepted", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		c := card
		c.ExpiryMonth, c.ExpiryYear = 10, 2026
		c.IsDefault = true

		m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil).Times(2)
		m.writer.EXPECT().LockHost(gomock.Any(), int64(9)).Return(nil)
		m.writer.EXPECT().ClearDefault(gomock.Any(), int64(9), int64(0)).Return(int64(0), nil)
		m.writer.EXPECT().CreateCard(gomock.Any(), int64(9), gomock.Any()).Return(&models.PaymentMethodDB{ID: 4, IsDefault: true}, nil)

		got, err := svc.AddCard(context.Background(), 9, c)
		require.NoError(t, err)
		assert.True(t, got.IsDefault)
	})
}

func TestPaymentMethodService_SetDefault(t *testing.T) {
	t.Run("switches default", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		updated := &models.PaymentMethodDB{ID: 5, HostID: 9, IsDefault: true}
		gomock.InOrder(
			m.writer.EXPECT().LockHost(gomock.Any(), int64(9)).Return(nil),
			m.reader.EXPECT().GetByIDForHost(gomock.Any(), int64(5), int64(9)).Return(&models.PaymentMethodDB{ID: 5, HostID: 9}, nil),
			m.writer.EXPECT().ClearDefault(gomock.Any(), int64(9), int64(5)).Return(int64(1), nil),
			m.writer.EXPECT().SetDefault(gomock.Any(), int64(5), int64(9)).Return(updated, nil),
		)

		got, err := svc.SetDefault(context.Background(), 9, 5)
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not owned", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		m.writer.EXPECT().LockHost(gomock.Any(), int64(9)).Return(nil)
		m.reader.EXPECT().GetByIDForHost(gomock.Any(), int64(5), int64(9)).Return(nil, nil)

		_, err := svc.SetDefault(context.Background(), 9, 5)
		assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
	})

	t.Run("clear error", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		dbErr := errors.New("db error")
		m.writer.EXPECT().LockHost(gomock.Any(), int64(9)).Return(nil)
		m.reader.EXPECT().GetByIDForHost(gomock.Any(), int64(5), int64(9)).Return(&models.PaymentMethodDB{ID: 5}, nil)
		m.writer.EXPECT().ClearDefault(gomock.Any(), int64(9), int64(5)).Return(int64(0), dbErr)

		_, err := svc.SetDefault(context.Background(), 9, 5)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPaymentMethodService_Delete(t *testing.T) {
	t.Run("deleting the default does not promote another", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		m.writer.EXPECT().Delete(gomock.Any(), int64(5), int64(9)).Return(true, nil)

		assert.NoError(t, svc.Delete(context.Background(), 9, 5))
	})

	t.Run("not owned", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		m.writer.EXPECT().Delete(gomock.Any(), int64(5), int64(9)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 9, 5), ErrPaymentMethodNotFound)
	})
}

func TestPaymentMethodService_Read(t *testing.T) {
	t.Run("get not owned", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		m.reader.EXPECT().GetByIDForHost(gomock.Any(), int64(5), int64(9)).Return(nil, nil)

		_, err := svc.Get(context.Background(), 9, 5)
		assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
	})

	t.Run("list", func(t *testing.T) {
		svc, m := newPaymentMethodService(t)
		methods := []models.PaymentMethodDB{{ID: 2, IsDefault: true}, {ID: 3}}
		m.reader.EXPECT().ListByHost(gomock.Any(), int64(9)).Return(methods, nil)

		got, err := svc.List(context.Background(), 9)
		assert.NoError(t, err)
		assert.Equal(t, methods, got)
	})
}
