package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

func TestCarEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockKafkaWriter(ctrl)
	publisher := NewCarEventPublisher(writer)

	seats := 5
	car := &models.CarDB{ID: 42, HostID: 7, Seats: &seats}

	var got []kafka.Message
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			got = msgs
			return nil
		})

	publisher.Publish(context.Background(), car, models.CarStageSpecs)
	publisher.Wait()

	require.Len(t, got, 1)
	assert.Equal(t, "42", string(got[0].Key))

	var event models.CarEvent
	require.NoError(t, json.Unmarshal(got[0].Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, int64(42), event.CarID)
	assert.Equal(t, int64(7), event.HostID)
	assert.Equal(t, models.CarStageSpecs, event.Stage)
	assert.Equal(t, models.CarStatePricingPending, event.State)
	assert.False(t, event.IsComplete)
}

func TestCarEventPublisher_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error")).Times(1)

	publisher := NewCarEventPublisher(writer)
	publisher.Publish(context.Background(), &models.CarDB{ID: 1}, models.CarStageBasics)
	publisher.Wait()
}

func TestCarEventPublisher_NoWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		publisher := NewCarEventPublisher(nil)
		publisher.Publish(context.Background(), &models.CarDB{ID: 1}, models.CarStageBasics)
		publisher.Wait()
	})
}

func TestCarEventPublisher_SlowBrokerDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockKafkaWriter(ctrl)

	release := make(chan struct{})
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			<-release
			return nil
		})

	publisher := NewCarEventPublisher(writer)

	start := time.Now()
	publisher.Publish(context.Background(), &models.CarDB{ID: 1}, models.CarStageLocation)
	assert.Less(t, time.Since(start), 200*time.Millisecond)

	close(release)
	publisher.Wait()
}

func TestCarEventPublisher_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockKafkaWriter(ctrl)

	var writeErr error
	var hadDeadline bool
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			_, hadDeadline = ctx.Deadline()
			<-ctx.Done()
			writeErr = ctx.Err()
			return writeErr
		})

	publisher := NewCarEventPublisher(writer, WithPublishTimeout(20*time.Millisecond))

	// the request context is already gone once the response is written
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	publisher.Publish(reqCtx, &models.CarDB{ID: 1}, models.CarStageLocation)

	done := make(chan struct{})
	go func() {
		publisher.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not time out")
	}
	assert.True(t, hadDeadline)
	assert.ErrorIs(t, writeErr, context.DeadlineExceeded)
}
