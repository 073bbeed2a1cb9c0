package work_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	morning := time.Date(2025, time.March, 14, 11, 59, 0, 0, time.Local)
	noon := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.March, 14, 19, 30, 0, 0, time.Local)

	assert.Equal(t, work.Morning, work.LabelFor(morning))
	assert.Equal(t, work.Noon, work.LabelFor(noon))
	assert.Equal(t, work.Noon, work.LabelFor(evening))
}

func TestNewWorkerShift(t *testing.T) {
	startedAt := time.Date(2025, time.March, 14, 8, 30, 0, 0, time.Local)

	ws, err := work.NewWorkerShift(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing, startedAt,
	)
	require.NoError(t, err)

	assert.Equal(t, work.Morning, ws.Label())
	assert.Equal(t, startedAt, ws.Start())
	assert.True(t, ws.IsOpen())
	assert.Nil(t, ws.End())
	require.NoError(t, ws.Validate())
}

func TestWorkerShift_Close(t *testing.T) {
	ws, err := work.NewWorkerShift(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationIroning, time.Now(),
	)
	require.NoError(t, err)

	closedAt := time.Now()
	require.NoError(t, ws.Close(closedAt))
	assert.False(t, ws.IsOpen())
	require.NotNil(t, ws.End())
	assert.Equal(t, closedAt, *ws.End())

	require.ErrorIs(t, ws.Close(time.Now()), errs.ErrInvalidTransition)
}

func TestWorkerShift_ScheduledEnd(t *testing.T) {
	t.Run("morning shift ends at noon", func(t *testing.T) {
		start := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local)
		ws, err := work.NewWorkerShift(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing, start,
		)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local), ws.ScheduledEnd())
	})

	t.Run("noon shift ends with the day", func(t *testing.T) {
		start := time.Date(2025, time.March, 14, 14, 0, 0, 0, time.Local)
		ws, err := work.NewWorkerShift(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing, start,
		)
		require.NoError(t, err)

		end := ws.ScheduledEnd()
		assert.Equal(t, 14, end.Day())
		assert.Equal(t, 23, end.Hour())
	})
}
