package kernel_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClock_Now(t *testing.T) {
	clock := kernel.NewSystemClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	require.False(t, now.Before(before))
	require.False(t, now.After(after))
}

func TestDayWindow(t *testing.T) {
	t.Run("covers the full local day", func(t *testing.T) {
		at := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.Local)

		start, end := kernel.DayWindow(at)

		assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, 14, end.Day())
		assert.Equal(t, 23, end.Hour())
		assert.True(t, end.After(at))
	})

	t.Run("midnight belongs to the starting day", func(t *testing.T) {
		at := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)

		start, end := kernel.DayWindow(at)

		assert.Equal(t, at, start)
		assert.True(t, end.Before(at.Add(24*time.Hour)))
	})
}
