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

func TestNewWorkProcess(t *testing.T) {
	shiftID := kernel.NewUUID()
	wp, err := work.NewWorkProcess(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), shiftID, order.StationWashing,
	)
	require.NoError(t, err)

	assert.Equal(t, work.InProcess, wp.Status())
	require.NotNil(t, wp.Shift())
	assert.True(t, wp.Shift().IsEqual(shiftID))
	assert.True(t, wp.Status().IsLive())
	require.NoError(t, wp.Validate())
}

func TestNewPendingWorkProcess(t *testing.T) {
	wp, err := work.NewPendingWorkProcess(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationIroning,
	)
	require.NoError(t, err)

	assert.Equal(t, work.Pending, wp.Status())
	assert.Nil(t, wp.Shift())
	assert.True(t, wp.Status().IsLive())
}

func TestWorkProcess_Claim(t *testing.T) {
	t.Run("pending visit is claimable", func(t *testing.T) {
		wp, err := work.NewPendingWorkProcess(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationIroning,
		)
		require.NoError(t, err)

		shiftID := kernel.NewUUID()
		require.NoError(t, wp.Claim(shiftID))
		assert.Equal(t, work.InProcess, wp.Status())
		assert.True(t, wp.Shift().IsEqual(shiftID))
	})

	t.Run("claiming an in-process visit fails", func(t *testing.T) {
		wp, err := work.NewWorkProcess(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing,
		)
		require.NoError(t, err)

		err = wp.Claim(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrStationAlreadyClaimed)
	})
}

func TestWorkProcess_RequestBypass(t *testing.T) {
	wp, err := work.NewWorkProcess(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing,
	)
	require.NoError(t, err)

	t.Run("requires a reason", func(t *testing.T) {
		require.ErrorIs(t, wp.RequestBypass(""), errs.ErrValueIsRequired)
	})

	t.Run("suspends the visit with the reason", func(t *testing.T) {
		require.NoError(t, wp.RequestBypass("found 4 shirts, manifest says 5"))
		assert.Equal(t, work.BypassRequested, wp.Status())
		assert.Equal(t, "found 4 shirts, manifest says 5", wp.Notes())
		assert.True(t, wp.Status().IsLive())
	})

	t.Run("cannot request twice", func(t *testing.T) {
		require.ErrorIs(t, wp.RequestBypass("again"), errs.ErrInvalidTransition)
	})
}

func TestWorkProcess_Complete(t *testing.T) {
	wp, err := work.NewWorkProcess(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationPacking,
	)
	require.NoError(t, err)

	at := time.Now()
	require.NoError(t, wp.Complete(at))
	assert.Equal(t, work.Completed, wp.Status())
	require.NotNil(t, wp.CompletedAt())
	assert.False(t, wp.Status().IsLive())

	// Completing twice must fail, never double-advance.
	require.ErrorIs(t, wp.Complete(at), errs.ErrInvalidTransition)
}

func TestWorkProcess_ResolveBypass(t *testing.T) {
	wp, err := work.NewWorkProcess(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.StationWashing,
	)
	require.NoError(t, err)
	require.NoError(t, wp.RequestBypass("count mismatch"))

	require.NoError(t, wp.ResolveBypass(time.Now()))
	assert.Equal(t, work.Completed, wp.Status())
	assert.Empty(t, wp.Notes(), "bypass reason note is deleted on resolution")

	err = wp.ResolveBypass(time.Now())
	require.ErrorIs(t, err, errs.ErrBypassAlreadyResolved)
}

func TestWorkStatus_IsLive(t *testing.T) {
	assert.True(t, work.Pending.IsLive())
	assert.True(t, work.InProcess.IsLive())
	assert.True(t, work.BypassRequested.IsLive())
	assert.False(t, work.Completed.IsLive())
}
