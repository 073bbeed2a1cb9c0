package commands_test

import (
	"context"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckInCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: testNow}
	dayStart, dayEnd := kernel.DayWindow(testNow)
	userID := kernel.NewUUID()

	t.Run("opens an attendance record stamped at the current time", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		mock.InOrder(
			repo.On("GetOpenInWindow", ctx, userID, dayStart, dayEnd).Return(nil, errs.ErrObjectNotFound).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(a *attendance.Attendance) bool {
				return a.UserID().IsEqual(userID) && a.CheckIn().Equal(testNow) && a.IsOpen()
			})).Return(nil).Once(),
		)

		uow := new(MockAttendanceUoW)
		uow.On("AttendanceRepository").Return(repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAttendanceUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCheckInCommand(userID)
		require.NoError(t, err)

		handler := commands.NewCheckInCommandHandler(factory, clock)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a second check-in on the same day", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		repo.On("GetOpenInWindow", ctx, userID, dayStart, dayEnd).Return(openAttendance(t, userID), nil).Once()

		uow := new(MockAttendanceUoW)
		uow.On("AttendanceRepository").Return(repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAttendanceUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCheckInCommand(userID)
		require.NoError(t, err)

		handler := commands.NewCheckInCommandHandler(factory, clock)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		repo.AssertNotCalled(t, "Add", ctx, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
		uow.AssertExpectations(t)
	})
}
