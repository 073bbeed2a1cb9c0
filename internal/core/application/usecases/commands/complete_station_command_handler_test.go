package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteStationCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: testNow}
	dayStart, dayEnd := kernel.DayWindow(testNow)

	workerID := kernel.NewUUID()
	outletID := kernel.NewUUID()

	newShiftAndProcess := func(t *testing.T, station order.Station, orderID kernel.UUID) (*work.WorkerShift, *work.WorkProcess) {
		t.Helper()
		shift, err := work.NewWorkerShift(kernel.NewUUID(), workerID, outletID, station, testNow.Add(-time.Hour))
		require.NoError(t, err)
		shiftID := shift.ID()
		wp, err := work.RestoreWorkProcess(kernel.NewUUID(), orderID, outletID, &shiftID, station, work.InProcess, "", nil)
		require.NoError(t, err)
		return shift, wp
	}

	setupGate := func(t *testing.T, uow *MockStationUoW) {
		t.Helper()
		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("GetOpenInWindow", ctx, workerID, dayStart, dayEnd).Return(openAttendance(t, workerID), nil).Once()
		uow.On("AttendanceRepository").Return(attendanceRepo)
	}

	t.Run("advances to IRONING and frees the washing shift", func(t *testing.T) {
		parent := restoredOrder(t, order.Washing, kernel.NewUUID(), outletID)
		shift, wp := newShiftAndProcess(t, order.StationWashing, parent.ID())

		uow := new(MockStationUoW)
		setupGate(t, uow)

		shiftRepo := new(MockWorkerShiftRepository)
		shiftRepo.On("GetOpenByWorker", ctx, workerID).Return(shift, nil).Once()
		shiftRepo.On("Update", ctx, shift).Return(nil).Once()
		uow.On("WorkerShiftRepository").Return(shiftRepo)

		wpRepo := new(MockWorkProcessRepository)
		wpRepo.On("GetInProcessByShift", ctx, shift.ID()).Return(wp, nil).Once()
		wpRepo.On("Update", ctx, wp).Return(nil).Once()
		uow.On("WorkProcessRepository").Return(wpRepo)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once()
		orderRepo.On("Update", ctx, parent).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo)

		noteRepo := new(MockNotificationRepository)
		noteRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			audience, ok := n.Audience().(notification.WorkersAudience)
			return ok && audience.Station == order.StationIroning && audience.OutletID.IsEqual(outletID)
		})).Return(nil).Once()
		uow.On("NotificationRepository").Return(noteRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		gateway := new(MockPaymentGateway)

		factory := new(MockStationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteStationCommand(workerID, parent.ID())
		require.NoError(t, err)

		handler := commands.NewCompleteStationCommandHandler(factory, gateway, clock, testNotifier())
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Ironing, parent.Status())
		assert.Equal(t, work.Completed, wp.Status())
		assert.False(t, shift.IsOpen())
		gateway.AssertNotCalled(t, "StatusFor", ctx, parent.ID())
		uow.AssertExpectations(t)
		noteRepo.AssertExpectations(t)
	})

	t.Run("parks an unpaid order at WAITING_FOR_PAYMENT and keeps the packing shift open", func(t *testing.T) {
		parent := restoredOrder(t, order.Packing, kernel.NewUUID(), outletID)
		shift, wp := newShiftAndProcess(t, order.StationPacking, parent.ID())

		uow := new(MockStationUoW)
		setupGate(t, uow)

		shiftRepo := new(MockWorkerShiftRepository)
		shiftRepo.On("GetOpenByWorker", ctx, workerID).Return(shift, nil).Once()
		uow.On("WorkerShiftRepository").Return(shiftRepo)

		wpRepo := new(MockWorkProcessRepository)
		wpRepo.On("GetInProcessByShift", ctx, shift.ID()).Return(wp, nil).Once()
		wpRepo.On("Update", ctx, wp).Return(nil).Once()
		uow.On("WorkProcessRepository").Return(wpRepo)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once()
		orderRepo.On("Update", ctx, parent).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo)

		noteRepo := new(MockNotificationRepository)
		noteRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			audience, ok := n.Audience().(notification.CustomerAudience)
			return ok && audience.CustomerID.IsEqual(parent.CustomerID())
		})).Return(nil).Once()
		uow.On("NotificationRepository").Return(noteRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		gateway := new(MockPaymentGateway)
		gateway.On("StatusFor", ctx, parent.ID()).Return(payment.StatusPending, nil).Once()

		factory := new(MockStationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteStationCommand(workerID, parent.ID())
		require.NoError(t, err)

		handler := commands.NewCompleteStationCommandHandler(factory, gateway, clock, testNotifier())
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.WaitingForPayment, parent.Status())
		assert.True(t, shift.IsOpen())
		shiftRepo.AssertNotCalled(t, "Update", ctx, shift)
		uow.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("creates the delivery leg when packing completes on a paid order", func(t *testing.T) {
		parent := restoredOrder(t, order.Packing, kernel.NewUUID(), outletID)
		shift, wp := newShiftAndProcess(t, order.StationPacking, parent.ID())

		uow := new(MockStationUoW)
		setupGate(t, uow)

		shiftRepo := new(MockWorkerShiftRepository)
		shiftRepo.On("GetOpenByWorker", ctx, workerID).Return(shift, nil).Once()
		shiftRepo.On("Update", ctx, shift).Return(nil).Once()
		uow.On("WorkerShiftRepository").Return(shiftRepo)

		wpRepo := new(MockWorkProcessRepository)
		wpRepo.On("GetInProcessByShift", ctx, shift.ID()).Return(wp, nil).Once()
		wpRepo.On("Update", ctx, wp).Return(nil).Once()
		uow.On("WorkProcessRepository").Return(wpRepo)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once()
		orderRepo.On("Update", ctx, parent).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo)

		deliveryRepo := new(MockDeliveryOrderRepository)
		deliveryRepo.On("Add", ctx, mock.MatchedBy(func(d *delivery.DeliveryOrder) bool {
			return d.OrderID().IsEqual(parent.ID())
		})).Return(nil).Once()
		uow.On("DeliveryOrderRepository").Return(deliveryRepo)

		noteRepo := new(MockNotificationRepository)
		noteRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			audience, ok := n.Audience().(notification.DriversAudience)
			return ok && audience.OutletID.IsEqual(outletID)
		})).Return(nil).Once()
		uow.On("NotificationRepository").Return(noteRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		gateway := new(MockPaymentGateway)
		gateway.On("StatusFor", ctx, parent.ID()).Return(payment.StatusSuccess, nil).Once()

		factory := new(MockStationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteStationCommand(workerID, parent.ID())
		require.NoError(t, err)

		handler := commands.NewCompleteStationCommandHandler(factory, gateway, clock, testNotifier())
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDelivery, parent.Status())
		assert.False(t, shift.IsOpen())
		uow.AssertExpectations(t)
		deliveryRepo.AssertExpectations(t)
		noteRepo.AssertExpectations(t)
	})

	t.Run("fails when the worker has no open shift", func(t *testing.T) {
		parent := restoredOrder(t, order.Washing, kernel.NewUUID(), outletID)

		uow := new(MockStationUoW)
		setupGate(t, uow)

		shiftRepo := new(MockWorkerShiftRepository)
		shiftRepo.On("GetOpenByWorker", ctx, workerID).Return(nil, errs.ErrObjectNotFound).Once()
		uow.On("WorkerShiftRepository").Return(shiftRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockStationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteStationCommand(workerID, parent.ID())
		require.NoError(t, err)

		handler := commands.NewCompleteStationCommandHandler(factory, new(MockPaymentGateway), clock, testNotifier())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		uow.AssertExpectations(t)
	})

	t.Run("fails when the shift is processing another order", func(t *testing.T) {
		parent := restoredOrder(t, order.Washing, kernel.NewUUID(), outletID)
		shift, wp := newShiftAndProcess(t, order.StationWashing, kernel.NewUUID())

		uow := new(MockStationUoW)
		setupGate(t, uow)

		shiftRepo := new(MockWorkerShiftRepository)
		shiftRepo.On("GetOpenByWorker", ctx, workerID).Return(shift, nil).Once()
		uow.On("WorkerShiftRepository").Return(shiftRepo)

		wpRepo := new(MockWorkProcessRepository)
		wpRepo.On("GetInProcessByShift", ctx, shift.ID()).Return(wp, nil).Once()
		uow.On("WorkProcessRepository").Return(wpRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockStationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteStationCommand(workerID, parent.ID())
		require.NoError(t, err)

		handler := commands.NewCompleteStationCommandHandler(factory, new(MockPaymentGateway), clock, testNotifier())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		uow.AssertExpectations(t)
	})
}
