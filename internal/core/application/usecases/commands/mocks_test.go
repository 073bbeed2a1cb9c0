package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/pickup"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// fixedClock pins "now" so attendance windows and shift labels are
// deterministic in tests.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testNotifier() commands.Notifier {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return commands.NewNotifier(publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetItems(ctx context.Context, orderID kernel.UUID) ([]order.Item, error) {
	args := m.Called(ctx, orderID)
	if items, ok := args.Get(0).([]order.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) ReplaceItems(ctx context.Context, orderID kernel.UUID, items []order.Item) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}
func (m *MockOrderRepository) GetUnpaidSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPickupOrderRepository struct{ mock.Mock }

func (m *MockPickupOrderRepository) Add(ctx context.Context, p *pickup.PickupOrder) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPickupOrderRepository) Update(ctx context.Context, p *pickup.PickupOrder) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPickupOrderRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.PickupOrder, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pickup.PickupOrder); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPickupOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pickup.PickupOrder, error) {
	args := m.Called(ctx, orderID)
	if p, ok := args.Get(0).(*pickup.PickupOrder); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPickupOrderRepository) Claim(ctx context.Context, id, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}
func (m *MockPickupOrderRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, d *delivery.DeliveryOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryOrderRepository) Update(ctx context.Context, d *delivery.DeliveryOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*delivery.DeliveryOrder); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockDeliveryOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, orderID)
	if d, ok := args.Get(0).(*delivery.DeliveryOrder); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockDeliveryOrderRepository) Claim(ctx context.Context, id, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}
func (m *MockDeliveryOrderRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(int64), args.Error(1)
}

type MockWorkProcessRepository struct{ mock.Mock }

func (m *MockWorkProcessRepository) Add(ctx context.Context, wp *work.WorkProcess) error {
	args := m.Called(ctx, wp)
	return args.Error(0)
}
func (m *MockWorkProcessRepository) Update(ctx context.Context, wp *work.WorkProcess) error {
	args := m.Called(ctx, wp)
	return args.Error(0)
}
func (m *MockWorkProcessRepository) Get(ctx context.Context, id kernel.UUID) (*work.WorkProcess, error) {
	args := m.Called(ctx, id)
	if wp, ok := args.Get(0).(*work.WorkProcess); ok {
		return wp, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWorkProcessRepository) GetLiveByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error) {
	args := m.Called(ctx, orderID, station)
	if wp, ok := args.Get(0).(*work.WorkProcess); ok {
		return wp, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWorkProcessRepository) Claim(ctx context.Context, id, shiftID kernel.UUID) error {
	args := m.Called(ctx, id, shiftID)
	return args.Error(0)
}
func (m *MockWorkProcessRepository) GetInProcessByShift(ctx context.Context, shiftID kernel.UUID) (*work.WorkProcess, error) {
	args := m.Called(ctx, shiftID)
	if wp, ok := args.Get(0).(*work.WorkProcess); ok {
		return wp, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWorkProcessRepository) GetLastByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error) {
	args := m.Called(ctx, orderID, station)
	if wp, ok := args.Get(0).(*work.WorkProcess); ok {
		return wp, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWorkerShiftRepository struct{ mock.Mock }

func (m *MockWorkerShiftRepository) Add(ctx context.Context, ws *work.WorkerShift) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}
func (m *MockWorkerShiftRepository) Update(ctx context.Context, ws *work.WorkerShift) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}
func (m *MockWorkerShiftRepository) Get(ctx context.Context, id kernel.UUID) (*work.WorkerShift, error) {
	args := m.Called(ctx, id)
	if ws, ok := args.Get(0).(*work.WorkerShift); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWorkerShiftRepository) GetOpenByWorker(ctx context.Context, workerID kernel.UUID) (*work.WorkerShift, error) {
	args := m.Called(ctx, workerID)
	if ws, ok := args.Get(0).(*work.WorkerShift); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWorkerShiftRepository) GetOpenStartedBefore(ctx context.Context, cutoff time.Time) ([]*work.WorkerShift, error) {
	args := m.Called(ctx, cutoff)
	if shifts, ok := args.Get(0).([]*work.WorkerShift); ok {
		return shifts, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAttendanceRepository struct{ mock.Mock }

func (m *MockAttendanceRepository) Add(ctx context.Context, a *attendance.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAttendanceRepository) GetOpenInWindow(ctx context.Context, userID kernel.UUID, start, end time.Time) (*attendance.Attendance, error) {
	args := m.Called(ctx, userID, start, end)
	if a, ok := args.Get(0).(*attendance.Attendance); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockAttendanceRepository) GetOpenCheckedInBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Attendance, error) {
	args := m.Called(ctx, cutoff)
	if records, ok := args.Get(0).([]*attendance.Attendance); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Get(ctx context.Context, userID kernel.UUID) (staff.Member, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(staff.Member), args.Error(1)
}
func (m *MockStaffRepository) CountAdminsOfOutlet(ctx context.Context, outletID kernel.UUID) (int64, error) {
	args := m.Called(ctx, outletID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateInvoice(ctx context.Context, orderID kernel.UUID, amount int64) (string, error) {
	args := m.Called(ctx, orderID, amount)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentGateway) StatusFor(ctx context.Context, orderID kernel.UUID) (payment.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(payment.Status), args.Error(1)
}

// txMock implements the transaction lifecycle shared by every mock UoW.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPickupUoW struct{ txMock }

func (m *MockPickupUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockPickupUoW) PickupOrderRepository() ports.PickupOrderRepository {
	return m.Called().Get(0).(ports.PickupOrderRepository)
}
func (m *MockPickupUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return m.Called().Get(0).(ports.DeliveryOrderRepository)
}
func (m *MockPickupUoW) AttendanceRepository() ports.AttendanceRepository {
	return m.Called().Get(0).(ports.AttendanceRepository)
}
func (m *MockPickupUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}
func (m *MockPickupUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	return m.Called().Get(0).(commands.PickupUoW)
}

type MockDeliveryUoW struct{ MockPickupUoW }

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockStationUoW struct{ txMock }

func (m *MockStationUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockStationUoW) WorkProcessRepository() ports.WorkProcessRepository {
	return m.Called().Get(0).(ports.WorkProcessRepository)
}
func (m *MockStationUoW) WorkerShiftRepository() ports.WorkerShiftRepository {
	return m.Called().Get(0).(ports.WorkerShiftRepository)
}
func (m *MockStationUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return m.Called().Get(0).(ports.DeliveryOrderRepository)
}
func (m *MockStationUoW) AttendanceRepository() ports.AttendanceRepository {
	return m.Called().Get(0).(ports.AttendanceRepository)
}
func (m *MockStationUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}
func (m *MockStationUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	return m.Called().Get(0).(commands.StationUoW)
}

type MockPaymentUoW struct{ txMock }

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockPaymentUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return m.Called().Get(0).(ports.DeliveryOrderRepository)
}
func (m *MockPaymentUoW) WorkProcessRepository() ports.WorkProcessRepository {
	return m.Called().Get(0).(ports.WorkProcessRepository)
}
func (m *MockPaymentUoW) WorkerShiftRepository() ports.WorkerShiftRepository {
	return m.Called().Get(0).(ports.WorkerShiftRepository)
}
func (m *MockPaymentUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockSweepUoW struct{ txMock }

func (m *MockSweepUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockSweepUoW) WorkProcessRepository() ports.WorkProcessRepository {
	return m.Called().Get(0).(ports.WorkProcessRepository)
}
func (m *MockSweepUoW) WorkerShiftRepository() ports.WorkerShiftRepository {
	return m.Called().Get(0).(ports.WorkerShiftRepository)
}
func (m *MockSweepUoW) AttendanceRepository() ports.AttendanceRepository {
	return m.Called().Get(0).(ports.AttendanceRepository)
}
func (m *MockSweepUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	return m.Called().Get(0).(commands.SweepUoW)
}

type MockAttendanceUoW struct{ txMock }

func (m *MockAttendanceUoW) AttendanceRepository() ports.AttendanceRepository {
	return m.Called().Get(0).(ports.AttendanceRepository)
}

type MockAttendanceUoWFactory struct{ mock.Mock }

func (m *MockAttendanceUoWFactory) Create() commands.AttendanceUoW {
	return m.Called().Get(0).(commands.AttendanceUoW)
}
