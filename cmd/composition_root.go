package cmd

import (
	"log/slog"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. Each
// handler gets a narrow unit of work factory bridged from the full GORM one.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	clock      kernel.Clock
	notifier   commands.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the application graph over the given adapters.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	gateway ports.PaymentGateway,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		clock:      kernel.NewSystemClock(),
		notifier:   commands.NewNotifier(publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) attendanceUoWFactory() commands.AttendanceUoWFactory {
	return FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stationUoWFactory() commands.StationUoWFactory {
	return FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sweepUoWFactory() commands.SweepUoWFactory {
	return FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRequestPickupCommandHandler() commands.RequestPickupCommandHandler {
	return commands.NewRequestPickupCommandHandler(c.pickupUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	return commands.NewAcceptPickupCommandHandler(c.pickupUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	return commands.NewCompletePickupCommandHandler(c.pickupUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateAssignWashingCommandHandler() commands.AssignWashingCommandHandler {
	return commands.NewAssignWashingCommandHandler(c.stationUoWFactory(), c.gateway, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateProcessStationCommandHandler() commands.ProcessStationCommandHandler {
	return commands.NewProcessStationCommandHandler(c.stationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteStationCommandHandler() commands.CompleteStationCommandHandler {
	return commands.NewCompleteStationCommandHandler(c.stationUoWFactory(), c.gateway, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateRequestBypassCommandHandler() commands.RequestBypassCommandHandler {
	return commands.NewRequestBypassCommandHandler(c.stationUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateResolveBypassCommandHandler() commands.ResolveBypassCommandHandler {
	return commands.NewResolveBypassCommandHandler(c.stationUoWFactory(), c.gateway, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.paymentUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateCheckInCommandHandler() commands.CheckInCommandHandler {
	return commands.NewCheckInCommandHandler(c.attendanceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCheckOutCommandHandler() commands.CheckOutCommandHandler {
	return commands.NewCheckOutCommandHandler(c.attendanceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCheckoutExpiredWorkerShiftsCommandHandler() commands.CheckoutExpiredWorkerShiftsCommandHandler {
	return commands.NewCheckoutExpiredWorkerShiftsCommandHandler(c.sweepUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCheckoutExpiredDriverAttendanceCommandHandler() commands.CheckoutExpiredDriverAttendanceCommandHandler {
	return commands.NewCheckoutExpiredDriverAttendanceCommandHandler(c.sweepUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemindUnpaidOrdersCommandHandler() commands.RemindUnpaidOrdersCommandHandler {
	return commands.NewRemindUnpaidOrdersCommandHandler(c.sweepUoWFactory(), c.config.UnpaidRemindAfter, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateCancelUnpaidOrdersCommandHandler() commands.CancelUnpaidOrdersCommandHandler {
	return commands.NewCancelUnpaidOrdersCommandHandler(c.sweepUoWFactory(), c.config.UnpaidCancelAfter, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateGetAvailablePickupsQueryHandler() queries.GetAvailablePickupsQueryHandler {
	return queries.NewGetAvailablePickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationQueueQueryHandler() queries.GetStationQueueQueryHandler {
	return queries.NewGetStationQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingBypassesQueryHandler() queries.GetPendingBypassesQueryHandler {
	return queries.NewGetPendingBypassesQueryHandler(c.gormDB)
}

// CreateJobManager wires the four background sweeps.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCheckoutExpiredWorkerShiftsCommandHandler(),
		c.CreateCheckoutExpiredDriverAttendanceCommandHandler(),
		c.CreateRemindUnpaidOrdersCommandHandler(),
		c.CreateCancelUnpaidOrdersCommandHandler(),
		c.logger,
	)
}

type FuncAttendanceUoWFactory func() commands.AttendanceUoW

func (f FuncAttendanceUoWFactory) Create() commands.AttendanceUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
