package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrDeliveryOrderIsNotConstructed is returned when a DeliveryOrder was
	// not created through NewDeliveryOrder or RestoreDeliveryOrder.
	ErrDeliveryOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder constructor")
)

// DeliveryOrder is the delivery leg of an order, created the moment the order
// reaches READY_FOR_DELIVERY and claimed by exactly one driver. The same
// first-accept-wins and conditional-claim rules as the pickup leg apply.
type DeliveryOrder struct {
	id             kernel.UUID
	orderID        kernel.UUID
	driverID       *kernel.UUID
	status         Status
	deliveryNumber string
	deliveredAt    *time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryOrder creates the delivery leg for an order that finished packing.
func NewDeliveryOrder(id, orderID kernel.UUID, deliveryNumber string) (*DeliveryOrder, error) {
	d := &DeliveryOrder{
		status: ReadyForDelivery,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDeliveryNumber(deliveryNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeliveryOrder reconstructs a delivery leg from persistence.
func RestoreDeliveryOrder(
	id, orderID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	deliveryNumber string,
	deliveredAt *time.Time,
) (*DeliveryOrder, error) {
	d := &DeliveryOrder{
		driverID:    driverID,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setStatus(status),
		d.setDeliveryNumber(deliveryNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the DeliveryOrder was created through a constructor.
func (d *DeliveryOrder) Validate() error {
	if d == nil {
		return ErrDeliveryOrderIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryOrderIsNotConstructed)
}

// ID returns the delivery leg's unique identifier.
func (d *DeliveryOrder) ID() kernel.UUID { return d.id }

// OrderID returns the parent order's identifier.
func (d *DeliveryOrder) OrderID() kernel.UUID { return d.orderID }

// Driver returns the claiming driver's identifier, nil until accepted.
func (d *DeliveryOrder) Driver() *kernel.UUID { return d.driverID }

// Status returns the current status of the delivery leg.
func (d *DeliveryOrder) Status() Status { return d.status }

// DeliveryNumber returns the unique human-facing delivery number.
func (d *DeliveryOrder) DeliveryNumber() string { return d.deliveryNumber }

// DeliveredAt returns when the order reached the customer, nil until then.
func (d *DeliveryOrder) DeliveredAt() *time.Time { return d.deliveredAt }

// Accept binds the claiming driver. The first accept wins.
func (d *DeliveryOrder) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.driverID != nil {
		return errs.NewAlreadyAssignedError("deliveryOrder", d.id.String())
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = &driverID
	return nil
}

// Complete finishes the delivery leg. Only the assigned driver may complete it.
func (d *DeliveryOrder) Complete(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.driverID == nil || !d.driverID.IsEqual(driverID) {
		return errs.NewForbiddenError("complete delivery", "delivery is assigned to another driver")
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveredAt = &at
	return nil
}

func (d *DeliveryOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DeliveryOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *DeliveryOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *DeliveryOrder) setDeliveryNumber(deliveryNumber string) error {
	if deliveryNumber == "" {
		return errs.NewValueIsRequiredError("deliveryNumber")
	}
	d.deliveryNumber = deliveryNumber
	return nil
}

// Number builds a unique human-facing delivery number from the creation day
// and the leg's identifier, e.g. "DO-20250316-6BA7B810".
func Number(at time.Time, id kernel.UUID) string {
	return fmt.Sprintf("DO-%s-%s", at.Format("20060102"), strings.ToUpper(id.String()[:8]))
}
