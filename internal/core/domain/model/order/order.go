package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the root aggregate of the fulfillment pipeline. It owns the
// canonical status field; every other entity (pickup, delivery, work process)
// mirrors its own progress back onto the order through the methods below.
//
// Invariants:
//   - status only ever advances through the transitions defined on Status
//   - totalPrice and totalWeight stay 0 until an admin assigns them
//   - driverID tracks the current driver and is nil outside pickup/delivery legs
//   - orders are never deleted; the lifecycle ends at COMPLETED or CANCELLED
type Order struct {
	id          kernel.UUID
	orderNumber string
	status      Status
	customerID  kernel.UUID
	outletID    kernel.UUID
	addressID   kernel.UUID

	// driverID is the driver currently responsible for moving the order,
	// nil while no pickup or delivery leg is active.
	driverID *kernel.UUID

	totalPrice   int64
	totalWeight  float64
	pickupTime   time.Time
	deliveryTime *time.Time
	invoiceURL   string

	guard guard.ConstructorGuard
}

// NewOrder creates an order for a fresh pickup request. The order starts in
// WAITING_FOR_PICKUP with zero price and weight; an admin assigns both when
// the laundry arrives at the outlet.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	outletID kernel.UUID,
	addressID kernel.UUID,
	pickupTime time.Time,
) (*Order, error) {
	o := &Order{
		status:     WaitingForPickup,
		pickupTime: pickupTime,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setOutletID(outletID),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// Unlike NewOrder it accepts any valid status and the mutable fields.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	customerID kernel.UUID,
	outletID kernel.UUID,
	addressID kernel.UUID,
	driverID *kernel.UUID,
	totalPrice int64,
	totalWeight float64,
	pickupTime time.Time,
	deliveryTime *time.Time,
	invoiceURL string,
) (*Order, error) {
	o := &Order{
		driverID:     driverID,
		totalPrice:   totalPrice,
		totalWeight:  totalWeight,
		pickupTime:   pickupTime,
		deliveryTime: deliveryTime,
		invoiceURL:   invoiceURL,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
		o.setCustomerID(customerID),
		o.setOutletID(outletID),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the unique human-facing order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// OutletID returns the outlet processing the order.
func (o *Order) OutletID() kernel.UUID { return o.outletID }

// AddressID returns the pickup/delivery address identifier.
func (o *Order) AddressID() kernel.UUID { return o.addressID }

// Driver returns the current driver's identifier, nil when no driver is bound.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// TotalPrice returns the admin-assigned price in minor currency units.
func (o *Order) TotalPrice() int64 { return o.totalPrice }

// TotalWeight returns the admin-assigned weight in kilograms.
func (o *Order) TotalWeight() float64 { return o.totalWeight }

// PickupTime returns the requested pickup time.
func (o *Order) PickupTime() time.Time { return o.pickupTime }

// DeliveryTime returns the completion timestamp of the delivery leg, nil
// until the order is delivered.
func (o *Order) DeliveryTime() *time.Time { return o.deliveryTime }

// InvoiceURL returns the payment invoice URL, empty until payment succeeds.
func (o *Order) InvoiceURL() string { return o.invoiceURL }

// AssignPickupDriver binds the pickup driver and moves the order to
// LAUNDRY_ON_THE_WAY. The pickup leg's own conditional claim is the
// authoritative exclusivity check; this mirrors the result onto the order.
func (o *Order) AssignPickupDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// ArriveAtOutlet marks the pickup leg finished.
func (o *Order) ArriveAtOutlet() error {
	newStatus, err := o.status.CompletePickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignWashing records the admin's pricing and sends the order into the
// station pipeline.
func (o *Order) AssignWashing(totalPrice int64, totalWeight float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	if totalWeight <= 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}

	newStatus, err := o.status.AssignWashing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.totalPrice = totalPrice
	o.totalWeight = totalWeight
	return nil
}

// CompleteStation advances the order past the given station. The order must
// currently be at that station; PACKING branches on the payment status.
func (o *Order) CompleteStation(station Station, paid bool) error {
	if err := station.Validate(); err != nil {
		return err
	}
	if o.status != station.Status() {
		return errs.NewInvalidTransitionError("complete station "+station.String(), o.status.String())
	}

	newStatus, err := station.CompletionStatus(paid)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AttachInvoice stamps the payment invoice URL created for the order.
func (o *Order) AttachInvoice(invoiceURL string) error {
	if invoiceURL == "" {
		return errs.NewValueIsRequiredError("invoiceURL")
	}

	o.invoiceURL = invoiceURL
	return nil
}

// MarkPaid records a successful payment, making the order claimable by
// delivery drivers.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDeliveryDriver binds the delivery driver and moves the order to
// DELIVERY_ON_THE_WAY.
func (o *Order) AssignDeliveryDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// CompleteDelivery finishes the delivery leg, stamping the delivery time.
func (o *Order) CompleteDelivery(at time.Time) error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryTime = &at
	return nil
}

// CancelUnpaid cancels an order whose unpaid deadline elapsed.
func (o *Order) CancelUnpaid() error {
	newStatus, err := o.status.CancelUnpaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return err
	}
	o.outletID = outletID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}
