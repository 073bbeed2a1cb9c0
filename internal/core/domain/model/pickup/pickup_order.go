package pickup

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
	// ErrPickupOrderIsNotConstructed is returned when a PickupOrder was not
	// created through NewPickupOrder or RestorePickupOrder.
	ErrPickupOrderIsNotConstructed = errors.New("PickupOrder must be created via NewPickupOrder or RestorePickupOrder constructor")
)

// PickupOrder is the pickup leg of an order: one row per order, created with
// the pickup request and claimed by exactly one driver.
//
// Invariants:
//   - driverID is set exactly once; the first accept wins
//   - status never regresses
//
// The aggregate's Accept method enforces the rule in memory, but the
// authoritative exclusivity check is the repository's conditional claim
// (driver_id IS NULL AND status = WAITING_FOR_PICKUP); a racing loser sees
// zero affected rows and gets AlreadyAssigned.
type PickupOrder struct {
	id           kernel.UUID
	orderID      kernel.UUID
	driverID     *kernel.UUID
	status       Status
	pickupNumber string
	pickupAt     *time.Time
	proofURL     string

	guard guard.ConstructorGuard
}

// NewPickupOrder creates the pickup leg for a fresh pickup request.
func NewPickupOrder(id, orderID kernel.UUID, pickupNumber string) (*PickupOrder, error) {
	p := &PickupOrder{
		status: WaitingForPickup,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setPickupNumber(pickupNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePickupOrder reconstructs a pickup leg from persistence.
func RestorePickupOrder(
	id, orderID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	pickupNumber string,
	pickupAt *time.Time,
	proofURL string,
) (*PickupOrder, error) {
	p := &PickupOrder{
		driverID: driverID,
		pickupAt: pickupAt,
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setStatus(status),
		p.setPickupNumber(pickupNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the PickupOrder was created through a constructor.
func (p *PickupOrder) Validate() error {
	if p == nil {
		return ErrPickupOrderIsNotConstructed
	}
	return p.guard.Validate(ErrPickupOrderIsNotConstructed)
}

// ID returns the pickup leg's unique identifier.
func (p *PickupOrder) ID() kernel.UUID { return p.id }

// OrderID returns the parent order's identifier.
func (p *PickupOrder) OrderID() kernel.UUID { return p.orderID }

// Driver returns the claiming driver's identifier, nil until accepted.
func (p *PickupOrder) Driver() *kernel.UUID { return p.driverID }

// Status returns the current status of the pickup leg.
func (p *PickupOrder) Status() Status { return p.status }

// PickupNumber returns the unique human-facing pickup number.
func (p *PickupOrder) PickupNumber() string { return p.pickupNumber }

// PickupAt returns when the driver handed the laundry to the outlet, nil
// until the leg completes.
func (p *PickupOrder) PickupAt() *time.Time { return p.pickupAt }

// ProofURL returns the pickup proof image URL, empty until the leg completes.
func (p *PickupOrder) ProofURL() string { return p.proofURL }

// Accept binds the claiming driver. The first accept wins; a second driver
// gets AlreadyAssigned.
func (p *PickupOrder) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if p.driverID != nil {
		return errs.NewAlreadyAssignedError("pickupOrder", p.id.String())
	}

	newStatus, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.driverID = &driverID
	return nil
}

// Complete finishes the pickup leg. Only the assigned driver may complete it.
func (p *PickupOrder) Complete(driverID kernel.UUID, at time.Time, proofURL string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if p.driverID == nil || !p.driverID.IsEqual(driverID) {
		return errs.NewForbiddenError("complete pickup", "pickup is assigned to another driver")
	}

	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.pickupAt = &at
	p.proofURL = proofURL
	return nil
}

func (p *PickupOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PickupOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *PickupOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *PickupOrder) setPickupNumber(pickupNumber string) error {
	if pickupNumber == "" {
		return errs.NewValueIsRequiredError("pickupNumber")
	}
	p.pickupNumber = pickupNumber
	return nil
}

// Number builds a unique human-facing pickup number from the creation day
// and the leg's identifier, e.g. "PU-20250314-6BA7B810".
func Number(at time.Time, id kernel.UUID) string {
	return fmt.Sprintf("PU-%s-%s", at.Format("20060102"), strings.ToUpper(id.String()[:8]))
}
