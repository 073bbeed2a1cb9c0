package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetAvailablePickupsQueryIsNotConstructed = errors.New(
		"GetAvailablePickupsQuery must be created via NewGetAvailablePickupsQuery constructor",
	)
)

// GetAvailablePickupsQuery retrieves the unclaimed pickup legs of one outlet.
// Drivers poll it to find work they can accept.
type GetAvailablePickupsQuery struct {
	outletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailablePickupsQuery creates a query for the outlet's open pickups.
func NewGetAvailablePickupsQuery(outletID kernel.UUID) (GetAvailablePickupsQuery, error) {
	if err := outletID.Validate(); err != nil {
		return GetAvailablePickupsQuery{}, err
	}
	return GetAvailablePickupsQuery{outletID: outletID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePickupsQueryIsNotConstructed)
}

// OutletID returns the outlet whose pickups are requested.
func (q GetAvailablePickupsQuery) OutletID() kernel.UUID { return q.outletID }

// GetAvailablePickupsQueryResponse is one claimable pickup leg.
type GetAvailablePickupsQueryResponse struct {
	PickupOrderID kernel.UUID
	OrderID       kernel.UUID
	OrderNumber   string
	AddressID     kernel.UUID
	PickupTime    time.Time
}
